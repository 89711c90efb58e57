package cart

// LineItem is one product entry in the cart with its quantity.
type LineItem struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Cart is an ordered collection of line items, unique by product ID.
// It is a plain in-memory value owned by a single session; quantities are
// always >= 1 while an item is present.
type Cart struct {
	items []LineItem
}

func New() *Cart {
	return &Cart{}
}

// Add puts a product into the cart. If the product is already present its
// quantity is incremented by one, otherwise it is appended with quantity 1.
func (c *Cart) Add(productID int, name string, unitPrice float64) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  1,
	})
}

// UpdateQuantity applies delta (+1 or -1) to the matching item. An item
// whose quantity drops to zero or below is removed. Unknown product IDs are
// a no-op.
func (c *Cart) UpdateQuantity(productID, delta int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity += delta
			if c.items[i].Quantity <= 0 {
				c.items = append(c.items[:i], c.items[i+1:]...)
			}
			return
		}
	}
}

// Remove deletes the item unconditionally if present.
func (c *Cart) Remove(productID int) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Clear empties the cart. Used after an order is successfully placed.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns the line items in insertion order. The returned slice is a
// copy; mutating it does not affect the cart.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of distinct line items.
func (c *Cart) Len() int {
	return len(c.items)
}

// IsEmpty reports whether the cart has no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Restore replaces the cart contents with the given items, dropping any
// entries with non-positive quantity. Used when loading a session cart
// from the cache.
func (c *Cart) Restore(items []LineItem) {
	c.items = nil
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		c.items = append(c.items, item)
	}
}
