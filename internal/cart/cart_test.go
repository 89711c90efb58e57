package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNewAndExistingItems(t *testing.T) {
	c := New()

	c.Add(1, "Dalgona Crunch", 130)
	c.Add(2, "Hallyu Cold Brew", 100)
	c.Add(1, "Dalgona Crunch", 130)

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 2, items[1].ProductID)
	assert.Equal(t, 1, items[1].Quantity)
}

func TestItemsPreserveInsertionOrder(t *testing.T) {
	c := New()
	c.Add(5, "Caramel Macchiato", 100)
	c.Add(3, "Seoul Sweet Vanilla", 120)
	c.Add(1, "Dalgona Crunch", 130)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{5, 3, 1}, []int{items[0].ProductID, items[1].ProductID, items[2].ProductID})
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	c := New()
	c.Add(1, "Dalgona Crunch", 130)
	c.Add(1, "Dalgona Crunch", 130)

	c.UpdateQuantity(1, -1)
	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)

	c.UpdateQuantity(1, -1)
	assert.Empty(t, c.Items())

	// Further calls on the removed id are no-ops.
	c.UpdateQuantity(1, -1)
	assert.Empty(t, c.Items())
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	c := New()
	c.Add(1, "Dalgona Crunch", 130)

	c.UpdateQuantity(99, 1)

	require.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(1, "Dalgona Crunch", 130)
	c.Add(2, "Hallyu Cold Brew", 100)

	c.Remove(1)

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)

	c.Remove(42) // absent id
	assert.Len(t, c.Items(), 1)
}

func TestClear(t *testing.T) {
	c := New()
	c.Add(1, "Dalgona Crunch", 130)
	c.Add(2, "Hallyu Cold Brew", 100)

	c.Clear()

	assert.Empty(t, c.Items())
	assert.True(t, c.IsEmpty())
	assert.Equal(t, 0, c.Len())
}

func TestItemsReturnsCopy(t *testing.T) {
	c := New()
	c.Add(1, "Dalgona Crunch", 130)

	items := c.Items()
	items[0].Quantity = 99

	assert.Equal(t, 1, c.Items()[0].Quantity)
}

func TestRestoreDropsNonPositiveQuantities(t *testing.T) {
	c := New()
	c.Restore([]LineItem{
		{ProductID: 1, Name: "Dalgona Crunch", UnitPrice: 130, Quantity: 2},
		{ProductID: 2, Name: "Hallyu Cold Brew", UnitPrice: 100, Quantity: 0},
		{ProductID: 3, Name: "Seoul Sweet Vanilla", UnitPrice: 120, Quantity: 1},
	})

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ProductID)
	assert.Equal(t, 3, items[1].ProductID)
}
