package pricing

import (
	"errors"
	"math"
	"strings"

	"golang-coffee-backend/internal/cart"
)

var (
	ErrInvalidVoucher      = errors.New("voucher code is invalid or expired")
	ErrConflictingDiscount = errors.New("voucher cannot be combined with the senior citizen discount")
	ErrEmptyCart           = errors.New("cart is empty")
)

// FulfillmentMode selects how the order reaches the customer and drives the
// flat fulfillment fee.
type FulfillmentMode string

const (
	ModePickup   FulfillmentMode = "pickup"
	ModeDelivery FulfillmentMode = "delivery"
)

// DefaultDeliveryFee is the flat delivery charge in pesos.
const DefaultDeliveryFee = 50.0

// SeniorDiscountRate is the flat senior citizen discount on the subtotal.
const SeniorDiscountRate = 0.20

// DiscountKind tags the active discount selection. SeniorCitizen and
// Voucher are mutually exclusive.
type DiscountKind string

const (
	DiscountNone    DiscountKind = "none"
	DiscountSenior  DiscountKind = "senior_citizen"
	DiscountVoucher DiscountKind = "voucher"
)

// DiscountSelection is the tagged discount variant. VoucherCode is only
// meaningful when Kind is DiscountVoucher.
type DiscountSelection struct {
	Kind        DiscountKind `json:"kind"`
	VoucherCode string       `json:"voucher_code,omitempty"`
}

func NoDiscount() DiscountSelection {
	return DiscountSelection{Kind: DiscountNone}
}

func SeniorCitizen() DiscountSelection {
	return DiscountSelection{Kind: DiscountSenior}
}

func Voucher(code string) DiscountSelection {
	return DiscountSelection{Kind: DiscountVoucher, VoucherCode: NormalizeCode(code)}
}

// VoucherRuleType distinguishes fixed-amount from percentage vouchers.
type VoucherRuleType string

const (
	RuleFixedAmount       VoucherRuleType = "fixed"
	RulePercentOfSubtotal VoucherRuleType = "percentage"
)

// VoucherRule maps a code to its discount behaviour.
type VoucherRule struct {
	Code  string          `json:"code"`
	Type  VoucherRuleType `json:"type"`
	Value float64         `json:"value"` // peso amount for fixed, fraction for percentage
}

// Catalog is the static voucher lookup, keyed by normalized code.
type Catalog map[string]VoucherRule

// NormalizeCode uppercases and trims a voucher code before lookup.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Lookup resolves a code case-insensitively.
func (c Catalog) Lookup(code string) (VoucherRule, bool) {
	rule, ok := c[NormalizeCode(code)]
	return rule, ok
}

// NewCatalog builds a catalog from rules, normalizing codes.
func NewCatalog(rules ...VoucherRule) Catalog {
	catalog := make(Catalog, len(rules))
	for _, rule := range rules {
		rule.Code = NormalizeCode(rule.Code)
		catalog[rule.Code] = rule
	}
	return catalog
}

// DefaultCatalog returns the reference voucher set.
func DefaultCatalog() Catalog {
	return NewCatalog(
		VoucherRule{Code: "KOPI100", Type: RuleFixedAmount, Value: 100.00},
		VoucherRule{Code: "FREEDEL", Type: RuleFixedAmount, Value: 50.00},
		VoucherRule{Code: "KOPI20", Type: RulePercentOfSubtotal, Value: 0.20},
	)
}

// Breakdown is the derived price summary. It is recomputed on every cart,
// mode, or discount change and never mutated in place.
type Breakdown struct {
	Subtotal       float64 `json:"subtotal"`
	FulfillmentFee float64 `json:"fulfillment_fee"`
	DiscountAmount float64 `json:"discount_amount"`
	DiscountLabel  string  `json:"discount_label"`
	Total          float64 `json:"total"`
}

// Engine computes price breakdowns. The delivery fee is a policy constant
// injected from config.
type Engine struct {
	deliveryFee float64
}

func NewEngine(deliveryFee float64) *Engine {
	return &Engine{deliveryFee: deliveryFee}
}

// ComputeBreakdown prices the cart for the given fulfillment mode and
// discount selection. It is a pure function: it never mutates the cart or
// the catalog, and the same inputs always yield the same breakdown.
func (e *Engine) ComputeBreakdown(c *cart.Cart, mode FulfillmentMode, selection DiscountSelection, catalog Catalog) (*Breakdown, error) {
	var subtotal float64
	for _, item := range c.Items() {
		subtotal += item.UnitPrice * float64(item.Quantity)
	}

	var fee float64
	if mode == ModeDelivery {
		fee = e.deliveryFee
	}

	var discount float64
	var label string
	switch selection.Kind {
	case DiscountSenior:
		discount = Round2(subtotal * SeniorDiscountRate)
		label = "Senior Citizen (20%)"
	case DiscountVoucher:
		rule, ok := catalog.Lookup(selection.VoucherCode)
		if !ok {
			return nil, ErrInvalidVoucher
		}
		switch rule.Type {
		case RulePercentOfSubtotal:
			discount = subtotal * rule.Value
		default:
			discount = rule.Value
		}
		label = "Voucher (" + rule.Code + ")"
	default:
		label = "None"
	}

	// A discount can never exceed the subtotal or drive the total negative.
	if discount < 0 {
		discount = 0
	}
	if discount > subtotal {
		discount = subtotal
	}

	return &Breakdown{
		Subtotal:       Round2(subtotal),
		FulfillmentFee: fee,
		DiscountAmount: Round2(discount),
		DiscountLabel:  label,
		Total:          Round2(subtotal - discount + fee),
	}, nil
}

// Round2 rounds a peso amount to two decimal places for display. Internal
// math stays at full precision until this final step.
func Round2(amount float64) float64 {
	return math.Round(amount*100) / 100
}
