package domain

// Pricing policy constants. Orders whose subtotal strictly exceeds the
// threshold get the discount; a subtotal of exactly DiscountThreshold
// does not.
const (
	DiscountThreshold = 1000.0
	DiscountRate      = 0.10
)

// Quote is the result of pricing a set of line items.
type Quote struct {
	Subtotal float64
	Discount float64
	Total    float64
}

// Price computes subtotal, discount and final total for the given items.
// It is a pure function: items are summed in input order and never mutated.
func Price(items []LineItem) Quote {
	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * it.Quantity
	}

	var discount float64
	if subtotal > DiscountThreshold {
		discount = subtotal * DiscountRate
	}

	return Quote{
		Subtotal: subtotal,
		Discount: discount,
		Total:    subtotal - discount,
	}
}
