package pricing

// DefaultFlatFeePerUnit is the default shipping fee in cents charged per
// shippable unit, independent of weight or distance.
const DefaultFlatFeePerUnit int64 = 1000

// Line is a priced cart line with its shippability resolved against the catalog.
type Line struct {
	UnitPrice int64
	Quantity  int
	Shippable bool
}

// Quote holds the amounts computed for a cart, in cents.
type Quote struct {
	Subtotal    int64 `json:"subtotal"`
	ShippingFee int64 `json:"shipping_fee"`
	Total       int64 `json:"total"`
}

// Engine computes checkout totals. No taxes, discounts, or currency
// conversion are modeled.
type Engine struct {
	flatFeePerUnit int64
}

// NewEngine creates a pricing engine with the given flat shipping fee per
// shippable unit. A non-positive fee falls back to the default.
func NewEngine(flatFeePerUnit int64) *Engine {
	if flatFeePerUnit <= 0 {
		flatFeePerUnit = DefaultFlatFeePerUnit
	}
	return &Engine{flatFeePerUnit: flatFeePerUnit}
}

// Price computes the quote for the given lines: subtotal over all lines plus
// the flat fee for every shippable unit. Lines without shippable units
// contribute nothing to the shipping fee.
func (e *Engine) Price(lines []Line) Quote {
	var q Quote
	for _, line := range lines {
		q.Subtotal += line.UnitPrice * int64(line.Quantity)
		if line.Shippable {
			q.ShippingFee += e.flatFeePerUnit * int64(line.Quantity)
		}
	}
	q.Total = q.Subtotal + q.ShippingFee
	return q
}
