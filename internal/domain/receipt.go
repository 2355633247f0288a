package domain

import "time"

// Receipt is the structured result of a completed checkout. Rendering it for
// humans (console, UI) is the caller's concern.
type Receipt struct {
	CheckoutID       string          `json:"checkout_id"`
	CustomerID       string          `json:"customer_id"`
	Lines            []ReceiptLine   `json:"lines"`
	Subtotal         int64           `json:"subtotal"`
	ShippingFee      int64           `json:"shipping_fee"`
	Total            int64           `json:"total"`
	RemainingBalance int64           `json:"remaining_balance"`
	Shipment         *ShipmentNotice `json:"shipment,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
}

// ReceiptLine is a single itemized entry on the receipt, in cart insertion order.
type ReceiptLine struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	UnitPrice   int64  `json:"unit_price"`
	LineTotal   int64  `json:"line_total"`
}

// ShipmentNotice lists every shippable item in the order. It is present on
// the receipt only when at least one item requires shipment.
type ShipmentNotice struct {
	Items         []ShipmentItem `json:"items"`
	TotalWeightKg float64        `json:"total_weight_kg"`
}

// ShipmentItem carries the shipped quantity and the total weight for one
// product (quantity times unit weight).
type ShipmentItem struct {
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"`
	WeightKg    float64 `json:"weight_kg"`
}
