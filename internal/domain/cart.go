package domain

import (
	"strings"
	"time"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"
)

// Cart accumulates purchase intent for a single checkout attempt. It is
// created empty per customer, stored with a TTL, and discarded once a
// checkout succeeds.
type Cart struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ExpiresAt  time.Time  `json:"expires_at"`
}

// CartItem is a snapshot of a catalog product at add time. The product itself
// is referenced by name; stock and expiry are re-resolved from the catalog at
// checkout, so catalog-wide mutations stay visible to every cart.
type CartItem struct {
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

// Add validates the product against current catalog state and appends a line
// to the cart. A line for a product already in the cart merges quantities,
// and the merged quantity is validated against the stock on hand. Stock is
// not deducted here; deduction happens exactly once, at checkout, after
// re-validation. On any violation the cart is left unmodified.
func (c *Cart) Add(p *Product, quantity int) error {
	if quantity <= 0 {
		return apperrors.InvalidInput("quantity must be greater than 0")
	}
	if p.IsExpired() {
		return apperrors.ProductExpired(p.Name)
	}

	requested := quantity
	idx := c.FindItemIndex(p.Name)
	if idx >= 0 {
		requested += c.Items[idx].Quantity
	}
	if requested > p.Quantity {
		return apperrors.InsufficientStock(p.Name, requested, p.Quantity)
	}

	if idx >= 0 {
		c.Items[idx].Quantity = requested
		return nil
	}

	c.Items = append(c.Items, CartItem{
		ProductName: p.Name,
		UnitPrice:   p.Price,
		Quantity:    quantity,
	})
	return nil
}

// Subtotal returns the sum of unit price times quantity over all items, in cents.
func (c *Cart) Subtotal() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.UnitPrice * int64(item.Quantity)
	}
	return total
}

// ItemCount returns the total number of units in the cart.
func (c *Cart) ItemCount() int {
	var count int
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// FindItemIndex returns the index of the cart item for the given product
// name, or -1 if the product is not in the cart. Names match
// case-insensitively, consistent with catalog lookups.
func (c *Cart) FindItemIndex(productName string) int {
	for i := range c.Items {
		if strings.EqualFold(c.Items[i].ProductName, productName) {
			return i
		}
	}
	return -1
}
