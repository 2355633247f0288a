package domain

import (
	"time"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"
)

// Kind discriminates the two product variants carried by the catalog.
type Kind string

const (
	// KindPerishable marks products with an expiry date. Perishables always
	// require shipment.
	KindPerishable Kind = "perishable"
	// KindNonPerishable marks products without expiry; whether they require
	// shipment is configured per instance.
	KindNonPerishable Kind = "non_perishable"
)

// Product is a catalog item. Price is in cents and stock only ever decreases,
// via ReduceStock at checkout time. Weight is set iff the product is
// shippable; the constructors enforce this.
type Product struct {
	Name             string    `json:"name"`
	Price            int64     `json:"price"`
	Quantity         int       `json:"quantity"`
	Kind             Kind      `json:"kind"`
	ExpiresAt        time.Time `json:"expires_at,omitempty"`
	RequiresShipping bool      `json:"requires_shipping"`
	WeightKg         float64   `json:"weight_kg,omitempty"`
}

// NewPerishable creates a perishable product. Perishables carry an expiry
// timestamp and always require shipment, so a positive weight is mandatory.
func NewPerishable(name string, price int64, quantity int, expiresAt time.Time, weightKg float64) (*Product, error) {
	if err := validateCommon(name, price, quantity); err != nil {
		return nil, err
	}
	if expiresAt.IsZero() {
		return nil, apperrors.InvalidInput("expiry date is required for perishable products")
	}
	if weightKg <= 0 {
		return nil, apperrors.InvalidInput("weight must be greater than 0 for shippable products")
	}

	return &Product{
		Name:             name,
		Price:            price,
		Quantity:         quantity,
		Kind:             KindPerishable,
		ExpiresAt:        expiresAt,
		RequiresShipping: true,
		WeightKg:         weightKg,
	}, nil
}

// NewNonPerishable creates a non-perishable product. Weight must be positive
// when the product requires shipping and is cleared otherwise.
func NewNonPerishable(name string, price int64, quantity int, requiresShipping bool, weightKg float64) (*Product, error) {
	if err := validateCommon(name, price, quantity); err != nil {
		return nil, err
	}
	if requiresShipping && weightKg <= 0 {
		return nil, apperrors.InvalidInput("weight must be greater than 0 for shippable products")
	}
	if !requiresShipping {
		// Weight is only meaningful for shippable products.
		weightKg = 0
	}

	return &Product{
		Name:             name,
		Price:            price,
		Quantity:         quantity,
		Kind:             KindNonPerishable,
		RequiresShipping: requiresShipping,
		WeightKg:         weightKg,
	}, nil
}

func validateCommon(name string, price int64, quantity int) error {
	if name == "" {
		return apperrors.InvalidInput("product name is required")
	}
	if price < 0 {
		return apperrors.InvalidInput("price must not be negative")
	}
	if quantity < 0 {
		return apperrors.InvalidInput("quantity must not be negative")
	}
	return nil
}

// IsExpired reports whether the product is past its expiry date.
// Non-perishables never expire.
func (p *Product) IsExpired() bool {
	if p.Kind != KindPerishable {
		return false
	}
	return time.Now().UTC().After(p.ExpiresAt)
}

// IsShippable reports whether the product requires physical shipment.
// Perishables are always shippable.
func (p *Product) IsShippable() bool {
	if p.Kind == KindPerishable {
		return true
	}
	return p.RequiresShipping
}

// ReduceStock decrements the quantity in stock. The decrement is applied in
// full or not at all.
func (p *Product) ReduceStock(qty int) error {
	if qty <= 0 {
		return apperrors.InvalidInput("quantity must be greater than 0")
	}
	if qty > p.Quantity {
		return apperrors.InsufficientStock(p.Name, qty, p.Quantity)
	}
	p.Quantity -= qty
	return nil
}
