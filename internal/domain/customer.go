package domain

import (
	"time"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"
)

// Customer is a balance holder. The balance is in cents, never negative, and
// mutated only by a successful checkout.
type Customer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Balance   int64     `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

// CanAfford reports whether the balance covers the given amount.
func (c *Customer) CanAfford(amount int64) bool {
	return c.Balance >= amount
}

// Deduct subtracts the amount from the balance. It refuses when the balance
// would go negative, leaving the customer unchanged.
func (c *Customer) Deduct(amount int64) error {
	if amount < 0 {
		return apperrors.InvalidInput("amount must not be negative")
	}
	if !c.CanAfford(amount) {
		return apperrors.InsufficientBalance(c.Name, amount, c.Balance)
	}
	c.Balance -= amount
	return nil
}
