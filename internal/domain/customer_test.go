package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"
)

func TestCustomer_CanAfford(t *testing.T) {
	c := &Customer{ID: "cust-1", Name: "Alice", Balance: 1000}

	assert.True(t, c.CanAfford(999))
	assert.True(t, c.CanAfford(1000))
	assert.False(t, c.CanAfford(1001))
}

func TestCustomer_Deduct(t *testing.T) {
	c := &Customer{ID: "cust-1", Name: "Alice", Balance: 1000}

	assert.NoError(t, c.Deduct(600))
	assert.Equal(t, int64(400), c.Balance)

	assert.NoError(t, c.Deduct(400))
	assert.Equal(t, int64(0), c.Balance)
}

func TestCustomer_Deduct_InsufficientBalance(t *testing.T) {
	c := &Customer{ID: "cust-1", Name: "Alice", Balance: 1000}

	err := c.Deduct(1001)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	// Balance unchanged on failure.
	assert.Equal(t, int64(1000), c.Balance)
}

func TestCustomer_Deduct_NegativeAmount(t *testing.T) {
	c := &Customer{ID: "cust-1", Name: "Alice", Balance: 1000}

	err := c.Deduct(-1)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, int64(1000), c.Balance)
}
