package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"
)

func newBook(t *testing.T, stock int) *Product {
	t.Helper()
	p, err := NewNonPerishable("Book", 2000, stock, false, 0)
	require.NoError(t, err)
	return p
}

func TestCart_Add(t *testing.T) {
	cart := &Cart{}
	book := newBook(t, 5)

	err := cart.Add(book, 2)

	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Book", cart.Items[0].ProductName)
	assert.Equal(t, int64(2000), cart.Items[0].UnitPrice)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	// Stock is not deducted at add time.
	assert.Equal(t, 5, book.Quantity)
}

func TestCart_Add_MergesSameProduct(t *testing.T) {
	cart := &Cart{}
	book := newBook(t, 5)

	require.NoError(t, cart.Add(book, 2))
	require.NoError(t, cart.Add(book, 3))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCart_Add_MergedQuantityExceedsStock(t *testing.T) {
	cart := &Cart{}
	book := newBook(t, 5)

	require.NoError(t, cart.Add(book, 3))
	err := cart.Add(book, 3)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	// Cart unchanged on failure.
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCart_Add_InsufficientStock(t *testing.T) {
	cart := &Cart{}
	book := newBook(t, 2)

	err := cart.Add(book, 3)

	assert.ErrorIs(t, err, apperrors.ErrInsufficientStock)
	assert.Empty(t, cart.Items)
	assert.Equal(t, 2, book.Quantity)
}

func TestCart_Add_ExpiredProduct(t *testing.T) {
	cart := &Cart{}
	stale, err := NewPerishable("Milk", 200, 30, time.Now().UTC().Add(-time.Hour), 1.0)
	require.NoError(t, err)

	// Expired products are rejected regardless of requested quantity.
	for _, qty := range []int{1, 10, 30} {
		err := cart.Add(stale, qty)
		assert.ErrorIs(t, err, apperrors.ErrProductExpired)
	}
	assert.Empty(t, cart.Items)
}

func TestCart_Add_InvalidQuantity(t *testing.T) {
	cart := &Cart{}
	book := newBook(t, 5)

	assert.ErrorIs(t, cart.Add(book, 0), apperrors.ErrInvalidInput)
	assert.ErrorIs(t, cart.Add(book, -1), apperrors.ErrInvalidInput)
	assert.Empty(t, cart.Items)
}

func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	cart := &Cart{}
	book := newBook(t, 5)
	laptop, err := NewNonPerishable("Laptop", 100000, 10, true, 2.5)
	require.NoError(t, err)

	require.NoError(t, cart.Add(book, 1))
	require.NoError(t, cart.Add(laptop, 1))
	require.NoError(t, cart.Add(book, 1))

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "Book", cart.Items[0].ProductName)
	assert.Equal(t, "Laptop", cart.Items[1].ProductName)
}

func TestCart_Subtotal(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ProductName: "Book", UnitPrice: 2000, Quantity: 2},
			{ProductName: "Milk", UnitPrice: 200, Quantity: 3},
		},
	}

	assert.Equal(t, int64(4600), cart.Subtotal())
}

func TestCart_Subtotal_Empty(t *testing.T) {
	cart := &Cart{}
	assert.Equal(t, int64(0), cart.Subtotal())
}

func TestCart_ItemCount(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{Quantity: 2},
			{Quantity: 3},
		},
	}

	assert.Equal(t, 5, cart.ItemCount())
}

func TestCart_IsEmpty(t *testing.T) {
	cart := &Cart{}
	assert.True(t, cart.IsEmpty())

	require.NoError(t, cart.Add(newBook(t, 5), 1))
	assert.False(t, cart.IsEmpty())
}

func TestCart_FindItemIndex_CaseInsensitive(t *testing.T) {
	cart := &Cart{
		Items: []CartItem{
			{ProductName: "Book", UnitPrice: 2000, Quantity: 1},
		},
	}

	assert.Equal(t, 0, cart.FindItemIndex("book"))
	assert.Equal(t, 0, cart.FindItemIndex("BOOK"))
	assert.Equal(t, -1, cart.FindItemIndex("Laptop"))
}
