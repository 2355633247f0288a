package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Sentinel error identity ---

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound, ErrAlreadyExists, ErrInvalidInput, ErrInternal,
		ErrEmptyCart, ErrProductExpired, ErrInsufficientStock,
		ErrInsufficientBalance,
	}

	for i := 0; i < len(sentinels); i++ {
		for j := i + 1; j < len(sentinels); j++ {
			assert.NotEqual(t, sentinels[i], sentinels[j],
				"sentinels %d and %d should be distinct", i, j)
		}
	}
}

// --- AppError behavior ---

func TestAppError_ErrorString_WithWrappedError(t *testing.T) {
	inner := fmt.Errorf("redis connection lost")
	appErr := &AppError{Code: "INTERNAL_ERROR", Message: "something broke", Err: inner}
	assert.Contains(t, appErr.Error(), "INTERNAL_ERROR")
	assert.Contains(t, appErr.Error(), "something broke")
	assert.Contains(t, appErr.Error(), "redis connection lost")
}

func TestAppError_ErrorString_WithoutWrappedError(t *testing.T) {
	appErr := &AppError{Code: "NOT_FOUND", Message: "product not found"}
	assert.Equal(t, "NOT_FOUND: product not found", appErr.Error())
}

func TestAppError_Unwrap(t *testing.T) {
	appErr := &AppError{Code: "NOT_FOUND", Message: "nope", Err: ErrNotFound}
	assert.True(t, errors.Is(appErr, ErrNotFound))
}

func TestAppError_Unwrap_Nil(t *testing.T) {
	appErr := &AppError{Code: "TEST", Message: "test"}
	assert.Nil(t, appErr.Unwrap())
}

// --- Constructor functions ---

func TestNotFound(t *testing.T) {
	err := NotFound("product", "Laptop")
	require.NotNil(t, err)
	assert.Equal(t, "NOT_FOUND", err.Code)
	assert.Contains(t, err.Message, "product")
	assert.Contains(t, err.Message, "Laptop")
	assert.Equal(t, http.StatusNotFound, err.Status)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAlreadyExists(t *testing.T) {
	err := AlreadyExists("customer", "cust-1")
	require.NotNil(t, err)
	assert.Equal(t, "ALREADY_EXISTS", err.Code)
	assert.Contains(t, err.Message, "customer")
	assert.Contains(t, err.Message, "cust-1")
	assert.Equal(t, http.StatusConflict, err.Status)
	assert.True(t, errors.Is(err, ErrAlreadyExists))
}

func TestInvalidInput(t *testing.T) {
	err := InvalidInput("quantity must be greater than 0")
	require.NotNil(t, err)
	assert.Equal(t, "INVALID_INPUT", err.Code)
	assert.Equal(t, "quantity must be greater than 0", err.Message)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEmptyCart(t *testing.T) {
	err := EmptyCart()
	require.NotNil(t, err)
	assert.Equal(t, "EMPTY_CART", err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.True(t, errors.Is(err, ErrEmptyCart))
}

func TestProductExpired(t *testing.T) {
	err := ProductExpired("Milk")
	require.NotNil(t, err)
	assert.Equal(t, "PRODUCT_EXPIRED", err.Code)
	assert.Contains(t, err.Message, "Milk")
	assert.Equal(t, http.StatusUnprocessableEntity, err.Status)
	assert.True(t, errors.Is(err, ErrProductExpired))
}

func TestInsufficientStock(t *testing.T) {
	err := InsufficientStock("Laptop", 3, 2)
	require.NotNil(t, err)
	assert.Equal(t, "INSUFFICIENT_STOCK", err.Code)
	assert.Contains(t, err.Message, "Laptop")
	assert.Contains(t, err.Message, "3 requested")
	assert.Contains(t, err.Message, "2 in stock")
	assert.Equal(t, http.StatusConflict, err.Status)
	assert.True(t, errors.Is(err, ErrInsufficientStock))
}

func TestInsufficientBalance(t *testing.T) {
	err := InsufficientBalance("Alice", 6000, 1000)
	require.NotNil(t, err)
	assert.Equal(t, "INSUFFICIENT_BALANCE", err.Code)
	assert.Contains(t, err.Message, "Alice")
	assert.Equal(t, http.StatusPaymentRequired, err.Status)
	assert.True(t, errors.Is(err, ErrInsufficientBalance))
}

func TestInternal(t *testing.T) {
	inner := fmt.Errorf("boom")
	err := Internal(inner)
	require.NotNil(t, err)
	assert.Equal(t, "INTERNAL_ERROR", err.Code)
	assert.Equal(t, http.StatusInternalServerError, err.Status)
	assert.True(t, errors.Is(err, inner))
}

// --- Wrap ---

func TestWrap(t *testing.T) {
	inner := ErrInsufficientStock
	wrapped := Wrap(inner, "validate cart")
	assert.Contains(t, wrapped.Error(), "validate cart")
	assert.True(t, errors.Is(wrapped, ErrInsufficientStock))
}

// --- HTTPStatus mapping ---

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"app error", NotFound("product", "x"), http.StatusNotFound},
		{"wrapped app error", fmt.Errorf("checkout: %w", InsufficientStock("x", 2, 1)), http.StatusConflict},
		{"not found sentinel", ErrNotFound, http.StatusNotFound},
		{"already exists sentinel", ErrAlreadyExists, http.StatusConflict},
		{"invalid input sentinel", ErrInvalidInput, http.StatusBadRequest},
		{"empty cart sentinel", ErrEmptyCart, http.StatusBadRequest},
		{"expired sentinel", ErrProductExpired, http.StatusUnprocessableEntity},
		{"stock sentinel", ErrInsufficientStock, http.StatusConflict},
		{"balance sentinel", ErrInsufficientBalance, http.StatusPaymentRequired},
		{"unknown error", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}
