package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors for the checkout domain and common cases.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrInternal            = errors.New("internal error")
	ErrEmptyCart           = errors.New("cart is empty")
	ErrProductExpired      = errors.New("product expired")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// AppError represents a structured application error with HTTP status mapping.
type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound creates a 404 error.
func NotFound(resource, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %q not found", resource, id),
		Status:  http.StatusNotFound,
		Err:     ErrNotFound,
	}
}

// AlreadyExists creates a 409 error.
func AlreadyExists(resource, id string) *AppError {
	return &AppError{
		Code:    "ALREADY_EXISTS",
		Message: fmt.Sprintf("%s %q already exists", resource, id),
		Status:  http.StatusConflict,
		Err:     ErrAlreadyExists,
	}
}

// InvalidInput creates a 400 error.
func InvalidInput(message string) *AppError {
	return &AppError{
		Code:    "INVALID_INPUT",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     ErrInvalidInput,
	}
}

// Internal creates a 500 error.
func Internal(err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// EmptyCart indicates a checkout was attempted against a cart with no items.
func EmptyCart() *AppError {
	return &AppError{
		Code:    "EMPTY_CART",
		Message: "cart is empty, cannot proceed to checkout",
		Status:  http.StatusBadRequest,
		Err:     ErrEmptyCart,
	}
}

// ProductExpired indicates the named product is past its expiry date.
func ProductExpired(name string) *AppError {
	return &AppError{
		Code:    "PRODUCT_EXPIRED",
		Message: fmt.Sprintf("product %q is expired", name),
		Status:  http.StatusUnprocessableEntity,
		Err:     ErrProductExpired,
	}
}

// InsufficientStock indicates the requested quantity exceeds the stock on hand.
func InsufficientStock(name string, requested, available int) *AppError {
	return &AppError{
		Code:    "INSUFFICIENT_STOCK",
		Message: fmt.Sprintf("product %q has %d in stock, %d requested", name, available, requested),
		Status:  http.StatusConflict,
		Err:     ErrInsufficientStock,
	}
}

// InsufficientBalance indicates the customer cannot afford the checkout total.
func InsufficientBalance(customer string, total, balance int64) *AppError {
	return &AppError{
		Code:    "INSUFFICIENT_BALANCE",
		Message: fmt.Sprintf("customer %q has balance %d, total is %d", customer, balance, total),
		Status:  http.StatusPaymentRequired,
		Err:     ErrInsufficientBalance,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	return fmt.Errorf("%s: %w", message, err)
}

// HTTPStatus returns the HTTP status code for the given error.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}

	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrAlreadyExists), errors.Is(err, ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrEmptyCart):
		return http.StatusBadRequest
	case errors.Is(err, ErrProductExpired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrInsufficientBalance):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
