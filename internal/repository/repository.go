package repository

import (
	"context"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
)

// CatalogRepository defines the interface for product catalog persistence.
type CatalogRepository interface {
	// FindByName retrieves a product by its name. Lookup is case-insensitive.
	FindByName(ctx context.Context, name string) (*domain.Product, error)

	// Save persists a product, overwriting any existing product with the same name.
	Save(ctx context.Context, product *domain.Product) error

	// List returns all products in the catalog.
	List(ctx context.Context) ([]*domain.Product, error)
}

// CustomerRepository defines the interface for customer persistence.
type CustomerRepository interface {
	// GetByID retrieves a customer by ID.
	GetByID(ctx context.Context, id string) (*domain.Customer, error)

	// Save persists a customer, overwriting any existing customer with the same ID.
	Save(ctx context.Context, customer *domain.Customer) error
}

// CartRepository defines the interface for cart persistence operations.
type CartRepository interface {
	// Get retrieves a cart by its customer ID.
	Get(ctx context.Context, customerID string) (*domain.Cart, error)

	// Save persists a cart to the store, overwriting any existing cart for the customer.
	Save(ctx context.Context, cart *domain.Cart) error

	// Delete removes a cart from the store by the customer ID.
	Delete(ctx context.Context, customerID string) error
}
