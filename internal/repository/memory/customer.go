package memory

import (
	"context"
	"sync"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
)

// CustomerRepository implements repository.CustomerRepository with an in-memory map.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

// NewCustomerRepository creates an empty in-memory customer store.
func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

// GetByID retrieves a customer by ID.
func (r *CustomerRepository) GetByID(_ context.Context, id string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.customers[id]
	if !ok {
		return nil, apperrors.NotFound("customer", id)
	}

	cp := *c
	return &cp, nil
}

// Save stores a customer, replacing any existing customer with the same ID.
func (r *CustomerRepository) Save(_ context.Context, customer *domain.Customer) error {
	if customer == nil {
		return apperrors.InvalidInput("customer must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *customer
	r.customers[customer.ID] = &cp
	return nil
}
