package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
)

// CatalogRepository implements repository.CatalogRepository with an in-memory map.
// Products are keyed by lowercased name so lookups are case-insensitive.
type CatalogRepository struct {
	mu       sync.RWMutex
	products map[string]*domain.Product
}

// NewCatalogRepository creates an empty in-memory catalog.
func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{
		products: make(map[string]*domain.Product),
	}
}

func catalogKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// FindByName retrieves a product by name, ignoring case.
func (r *CatalogRepository) FindByName(_ context.Context, name string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[catalogKey(name)]
	if !ok {
		return nil, apperrors.NotFound("product", name)
	}

	// Return a copy so callers can't mutate the stored product without Save.
	cp := *p
	return &cp, nil
}

// Save stores a product, replacing any existing product with the same name.
func (r *CatalogRepository) Save(_ context.Context, product *domain.Product) error {
	if product == nil {
		return apperrors.InvalidInput("product must not be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cp := *product
	r.products[catalogKey(product.Name)] = &cp
	return nil
}

// List returns all products sorted by name.
func (r *CatalogRepository) List(_ context.Context) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}

	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})

	return out, nil
}
