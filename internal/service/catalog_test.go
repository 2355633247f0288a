package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
)

func newCatalogService(catalog *mockCatalogRepository) *CatalogService {
	return NewCatalogService(catalog, newTestProducer(), newTestLogger())
}

func TestCatalogService_CreateProduct_NonPerishable(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc := newCatalogService(catalog)

	catalog.On("FindByName", mock.Anything, "Laptop").Return(nil, apperrors.NotFound("product", "Laptop"))
	catalog.On("Save", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:             "Laptop",
		Price:            99900,
		Quantity:         5,
		Kind:             "non_perishable",
		RequiresShipping: true,
		WeightKg:         2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindNonPerishable, product.Kind)
	assert.True(t, product.IsShippable())
	assert.False(t, product.IsExpired())
	catalog.AssertExpectations(t)
}

func TestCatalogService_CreateProduct_Perishable(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc := newCatalogService(catalog)

	expiry := time.Now().UTC().Add(48 * time.Hour)
	catalog.On("FindByName", mock.Anything, "Milk").Return(nil, apperrors.NotFound("product", "Milk"))
	catalog.On("Save", mock.Anything, mock.AnythingOfType("*domain.Product")).Return(nil)

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:      "Milk",
		Price:     500,
		Quantity:  20,
		Kind:      "perishable",
		ExpiresAt: &expiry,
		WeightKg:  0.4,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.KindPerishable, product.Kind)
	assert.True(t, product.IsShippable(), "perishables always ship")
}

func TestCatalogService_CreateProduct_Duplicate(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc := newCatalogService(catalog)

	existing := newShippableProduct(t, "Laptop", 99900, 5, 2.5)
	catalog.On("FindByName", mock.Anything, "Laptop").Return(existing, nil)

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:     "Laptop",
		Price:    99900,
		Quantity: 5,
		Kind:     "non_perishable",
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
	catalog.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCatalogService_CreateProduct_PerishableWithoutExpiry(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc := newCatalogService(catalog)

	catalog.On("FindByName", mock.Anything, "Milk").Return(nil, apperrors.NotFound("product", "Milk"))

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:     "Milk",
		Price:    500,
		Quantity: 20,
		Kind:     "perishable",
		WeightKg: 0.4,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCatalogService_CreateProduct_UnknownKind(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc := newCatalogService(catalog)

	catalog.On("FindByName", mock.Anything, "Thing").Return(nil, apperrors.NotFound("product", "Thing"))

	product, err := svc.CreateProduct(context.Background(), CreateProductInput{
		Name:     "Thing",
		Price:    100,
		Quantity: 1,
		Kind:     "frozen",
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCatalogService_GetProduct(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc := newCatalogService(catalog)

	want := newShippableProduct(t, "Laptop", 99900, 5, 2.5)
	catalog.On("FindByName", mock.Anything, "laptop").Return(want, nil)

	got, err := svc.GetProduct(context.Background(), "laptop")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestCatalogService_GetProduct_EmptyName(t *testing.T) {
	svc := newCatalogService(new(mockCatalogRepository))

	got, err := svc.GetProduct(context.Background(), "")
	assert.Nil(t, got)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCatalogService_ListProducts(t *testing.T) {
	catalog := new(mockCatalogRepository)
	svc := newCatalogService(catalog)

	want := []*domain.Product{
		newShippableProduct(t, "Laptop", 99900, 5, 2.5),
		newDigitalProduct(t, "Ebook", 1500, 100),
	}
	catalog.On("List", mock.Anything).Return(want, nil)

	got, err := svc.ListProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
