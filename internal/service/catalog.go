package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
	"github.com/BishoySedra/ecommerce-system-go/internal/event"
	"github.com/BishoySedra/ecommerce-system-go/internal/repository"
)

// CreateProductInput holds the parameters for adding a product to the catalog.
type CreateProductInput struct {
	Name             string     `json:"name" validate:"required"`
	Price            int64      `json:"price" validate:"gte=0"`
	Quantity         int        `json:"quantity" validate:"gte=0"`
	Kind             string     `json:"kind" validate:"required,oneof=perishable non_perishable"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	RequiresShipping bool       `json:"requires_shipping"`
	WeightKg         float64    `json:"weight_kg" validate:"gte=0"`
}

// CatalogService implements the business logic for catalog operations.
type CatalogService struct {
	repo     repository.CatalogRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(repo repository.CatalogRepository, producer *event.Producer, logger *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateProduct adds a new product to the catalog.
func (s *CatalogService) CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error) {
	existing, err := s.repo.FindByName(ctx, input.Name)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("check existing product: %w", err)
	}
	if existing != nil {
		return nil, apperrors.AlreadyExists("product", input.Name)
	}

	var product *domain.Product
	switch domain.Kind(input.Kind) {
	case domain.KindPerishable:
		if input.ExpiresAt == nil {
			return nil, apperrors.InvalidInput("expires_at is required for perishable products")
		}
		product, err = domain.NewPerishable(input.Name, input.Price, input.Quantity, *input.ExpiresAt, input.WeightKg)
	case domain.KindNonPerishable:
		product, err = domain.NewNonPerishable(input.Name, input.Price, input.Quantity, input.RequiresShipping, input.WeightKg)
	default:
		return nil, apperrors.InvalidInput("kind must be perishable or non_perishable")
	}
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("save product: %w", err)
	}

	if err := s.producer.PublishProductCreated(ctx, product); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.created event",
			slog.String("product_name", product.Name),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "product created",
		slog.String("product_name", product.Name),
		slog.String("kind", string(product.Kind)),
		slog.Int64("price", product.Price),
		slog.Int("quantity", product.Quantity),
	)

	return product, nil
}

// GetProduct retrieves a product by name. Lookup is case-insensitive.
func (s *CatalogService) GetProduct(ctx context.Context, name string) (*domain.Product, error) {
	if name == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}

	product, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

// ListProducts returns all products in the catalog.
func (s *CatalogService) ListProducts(ctx context.Context) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}
