package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
	"github.com/BishoySedra/ecommerce-system-go/internal/event"
	"github.com/BishoySedra/ecommerce-system-go/internal/pricing"
	"github.com/BishoySedra/ecommerce-system-go/internal/repository"
)

// AddItemInput holds the parameters for adding an item to the cart.
type AddItemInput struct {
	ProductName string `json:"product_name" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
}

// CartService implements the business logic for cart operations.
type CartService struct {
	carts    repository.CartRepository
	catalog  repository.CatalogRepository
	pricer   *pricing.Engine
	producer *event.Producer
	logger   *slog.Logger
	cartTTL  time.Duration
}

// NewCartService creates a new cart service.
func NewCartService(
	carts repository.CartRepository,
	catalog repository.CatalogRepository,
	pricer *pricing.Engine,
	producer *event.Producer,
	logger *slog.Logger,
	cartTTL time.Duration,
) *CartService {
	return &CartService{
		carts:    carts,
		catalog:  catalog,
		pricer:   pricer,
		producer: producer,
		logger:   logger,
		cartTTL:  cartTTL,
	}
}

// GetCart retrieves the cart for a customer. If no cart exists, returns an empty cart.
func (s *CartService) GetCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(customerID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}

	return cart, nil
}

// AddItem adds a quantity of a catalog product to the customer's cart.
// The product must exist, must not be expired, and the merged line quantity
// must not exceed current stock. Stock is not deducted here; checkout does
// the deduction after re-validating.
func (s *CartService) AddItem(ctx context.Context, customerID string, input AddItemInput) (*domain.Cart, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}
	if input.ProductName == "" {
		return nil, apperrors.InvalidInput("product name is required")
	}
	if input.Quantity <= 0 {
		return nil, apperrors.InvalidInput("quantity must be greater than 0")
	}

	product, err := s.catalog.FindByName(ctx, input.ProductName)
	if err != nil {
		return nil, fmt.Errorf("resolve product: %w", err)
	}

	cart, err := s.getOrCreateCart(ctx, customerID)
	if err != nil {
		return nil, err
	}

	if err := cart.Add(product, input.Quantity); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cart.UpdatedAt = now
	cart.ExpiresAt = now.Add(s.cartTTL)

	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("save cart: %w", err)
	}

	if err := s.producer.PublishCartUpdated(ctx, cart); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("customer_id", customerID),
		slog.String("product_name", product.Name),
		slog.Int("quantity", input.Quantity),
	)

	return cart, nil
}

// ClearCart removes the customer's cart entirely.
func (s *CartService) ClearCart(ctx context.Context, customerID string) error {
	if customerID == "" {
		return apperrors.InvalidInput("customer id is required")
	}

	if err := s.carts.Delete(ctx, customerID); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}

	if err := s.producer.PublishCartCleared(ctx, customerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.cleared event",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "cart cleared",
		slog.String("customer_id", customerID),
	)

	return nil
}

// Quote prices the cart's current contents: subtotal, shipping fee, total.
// Shippability is resolved from the live catalog, not the cart snapshot.
func (s *CartService) Quote(ctx context.Context, cart *domain.Cart) (pricing.Quote, error) {
	lines := make([]pricing.Line, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := s.catalog.FindByName(ctx, item.ProductName)
		if err != nil {
			return pricing.Quote{}, fmt.Errorf("resolve product %q for quote: %w", item.ProductName, err)
		}
		lines = append(lines, pricing.Line{
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Shippable: product.IsShippable(),
		})
	}

	return s.pricer.Price(lines), nil
}

// getOrCreateCart retrieves the cart for a customer, creating an empty one if it does not exist.
func (s *CartService) getOrCreateCart(ctx context.Context, customerID string) (*domain.Cart, error) {
	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return s.newEmptyCart(customerID), nil
		}
		return nil, fmt.Errorf("get cart: %w", err)
	}
	return cart, nil
}

// newEmptyCart creates a new empty cart for the given customer.
func (s *CartService) newEmptyCart(customerID string) *domain.Cart {
	now := time.Now().UTC()
	return &domain.Cart{
		ID:         uuid.New().String(),
		CustomerID: customerID,
		Items:      []domain.CartItem{},
		CreatedAt:  now,
		UpdatedAt:  now,
		ExpiresAt:  now.Add(s.cartTTL),
	}
}
