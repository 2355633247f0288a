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

// CheckoutService implements the business logic for checkout operations.
type CheckoutService struct {
	carts     repository.CartRepository
	catalog   repository.CatalogRepository
	customers repository.CustomerRepository
	pricer    *pricing.Engine
	producer  *event.Producer
	logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(
	carts repository.CartRepository,
	catalog repository.CatalogRepository,
	customers repository.CustomerRepository,
	pricer *pricing.Engine,
	producer *event.Producer,
	logger *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		carts:     carts,
		catalog:   catalog,
		customers: customers,
		pricer:    pricer,
		producer:  producer,
		logger:    logger,
	}
}

// Process runs the checkout for a customer's cart: validate every item
// against the live catalog, price the order, charge the customer, deduct
// stock, and return a receipt. All checks run before any mutation, so a
// failure at any step leaves catalog, customer, and cart untouched.
func (s *CheckoutService) Process(ctx context.Context, customerID string) (*domain.Receipt, error) {
	if customerID == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	cart, err := s.carts.Get(ctx, customerID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, s.fail(ctx, customerID, apperrors.EmptyCart())
		}
		return nil, fmt.Errorf("get cart for checkout: %w", err)
	}
	if cart.IsEmpty() {
		return nil, s.fail(ctx, customerID, apperrors.EmptyCart())
	}

	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, s.fail(ctx, customerID, fmt.Errorf("get customer for checkout: %w", err))
	}

	// Validating: re-resolve every cart line against the live catalog.
	// Duplicate lines were merged at add time, so per-line stock checks
	// are also per-product checks.
	products := make([]*domain.Product, len(cart.Items))
	for i, item := range cart.Items {
		product, err := s.catalog.FindByName(ctx, item.ProductName)
		if err != nil {
			return nil, s.fail(ctx, customerID, fmt.Errorf("resolve product %q: %w", item.ProductName, err))
		}
		if product.IsExpired() {
			return nil, s.fail(ctx, customerID, apperrors.ProductExpired(product.Name))
		}
		if item.Quantity > product.Quantity {
			return nil, s.fail(ctx, customerID, apperrors.InsufficientStock(product.Name, item.Quantity, product.Quantity))
		}
		products[i] = product
	}

	// Pricing.
	lines := make([]pricing.Line, len(cart.Items))
	for i, item := range cart.Items {
		lines[i] = pricing.Line{
			UnitPrice: item.UnitPrice,
			Quantity:  item.Quantity,
			Shippable: products[i].IsShippable(),
		}
	}
	quote := s.pricer.Price(lines)

	// Charging: nothing has been mutated yet.
	if !customer.CanAfford(quote.Total) {
		return nil, s.fail(ctx, customerID, apperrors.InsufficientBalance(customerID, quote.Total, customer.Balance))
	}

	// Fulfilling: every check passed, so the deductions below cannot fail
	// on domain grounds.
	for i, item := range cart.Items {
		if err := products[i].ReduceStock(item.Quantity); err != nil {
			return nil, fmt.Errorf("reduce stock for %q: %w", item.ProductName, err)
		}
		if err := s.catalog.Save(ctx, products[i]); err != nil {
			return nil, fmt.Errorf("save product %q: %w", item.ProductName, err)
		}
	}

	if err := customer.Deduct(quote.Total); err != nil {
		return nil, fmt.Errorf("deduct balance: %w", err)
	}
	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}

	receipt := s.buildReceipt(cart, products, customer, quote)

	// The cart is consumed by a successful checkout; a failed delete only
	// leaves a stale cart behind the TTL, so log and continue.
	if err := s.carts.Delete(ctx, customerID); err != nil {
		s.logger.ErrorContext(ctx, "failed to delete cart after checkout",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()),
		)
	}

	if err := s.producer.PublishCheckoutCompleted(ctx, receipt); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("checkout_id", receipt.CheckoutID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("checkout_id", receipt.CheckoutID),
		slog.String("customer_id", customerID),
		slog.Int64("total", receipt.Total),
		slog.Int64("remaining_balance", receipt.RemainingBalance),
	)

	return receipt, nil
}

// buildReceipt assembles the structured checkout result, including a shipment
// notice when any purchased item is shippable.
func (s *CheckoutService) buildReceipt(cart *domain.Cart, products []*domain.Product, customer *domain.Customer, quote pricing.Quote) *domain.Receipt {
	receiptLines := make([]domain.ReceiptLine, len(cart.Items))
	var shipmentItems []domain.ShipmentItem
	var totalWeight float64

	for i, item := range cart.Items {
		receiptLines[i] = domain.ReceiptLine{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.UnitPrice * int64(item.Quantity),
		}

		if products[i].IsShippable() {
			itemWeight := products[i].WeightKg * float64(item.Quantity)
			shipmentItems = append(shipmentItems, domain.ShipmentItem{
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				WeightKg:    itemWeight,
			})
			totalWeight += itemWeight
		}
	}

	receipt := &domain.Receipt{
		CheckoutID:       uuid.New().String(),
		CustomerID:       customer.ID,
		Lines:            receiptLines,
		Subtotal:         quote.Subtotal,
		ShippingFee:      quote.ShippingFee,
		Total:            quote.Total,
		RemainingBalance: customer.Balance,
		CreatedAt:        time.Now().UTC(),
	}

	if len(shipmentItems) > 0 {
		receipt.Shipment = &domain.ShipmentNotice{
			Items:         shipmentItems,
			TotalWeightKg: totalWeight,
		}
	}

	return receipt
}

// fail publishes a checkout.failed event for a domain rejection and returns
// the error unchanged. Publishing is best effort.
func (s *CheckoutService) fail(ctx context.Context, customerID string, cause error) error {
	if err := s.producer.PublishCheckoutFailed(ctx, customerID, cause.Error()); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.failed event",
			slog.String("customer_id", customerID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "checkout rejected",
		slog.String("customer_id", customerID),
		slog.String("reason", cause.Error()),
	)

	return cause
}
