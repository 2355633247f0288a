package event

import (
	"context"
	"fmt"
	"log/slog"

	pkgkafka "github.com/BishoySedra/ecommerce-system-go/pkg/kafka"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
)

// Kafka topic constants for storefront domain events.
const (
	TopicProductCreated    = "storefront.product.created"
	TopicCustomerCreated   = "storefront.customer.created"
	TopicCartUpdated       = "storefront.cart.updated"
	TopicCartCleared       = "storefront.cart.cleared"
	TopicCheckoutCompleted = "storefront.checkout.completed"
	TopicCheckoutFailed    = "storefront.checkout.failed"
)

// Aggregate type constants.
const (
	AggregateTypeProduct  = "product"
	AggregateTypeCustomer = "customer"
	AggregateTypeCart     = "cart"
	AggregateTypeCheckout = "checkout"
)

// Source identifier for events originating from this service.
const SourceStorefront = "storefront"

// ProductCreatedData is the payload for a product.created event.
type ProductCreatedData struct {
	Name             string      `json:"name"`
	Price            int64       `json:"price"`
	Quantity         int         `json:"quantity"`
	Kind             domain.Kind `json:"kind"`
	RequiresShipping bool        `json:"requires_shipping"`
}

// CustomerCreatedData is the payload for a customer.created event.
type CustomerCreatedData struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Balance    int64  `json:"balance"`
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	CustomerID string         `json:"customer_id"`
	Items      []CartItemData `json:"items"`
	ItemCount  int            `json:"item_count"`
	Subtotal   int64          `json:"subtotal"`
}

// CartItemData is the item payload within cart events.
type CartItemData struct {
	ProductName string `json:"product_name"`
	UnitPrice   int64  `json:"unit_price"`
	Quantity    int    `json:"quantity"`
}

// CartClearedData is the payload for a cart.cleared event.
type CartClearedData struct {
	CustomerID string `json:"customer_id"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	CheckoutID       string `json:"checkout_id"`
	CustomerID       string `json:"customer_id"`
	Subtotal         int64  `json:"subtotal"`
	ShippingFee      int64  `json:"shipping_fee"`
	Total            int64  `json:"total"`
	RemainingBalance int64  `json:"remaining_balance"`
	ItemCount        int    `json:"item_count"`
}

// CheckoutFailedData is the payload for a checkout.failed event.
type CheckoutFailedData struct {
	CustomerID string `json:"customer_id"`
	Reason     string `json:"reason"`
}

// Producer publishes storefront domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishProductCreated publishes a product.created event.
func (p *Producer) PublishProductCreated(ctx context.Context, product *domain.Product) error {
	data := ProductCreatedData{
		Name:             product.Name,
		Price:            product.Price,
		Quantity:         product.Quantity,
		Kind:             product.Kind,
		RequiresShipping: product.IsShippable(),
	}

	event, err := pkgkafka.NewEvent(TopicProductCreated, product.Name, AggregateTypeProduct, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create product.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductCreated, event); err != nil {
		return fmt.Errorf("publish product.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.created event",
		slog.String("product_name", product.Name),
	)

	return nil
}

// PublishCustomerCreated publishes a customer.created event.
func (p *Producer) PublishCustomerCreated(ctx context.Context, customer *domain.Customer) error {
	data := CustomerCreatedData{
		CustomerID: customer.ID,
		Name:       customer.Name,
		Balance:    customer.Balance,
	}

	event, err := pkgkafka.NewEvent(TopicCustomerCreated, customer.ID, AggregateTypeCustomer, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create customer.created event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCustomerCreated, event); err != nil {
		return fmt.Errorf("publish customer.created event: %w", err)
	}

	p.logger.DebugContext(ctx, "published customer.created event",
		slog.String("customer_id", customer.ID),
	)

	return nil
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, cart *domain.Cart) error {
	items := make([]CartItemData, len(cart.Items))
	for i, item := range cart.Items {
		items[i] = CartItemData{
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
		}
	}

	data := CartUpdatedData{
		CustomerID: cart.CustomerID,
		Items:      items,
		ItemCount:  cart.ItemCount(),
		Subtotal:   cart.Subtotal(),
	}

	event, err := pkgkafka.NewEvent(TopicCartUpdated, cart.CustomerID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartUpdated, event); err != nil {
		return fmt.Errorf("publish cart.updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.updated event",
		slog.String("customer_id", cart.CustomerID),
		slog.Int("item_count", cart.ItemCount()),
	)

	return nil
}

// PublishCartCleared publishes a cart.cleared event.
func (p *Producer) PublishCartCleared(ctx context.Context, customerID string) error {
	data := CartClearedData{CustomerID: customerID}

	event, err := pkgkafka.NewEvent(TopicCartCleared, customerID, AggregateTypeCart, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create cart.cleared event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCartCleared, event); err != nil {
		return fmt.Errorf("publish cart.cleared event: %w", err)
	}

	p.logger.DebugContext(ctx, "published cart.cleared event",
		slog.String("customer_id", customerID),
	)

	return nil
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, receipt *domain.Receipt) error {
	data := CheckoutCompletedData{
		CheckoutID:       receipt.CheckoutID,
		CustomerID:       receipt.CustomerID,
		Subtotal:         receipt.Subtotal,
		ShippingFee:      receipt.ShippingFee,
		Total:            receipt.Total,
		RemainingBalance: receipt.RemainingBalance,
		ItemCount:        len(receipt.Lines),
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutCompleted, receipt.CheckoutID, AggregateTypeCheckout, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create checkout.completed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutCompleted, event); err != nil {
		return fmt.Errorf("publish checkout.completed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.completed event",
		slog.String("checkout_id", receipt.CheckoutID),
		slog.String("customer_id", receipt.CustomerID),
	)

	return nil
}

// PublishCheckoutFailed publishes a checkout.failed event.
func (p *Producer) PublishCheckoutFailed(ctx context.Context, customerID, reason string) error {
	data := CheckoutFailedData{
		CustomerID: customerID,
		Reason:     reason,
	}

	event, err := pkgkafka.NewEvent(TopicCheckoutFailed, customerID, AggregateTypeCheckout, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create checkout.failed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicCheckoutFailed, event); err != nil {
		return fmt.Errorf("publish checkout.failed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published checkout.failed event",
		slog.String("customer_id", customerID),
		slog.String("reason", reason),
	)

	return nil
}
