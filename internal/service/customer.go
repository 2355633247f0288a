package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/BishoySedra/ecommerce-system-go/pkg/errors"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
	"github.com/BishoySedra/ecommerce-system-go/internal/event"
	"github.com/BishoySedra/ecommerce-system-go/internal/repository"
)

// CreateCustomerInput holds the parameters for registering a customer.
type CreateCustomerInput struct {
	Name    string `json:"name" validate:"required"`
	Balance int64  `json:"balance" validate:"gte=0"`
}

// CustomerService implements the business logic for customer operations.
type CustomerService struct {
	repo     repository.CustomerRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewCustomerService creates a new customer service.
func NewCustomerService(repo repository.CustomerRepository, producer *event.Producer, logger *slog.Logger) *CustomerService {
	return &CustomerService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// CreateCustomer registers a new customer with a starting balance.
func (s *CustomerService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*domain.Customer, error) {
	if input.Name == "" {
		return nil, apperrors.InvalidInput("customer name is required")
	}
	if input.Balance < 0 {
		return nil, apperrors.InvalidInput("balance must not be negative")
	}

	customer := &domain.Customer{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Balance:   input.Balance,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("save customer: %w", err)
	}

	if err := s.producer.PublishCustomerCreated(ctx, customer); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish customer.created event",
			slog.String("customer_id", customer.ID),
			slog.String("error", err.Error()),
		)
	}

	s.logger.InfoContext(ctx, "customer created",
		slog.String("customer_id", customer.ID),
		slog.Int64("balance", customer.Balance),
	)

	return customer, nil
}

// GetCustomer retrieves a customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id string) (*domain.Customer, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("customer id is required")
	}

	customer, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}

	return customer, nil
}
