package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/BishoySedra/ecommerce-system-go/pkg/validator"

	"github.com/BishoySedra/ecommerce-system-go/internal/service"
)

// CustomerHandler handles HTTP requests for customer endpoints.
type CustomerHandler struct {
	service *service.CustomerService
	logger  *slog.Logger
}

// NewCustomerHandler creates a new customer HTTP handler.
func NewCustomerHandler(svc *service.CustomerService, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateCustomerRequest is the JSON request body for registering a customer.
type CreateCustomerRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=500"`
	Balance int64  `json:"balance" validate:"gte=0"`
}

// Create handles POST /api/v1/customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		writeValidationError(w, err)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), service.CreateCustomerInput{
		Name:    req.Name,
		Balance: req.Balance,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: customer})
}

// Get handles GET /api/v1/customers/{id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "customer id is required"},
		})
		return
	}

	customer, err := h.service.GetCustomer(r.Context(), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: customer})
}
