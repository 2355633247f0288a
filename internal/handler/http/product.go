package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/BishoySedra/ecommerce-system-go/pkg/validator"

	"github.com/BishoySedra/ecommerce-system-go/internal/service"
)

// ProductHandler handles HTTP requests for catalog endpoints.
type ProductHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewProductHandler creates a new catalog HTTP handler.
func NewProductHandler(svc *service.CatalogService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: svc,
		logger:  logger,
	}
}

// CreateProductRequest is the JSON request body for adding a catalog product.
type CreateProductRequest struct {
	Name             string     `json:"name" validate:"required,min=1,max=500"`
	Price            int64      `json:"price" validate:"gte=0"`
	Quantity         int        `json:"quantity" validate:"gte=0"`
	Kind             string     `json:"kind" validate:"required,oneof=perishable non_perishable"`
	ExpiresAt        *time.Time `json:"expires_at,omitempty"`
	RequiresShipping bool       `json:"requires_shipping"`
	WeightKg         float64    `json:"weight_kg" validate:"gte=0"`
}

// Create handles POST /api/v1/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
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

	input := service.CreateProductInput{
		Name:             req.Name,
		Price:            req.Price,
		Quantity:         req.Quantity,
		Kind:             req.Kind,
		ExpiresAt:        req.ExpiresAt,
		RequiresShipping: req.RequiresShipping,
		WeightKg:         req.WeightKg,
	}

	product, err := h.service.CreateProduct(r.Context(), input)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, response{Data: product})
}

// Get handles GET /api/v1/products/{name}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "product name is required"},
		})
		return
	}

	product, err := h.service.GetProduct(r.Context(), name)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: product})
}

// List handles GET /api/v1/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: products})
}
