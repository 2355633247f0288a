package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/BishoySedra/ecommerce-system-go/pkg/validator"

	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
	"github.com/BishoySedra/ecommerce-system-go/internal/pricing"
	"github.com/BishoySedra/ecommerce-system-go/internal/service"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart HTTP handler.
func NewCartHandler(svc *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddItemRequest is the JSON request body for adding an item to the cart.
type AddItemRequest struct {
	ProductName string `json:"product_name" validate:"required,min=1,max=500"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
}

// cartView is the cart response payload: the cart plus a live price quote.
type cartView struct {
	Cart  *domain.Cart  `json:"cart"`
	Quote pricing.Quote `json:"quote"`
}

// Get handles GET /api/v1/cart
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{
			Error: &errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
		})
		return
	}

	cart, err := h.service.GetCart(r.Context(), customerID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	quote, err := h.service.Quote(r.Context(), cart)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cartView{Cart: cart, Quote: quote}})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{
			Error: &errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
		})
		return
	}

	var req AddItemRequest
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

	cart, err := h.service.AddItem(r.Context(), customerID, service.AddItemInput{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// Clear handles DELETE /api/v1/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{
			Error: &errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
		})
		return
	}

	if err := h.service.ClearCart(r.Context(), customerID); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "cleared"}})
}
