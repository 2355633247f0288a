package http

import (
	"log/slog"
	"net/http"

	"github.com/BishoySedra/ecommerce-system-go/internal/service"
)

// CheckoutHandler handles HTTP requests for checkout endpoints.
type CheckoutHandler struct {
	service *service.CheckoutService
	logger  *slog.Logger
}

// NewCheckoutHandler creates a new checkout HTTP handler.
func NewCheckoutHandler(svc *service.CheckoutService, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		service: svc,
		logger:  logger,
	}
}

// Process handles POST /api/v1/checkout
func (h *CheckoutHandler) Process(w http.ResponseWriter, r *http.Request) {
	customerID, ok := customerIDFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, response{
			Error: &errorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
		})
		return
	}

	receipt, err := h.service.Process(r.Context(), customerID)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: receipt})
}
