package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BishoySedra/ecommerce-system-go/pkg/health"
	"github.com/BishoySedra/ecommerce-system-go/pkg/middleware"

	"github.com/BishoySedra/ecommerce-system-go/internal/service"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	customerService *service.CustomerService,
	cartService *service.CartService,
	checkoutService *service.CheckoutService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.PrometheusMetrics("storefront"))
	r.Use(middleware.Tracing("storefront"))
	r.Use(middleware.RequestLogger(logger))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	productHandler := NewProductHandler(catalogService, logger)
	customerHandler := NewCustomerHandler(customerService, logger)
	cartHandler := NewCartHandler(cartService, logger)
	checkoutHandler := NewCheckoutHandler(checkoutService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/products", func(r chi.Router) {
			r.Post("/", productHandler.Create)
			r.Get("/", productHandler.List)
			r.Get("/{name}", productHandler.Get)
		})

		r.Route("/customers", func(r chi.Router) {
			r.Post("/", customerHandler.Create)
			r.Get("/{id}", customerHandler.Get)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(CustomerIDFromHeader)

			r.Get("/", cartHandler.Get)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
		})

		r.With(CustomerIDFromHeader).Post("/checkout", checkoutHandler.Process)
	})

	return r
}
