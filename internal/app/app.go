package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/BishoySedra/ecommerce-system-go/pkg/database"
	"github.com/BishoySedra/ecommerce-system-go/pkg/health"
	pkgkafka "github.com/BishoySedra/ecommerce-system-go/pkg/kafka"
	"github.com/BishoySedra/ecommerce-system-go/pkg/tracing"

	"github.com/BishoySedra/ecommerce-system-go/internal/config"
	"github.com/BishoySedra/ecommerce-system-go/internal/domain"
	"github.com/BishoySedra/ecommerce-system-go/internal/event"
	handler "github.com/BishoySedra/ecommerce-system-go/internal/handler/http"
	"github.com/BishoySedra/ecommerce-system-go/internal/pricing"
	"github.com/BishoySedra/ecommerce-system-go/internal/repository/memory"
	redisrepo "github.com/BishoySedra/ecommerce-system-go/internal/repository/redis"
	"github.com/BishoySedra/ecommerce-system-go/internal/service"
)

// App wires together all dependencies and runs the storefront service.
type App struct {
	cfg             *config.Config
	logger          *slog.Logger
	rdb             *redis.Client
	producer        *pkgkafka.Producer
	httpServer      *http.Server
	tracingShutdown func(context.Context) error
}

// NewApp creates a new application instance, initializing all dependencies.
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize Redis client for the cart store.
	rdb, err := database.NewRedisClient(ctx, database.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	logger.Info("connected to Redis",
		slog.String("addr", cfg.RedisAddr),
		slog.Int("db", cfg.RedisDB),
	)

	// Initialize Kafka producer.
	kafkaCfg := pkgkafka.DefaultProducerConfig(cfg.KafkaBrokers)
	producer := pkgkafka.NewProducer(kafkaCfg, logger)
	logger.Info("kafka producer initialized", slog.Any("brokers", cfg.KafkaBrokers))

	// Initialize tracing (no-op when disabled).
	tracingShutdown, err := tracing.InitTracer(ctx, tracing.Config{
		ServiceName:    "storefront",
		ServiceVersion: "0.1.0",
		Environment:    cfg.Environment,
		OTLPEndpoint:   cfg.OTLPEndpoint,
		SampleRate:     cfg.TraceSampleRate,
		Enabled:        cfg.TracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("init tracing: %w", err)
	}

	// Build the dependency graph.
	cartTTL := time.Duration(cfg.CartTTL) * time.Hour
	catalogRepo := memory.NewCatalogRepository()
	customerRepo := memory.NewCustomerRepository()
	cartRepo := redisrepo.NewCartRepository(rdb, cartTTL)

	eventProducer := event.NewProducer(producer, logger)
	pricer := pricing.NewEngine(cfg.ShippingFlatFee)

	catalogService := service.NewCatalogService(catalogRepo, eventProducer, logger)
	customerService := service.NewCustomerService(customerRepo, eventProducer, logger)
	cartService := service.NewCartService(cartRepo, catalogRepo, pricer, eventProducer, logger, cartTTL)
	checkoutService := service.NewCheckoutService(cartRepo, catalogRepo, customerRepo, pricer, eventProducer, logger)

	if cfg.SeedDemoData {
		if err := seedCatalog(ctx, catalogRepo); err != nil {
			return nil, fmt.Errorf("seed demo catalog: %w", err)
		}
		logger.Info("demo catalog seeded")
	}

	// Health checks.
	healthHandler := health.NewHandler()
	healthHandler.Register("redis", func(ctx context.Context) error {
		return rdb.Ping(ctx).Err()
	})
	healthHandler.Register("kafka", producer.Ping)

	// HTTP router.
	router := handler.NewRouter(catalogService, customerService, cartService, checkoutService, healthHandler, logger)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &App{
		cfg:             cfg,
		logger:          logger,
		rdb:             rdb,
		producer:        producer,
		httpServer:      httpServer,
		tracingShutdown: tracingShutdown,
	}, nil
}

// Run starts the HTTP server and blocks until the context is canceled.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("starting HTTP server",
			slog.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	return a.Shutdown()
}

// Shutdown gracefully stops all components.
func (a *App) Shutdown() error {
	a.logger.Info("shutting down application...")

	// Graceful HTTP server shutdown with a 10-second deadline.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("http server shutdown error", slog.String("error", err.Error()))
	}

	if err := a.tracingShutdown(shutdownCtx); err != nil {
		a.logger.Error("tracing shutdown error", slog.String("error", err.Error()))
	}

	// Close Kafka producer.
	if err := a.producer.Close(); err != nil {
		a.logger.Error("kafka producer close error", slog.String("error", err.Error()))
	}

	// Close Redis client.
	if err := a.rdb.Close(); err != nil {
		a.logger.Error("redis close error", slog.String("error", err.Error()))
	}

	a.logger.Info("application shutdown complete")
	return nil
}

// seedCatalog loads a handful of demo products for local development.
func seedCatalog(ctx context.Context, catalog *memory.CatalogRepository) error {
	laptop, err := domain.NewNonPerishable("Laptop", 99900, 5, true, 2.5)
	if err != nil {
		return err
	}
	smartphone, err := domain.NewNonPerishable("Smartphone", 49900, 10, true, 0.4)
	if err != nil {
		return err
	}
	book, err := domain.NewNonPerishable("Book", 2000, 50, false, 0)
	if err != nil {
		return err
	}
	milk, err := domain.NewPerishable("Milk", 500, 20, time.Now().UTC().Add(48*time.Hour), 0.4)
	if err != nil {
		return err
	}

	for _, p := range []*domain.Product{laptop, smartphone, book, milk} {
		if err := catalog.Save(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
