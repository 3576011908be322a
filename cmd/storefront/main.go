package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/api/handlers"
	"github.com/aaravmahajanofficial/storefront/internal/api/middleware"
	"github.com/aaravmahajanofficial/storefront/internal/cache"
	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/aaravmahajanofficial/storefront/internal/health"
	"github.com/aaravmahajanofficial/storefront/internal/metrics"
	repository "github.com/aaravmahajanofficial/storefront/internal/repositories"
	service "github.com/aaravmahajanofficial/storefront/internal/services"
	"github.com/aaravmahajanofficial/storefront/internal/telemetry"
	"github.com/aaravmahajanofficial/storefront/internal/views"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup
	shutdownTracing, err := telemetry.InitTracing(context.Background(), cfg.Otel)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	defer func() {
		if err := sessionCache.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	healthChecker, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checker", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessionRepo := repository.NewSessionRepo(sessionCache, cfg.Session.TTL)
	rateLimitRepo := repository.NewRateLimitRepo(redisClient, cfg.RateLimit)
	sessionService := service.NewSessionService(sessionRepo, cfg.Catalog)
	catalogService := service.NewCatalogService(repos.Catalog, cfg.Catalog)
	cartService := service.NewCartService(sessionService, catalogService)
	viewService := service.NewViewService(views.NewResolver(), sessionService, catalogService)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	cartHandler := handlers.NewCartHandler(cartService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	viewHandler := handlers.NewViewHandler(viewService)

	sessionMiddleware := middleware.NewSessionMiddleware([]byte(cfg.Session.TokenSecret), cfg.Session.TTL, sessionService, rateLimitRepo)

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	handle := func(pattern string, h http.Handler) {
		routerMux.Handle(pattern, metrics.Instrument(pattern, h))
	}
	withSession := sessionMiddleware.Attach

	handle("GET /api/v1/session", withSession(sessionHandler.GetSession()))
	handle("DELETE /api/v1/session", withSession(sessionHandler.EndSession()))
	handle("PUT /api/v1/session/category", withSession(sessionHandler.SetCategory()))
	handle("PUT /api/v1/session/currency", withSession(sessionHandler.SetCurrency()))
	handle("PUT /api/v1/session/overlays", withSession(sessionHandler.SetOverlays()))
	handle("DELETE /api/v1/session/overlays", withSession(sessionHandler.DismissOverlays()))
	handle("GET /api/v1/cart", withSession(cartHandler.GetCart()))
	handle("PUT /api/v1/cart", withSession(cartHandler.ReplaceCart()))
	handle("POST /api/v1/cart/items", withSession(cartHandler.AddItem()))
	handle("DELETE /api/v1/cart/items/{id}", withSession(cartHandler.RemoveItem()))
	handle("PATCH /api/v1/cart/items/{id}/options", withSession(cartHandler.UpdateOption()))
	handle("GET /api/v1/products", catalogHandler.ListProducts())
	handle("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	handle("GET /api/v1/categories", catalogHandler.ListCategories())
	handle("GET /api/v1/currencies", catalogHandler.ListCurrencies())
	handle("GET /api/v1/views", withSession(viewHandler.ResolveView()))
	routerMux.Handle("GET /health", healthChecker.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.String("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("⚠️ Error flushing traces", slog.String("error", err.Error()))
	}

}
