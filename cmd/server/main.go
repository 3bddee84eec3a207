package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/kiwipantry/smartcart/internal/config"
	"github.com/kiwipantry/smartcart/internal/handlers"
	"github.com/kiwipantry/smartcart/internal/middleware"
	"github.com/kiwipantry/smartcart/internal/planner"
	"github.com/kiwipantry/smartcart/internal/repository"
	"github.com/kiwipantry/smartcart/pkg/logger"
)

func main() {
	// Load .env if present; real environments set variables directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting smartcart planner api",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize catalog repository
	var productRepo repository.ProductRepository
	if cfg.Catalog.File != "" {
		repo, err := repository.NewFromFile(cfg.Catalog.File)
		if err != nil {
			log.Error("failed to load catalog file", "file", cfg.Catalog.File, "error", err)
			os.Exit(1)
		}
		log.Info("catalog loaded from file", "file", cfg.Catalog.File)
		productRepo = repo
	} else {
		productRepo = repository.NewInMemoryProductRepository()
		log.Info("using built-in seed catalog")
	}

	// Initialize planner with configured policy overrides
	policy := planner.DefaultPolicy()
	policy.SurvivalCostPerMeal = cfg.Planner.SurvivalCostPerMeal
	policy.InfantBudgetReserve = cfg.Planner.InfantBudgetReserve
	policy.MaxLineQuantity = cfg.Planner.MaxLineQuantity
	cartPlanner := planner.New(productRepo, policy)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(productRepo, log)
	cartHandler := handlers.NewCartHandler(cartPlanner, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productID}", productHandler.GetProduct)

		// Cart generation
		r.Post("/cart", cartHandler.GenerateCart)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
