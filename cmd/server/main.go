package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/barakhava1/CashoryLoanTracker/internal/bootstrap"
	"github.com/barakhava1/CashoryLoanTracker/internal/config"
	"github.com/barakhava1/CashoryLoanTracker/internal/handler"
	"github.com/barakhava1/CashoryLoanTracker/internal/repository"
	"github.com/barakhava1/CashoryLoanTracker/internal/service"
	"github.com/barakhava1/CashoryLoanTracker/pkg/response"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger(cfg)

	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := repository.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	redisClient := initRedis(cfg)
	defer redisClient.Close()

	store := repository.NewSettingsRepository(db)

	// Startup gate: one decision per process run, failure falls open to the
	// native loan tracker.
	resolver := bootstrap.NewResolver(store, bootstrap.NewHTTPClient(cfg), logger)

	resolveCtx, cancelResolve := context.WithTimeout(context.Background(), cfg.Bootstrap.TimeoutDuration())
	outcome, err := resolver.Resolve(resolveCtx)
	cancelResolve()
	if err != nil {
		log.Fatalf("Failed to resolve startup state: %v", err)
	}
	logger.Info("startup state resolved", "state", outcome.State)

	loanService, err := service.NewLoanService(context.Background(), store, redisClient, cfg, logger)
	if err != nil {
		log.Fatalf("Failed to initialize loan service: %v", err)
	}

	loanHandler := handler.NewLoanHandler(loanService)
	settingsHandler := handler.NewSettingsHandler(store)
	stateHandler := handler.NewStateHandler(outcome)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	router := setupRoutes(loanHandler, settingsHandler, stateHandler, healthHandler)
	router.Use(response.LoggingMiddleware(logger))

	server := &http.Server{
		Addr:    cfg.Server.Host + ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("server exited")
}

func initDB(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetimeDuration())

	return db, nil
}

func initRedis(cfg *config.Config) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
}

func setupRoutes(
	loanHandler *handler.LoanHandler,
	settingsHandler *handler.SettingsHandler,
	stateHandler *handler.StateHandler,
	healthHandler *handler.HealthHandler,
) *mux.Router {
	router := mux.NewRouter()

	// Health check
	router.HandleFunc("/health", healthHandler.Health).Methods("GET")
	router.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")

	// API routes
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/state", stateHandler.State).Methods("GET")

	api.HandleFunc("/loans", loanHandler.List).Methods("GET")
	api.HandleFunc("/loans", loanHandler.Create).Methods("POST")
	api.HandleFunc("/loans/{id}", loanHandler.Get).Methods("GET")
	api.HandleFunc("/loans/{id}", loanHandler.Update).Methods("PUT")
	api.HandleFunc("/loans/{id}", loanHandler.Delete).Methods("DELETE")
	api.HandleFunc("/loans/{id}/payment", loanHandler.Pay).Methods("POST")
	api.HandleFunc("/loans/{id}/paid", loanHandler.MarkPaid).Methods("POST")
	api.HandleFunc("/summary", loanHandler.Summary).Methods("GET")

	api.HandleFunc("/settings/theme", settingsHandler.GetTheme).Methods("GET")
	api.HandleFunc("/settings/theme", settingsHandler.SetTheme).Methods("PUT")
	api.HandleFunc("/settings/session", settingsHandler.ClearSession).Methods("DELETE")

	return router
}
