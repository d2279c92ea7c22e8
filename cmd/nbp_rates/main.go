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

	"github.com/SscSPs/nbp_rates_app/internal/adapters/nbp"
	portsrepo "github.com/SscSPs/nbp_rates_app/internal/core/ports/repositories"
	"github.com/SscSPs/nbp_rates_app/internal/core/services"
	"github.com/SscSPs/nbp_rates_app/internal/handlers"
	"github.com/SscSPs/nbp_rates_app/internal/middleware"
	"github.com/SscSPs/nbp_rates_app/internal/platform/config"
	"github.com/SscSPs/nbp_rates_app/internal/utils"
	"github.com/SscSPs/nbp_rates_app/internal/viewstate"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

// @title NBP Rates API
// @version 1.0
// @description Screen state API over the National Bank of Poland exchange rate tables.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	nbpClient, err := nbp.NewClient(cfg.NBPBaseURL,
		nbp.WithTimeout(cfg.NBPHTTPTimeout),
		nbp.WithLogger(logger),
	)
	if err != nil {
		logger.Error("Failed to create NBP client", slog.String("base_url", cfg.NBPBaseURL), slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		CurrencyListRepo:    nbp.NewCurrencyListRepository(nbpClient),
		CurrencyDetailsRepo: nbp.NewCurrencyDetailsRepository(nbpClient),
	}
	serviceContainer := services.NewServiceContainer(cfg, repos)
	screens := viewstate.NewScreens(serviceContainer)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The list screen loads as soon as it exists.
	screens.Start(middleware.WithLogger(ctx, logger.With(slog.String("screen", "currency_list"))))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	err = r.SetTrustedProxies(nil)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, screens, posthogClient)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("nbp_base_url", cfg.NBPBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}
