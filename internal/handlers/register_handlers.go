package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/nbp_rates_app/cmd/docs"
	"github.com/SscSPs/nbp_rates_app/internal/middleware"
	"github.com/SscSPs/nbp_rates_app/internal/platform/config"
	"github.com/SscSPs/nbp_rates_app/internal/utils"
	"github.com/SscSPs/nbp_rates_app/internal/viewstate"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes over the screen state containers.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	screens *viewstate.Screens,
	posthogClient *utils.PosthogClientWrapper,
) {
	if err := RegisterValidators(); err != nil {
		slog.Error("Failed to register custom validators", slog.String("error", err.Error()))
	}

	r.Use(cors.New(corsConfig(cfg)))

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, screens, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific screen route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	screens *viewstate.Screens,
	posthogClient *utils.PosthogClientWrapper,
) {
	v1 := r.Group("/api/v1")

	limiterInstance, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		slog.Error("Invalid RATE_LIMIT, rate limiting disabled", slog.String("rate", cfg.RateLimit), slog.String("error", err.Error()))
	} else {
		v1.Use(middleware.RateLimit(limiterInstance))
	}
	v1.Use(middleware.PosthogMiddleware(posthogClient))

	registerCurrencyListRoutes(v1, screens.CurrencyList)
	registerCurrencyDetailsRoutes(v1, screens.CurrencyDetails)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, middleware.RequestIDHeader)
	corsCfg.ExposeHeaders = []string{middleware.RequestIDHeader}
	if cfg.AllowsAllOrigins() {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	return corsCfg
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
