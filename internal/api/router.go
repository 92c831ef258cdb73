package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/genenet/internal/domain"
	"github.com/persistorai/genenet/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log         *logrus.Logger
	DB          domain.HealthChecker // nil without DATABASE_URL
	Runs        domain.RunService
	Networks    domain.NetworkService
	CORSOrigins []string
	Version     string
}

// Router-level limits.
const (
	maxBodySize = 10 << 20 // 10 MB
	rateLimit   = 100      // requests per second per IP
	rateBurst   = 200      // token bucket burst size

	// Creating a run fans out to IntAct and togows, so it is limited separately.
	runRateLimit = 0.2
	runRateBurst = 5
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(maxBodySize))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{middleware.RequestIDHeader},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.Prometheus())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// registerRoutes sets up all API route handlers on the given router group.
func registerRoutes(ctx context.Context, api *gin.RouterGroup, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.DB, log, deps.Version)
	runs := NewRunHandler(deps.Runs, log)
	networks := NewNetworkHandler(deps.Networks, log)
	runLimiter := middleware.NewRateLimiter(ctx, runRateLimit, runRateBurst)

	api.GET("/health", health.Liveness)
	api.GET("/ready", health.Readiness)

	// Runs.
	api.GET("/runs", runs.List)
	api.POST("/runs", runLimiter.Handler(), runs.Create)
	api.GET("/runs/:id", runs.Get)
	api.GET("/runs/:id/networks", runs.Networks)
	api.GET("/runs/:id/report", runs.Report)
	api.DELETE("/runs/:id", runs.Delete)

	// Stateless network building.
	api.POST("/networks", networks.Build)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(ctx, r.Group("/api/v1"), deps)

	return r
}
