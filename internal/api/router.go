package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/cinegraph/cinegraph/internal/graphdb"
	"github.com/cinegraph/cinegraph/internal/middleware"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Log            *logrus.Logger
	DB             *graphdb.DB
	Movies         MovieRepository
	Graph          GraphRepository
	CORSOrigins    []string
	Version        string
	RequestTimeout time.Duration
	MaxConcurrency int64
	MaxBodyBytes   int64
}

// Router-level limits.
const (
	rateLimit = 100 // requests per second per IP
	rateBurst = 200 // token bucket burst size
)

// setupMiddleware configures all middleware on the Gin engine.
func setupMiddleware(ctx context.Context, r *gin.Engine, deps *RouterDeps) {
	r.SetTrustedProxies(nil) //nolint:errcheck // nil always succeeds.
	r.Use(middleware.RequestID(deps.Log))
	r.Use(ginLogger(deps.Log))
	r.Use(gin.Recovery())
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.MaxBodySize(deps.MaxBodyBytes))
	r.Use(corsMiddleware(deps.CORSOrigins))
	r.Use(middleware.NewRateLimiter(ctx, rateLimit, rateBurst).Handler())
	r.Use(middleware.ConcurrencyLimit(deps.MaxConcurrency))
	r.Use(middleware.RequestTimeout(deps.RequestTimeout))
	r.Use(middleware.PrometheusMiddleware())

	// Metrics endpoint (unauthenticated, like health).
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// corsMiddleware builds the CORS policy. The demo dataset is public, so a
// lone "*" origin switches to allow-all; otherwise only the configured
// origins pass.
func corsMiddleware(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type"},
		MaxAge:           1 * time.Hour,
		AllowCredentials: false,
	}

	if len(origins) == 1 && origins[0] == "*" {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}

	return cors.New(cfg)
}

// registerRoutes sets up all API route handlers on the given engine.
func registerRoutes(r *gin.Engine, deps *RouterDeps) {
	log := deps.Log

	health := NewHealthHandler(deps.DB, log, deps.Version)
	movies := NewMovieHandler(deps.Movies, log)
	search := NewSearchHandler(deps.Movies, log)
	graph := NewGraphHandler(deps.Graph, log)

	r.GET("/health", health.Liveness)
	r.GET("/ready", health.Readiness)

	// Movies.
	r.GET("/movie/:title", movies.Get)
	r.POST("/movie/vote/:title", movies.Vote)

	// Search.
	r.GET("/search", search.Movies)

	// Graph browsing.
	r.GET("/graph", graph.Browse)
}

// NewRouter creates and configures the Gin engine with all middleware and routes.
func NewRouter(ctx context.Context, deps *RouterDeps) http.Handler {
	r := gin.New()
	setupMiddleware(ctx, r, deps)
	registerRoutes(r, deps)

	return r
}
