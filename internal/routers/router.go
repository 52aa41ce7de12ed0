// Package routers assembles the gin engines.
package routers

import (
	"time"

	"github.com/haierkeys/light-notes-service/internal/app"
	"github.com/haierkeys/light-notes-service/internal/middleware"
	"github.com/haierkeys/light-notes-service/internal/routers/api_router"
	"github.com/haierkeys/light-notes-service/pkg/limiter"

	"github.com/gin-gonic/gin"
)

// NewRouter creates the public API router.
// The surface is a single method-routed path: GET and POST on
// /api/notes. Everything else is 405 on the route and 404 elsewhere.
func NewRouter(appContainer *app.App) *gin.Engine {

	cfg := appContainer.Config()

	methodLimiters := limiter.NewMethodLimiter().AddBuckets(
		limiter.BucketRule{
			Key:          "/api/notes",
			FillInterval: time.Second,
			Capacity:     cfg.App.RateLimitCapacity,
			Quantum:      cfg.App.RateLimitCapacity,
		},
	)

	r := gin.New()
	r.HandleMethodNotAllowed = true

	api := r.Group("/api")
	{
		api.Use(middleware.AppInfoWithConfig(app.Name, app.Version))
		api.Use(middleware.TraceMiddlewareWithConfig(cfg.Tracer.Enabled, cfg.Tracer.Header))
		api.Use(middleware.RateLimiter(methodLimiters))
		api.Use(middleware.ContextTimeout(time.Duration(cfg.App.DefaultContextTimeout) * time.Second))
		api.Use(middleware.Cors())
		api.Use(middleware.Metrics())
		api.Use(middleware.AccessLogWithLogger(appContainer.Logger()))
		api.Use(middleware.RecoveryWithLogger(appContainer.Logger()))

		noteHandler := api_router.NewNoteHandler(appContainer)

		api.GET("/notes", noteHandler.List)
		api.POST("/notes", noteHandler.Create)
	}

	r.NoMethod(middleware.NoMethod())
	r.NoRoute(middleware.NoFound())

	return r
}
