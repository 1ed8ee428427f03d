package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/aodata-web/internal/format"
	"github.com/guttosm/aodata-web/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RouterOptions tunes the middleware chain. Zero values fall back to the defaults
// (10s page timeout, 60 requests per minute per IP).
type RouterOptions struct {
	RequestTimeout     time.Duration
	RateLimitPerMinute int
}

// NewRouter creates a Gin engine with the page routes configured.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter).
//   - Bounds every page load with the request timeout.
//   - Registers the shared formatters as template functions.
//   - Mounts Swagger docs (/swagger/*any).
//
// Note:
//   - Health and readiness endpoints (/healthz, /readyz) are registered in app.InitializeApp().
func NewRouter(handler *Handler, opts RouterOptions) *gin.Engine {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.RateLimitPerMinute <= 0 {
		opts.RateLimitPerMinute = 60
	}

	router := gin.New()
	router.SetFuncMap(format.FuncMap())

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(opts.RateLimitPerMinute),
		middleware.Timeout(opts.RequestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── Pages ────────────────────────────────────
	router.GET("/", handler.GetOverview)
	router.GET("/statistics", handler.GetStatistics)
	router.GET("/dev/statistics", handler.GetDevStatistics)
	router.GET("/items/:unique_name", handler.GetItem)
	router.GET("/search/:query", handler.GetSearch)
	router.GET("/pages/:slug", handler.GetSlug)

	return router
}
