package app

import (
	"fmt"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/aodata-web/config"
	"github.com/guttosm/aodata-web/internal/api"
	"github.com/guttosm/aodata-web/internal/backend"
	"github.com/guttosm/aodata-web/internal/logger"
	"github.com/guttosm/aodata-web/internal/service"
)

// clientFactory builds the statistics backend client.
// indirection for unit testing
var clientFactory = func(baseURL string) (*backend.Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("invalid backend url %q", baseURL)
	}
	return backend.NewClient(baseURL, backend.WithLogger(logger.L())), nil
}

// NewPageService wires a page service against the backend selected by cfg.
// It is shared by the API server and the one-shot summary mode.
func NewPageService(cfg config.Config) (service.PageService, *backend.Client, error) {
	client, err := clientFactory(cfg.BackendURL())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize backend client: %w", err)
	}
	return service.NewPageService(client), client, nil
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Resolves the backend URL for the current environment (ENV=PROD selects the production backend).
//   - Initializes the page loaders on top of the backend client.
//   - Creates the HTTP handler layer and configures the Gin router.
//   - Registers health and readiness probes (readiness pings the backend).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	svc, client, err := NewPageService(cfg)
	if err != nil {
		return nil, nil, err
	}

	logger.L().Info().
		Str("env", cfg.Env).
		Str("backend_url", client.BaseURL()).
		Msg("statistics backend selected")

	handler := api.NewHandler(svc)

	router := api.NewRouter(handler, api.RouterOptions{
		RequestTimeout:     cfg.Server.RequestTimeout,
		RateLimitPerMinute: cfg.Server.RateLimitPerMinute,
	})

	healthHandler := api.NewHealthHandler(client.Ping)
	healthHandler.Register(router)

	// The client holds no resources beyond pooled connections.
	cleanup := func() {
		logger.L().Info().Msg("page service stopped")
	}

	return router, cleanup, nil
}
