package main

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"enerscout/internal/chat"
	"enerscout/internal/config"
	"enerscout/internal/location"
	"enerscout/internal/providers/assessment"
	"enerscout/internal/session"
)

// App encapsulates application dependencies
type App struct {
	router   *gin.Engine
	logger   *slog.Logger
	cfg      *config.Config
	sessions *session.Manager
	service  *session.Service
	resolver location.Resolver
	chat     *chat.Controller
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(cfg.UI.Origins))

	// One gateway client serves the resolver, the session service and the
	// chat controller.
	client := assessment.NewClient(cfg.Backend.BaseURL, cfg.BackendTimeout(), logger)

	app := &App{
		router:   router,
		logger:   logger,
		cfg:      cfg,
		sessions: session.NewManager(),
		service:  session.NewService(client, logger),
		resolver: location.NewResolver(client, logger),
		chat:     chat.NewController(client, logger),
	}

	logger.Info("application initialized", "backend", cfg.Backend.BaseURL)

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
