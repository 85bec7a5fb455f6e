package main

import (
	"log/slog"

	"zonemap/internal/config"
	"zonemap/internal/providers/nominatim"
	"zonemap/internal/resolver"
	"zonemap/internal/timezone"
	"zonemap/internal/zones"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router          *gin.Engine
	logger          *slog.Logger
	cfg             *config.Config
	store           *zones.Store
	resolverService resolver.Service
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())

	// Load the zone registry; a bad zones file is fatal at startup so a
	// classification can never run against unvalidated data.
	registry, err := zones.LoadFile(cfg.Zones.Path)
	if err != nil {
		return nil, err
	}
	store := zones.NewStore(registry)
	logger.Info("zone registry loaded", "path", cfg.Zones.Path, "zones", registry.Len())

	geocoder := nominatim.NewClientWith(cfg.Nominatim.BaseURL, cfg.GeocoderTimeout())

	var tz resolver.TimezoneProvider
	if cfg.Resolver.Timezone {
		tzSvc, err := timezone.NewService()
		if err != nil {
			return nil, err
		}
		tz = tzSvc
	}

	app := &App{
		router:          router,
		logger:          logger,
		cfg:             cfg,
		store:           store,
		resolverService: resolver.NewService(store, geocoder, tz, logger),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}
