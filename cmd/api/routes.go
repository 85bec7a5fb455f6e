package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Zone registry endpoints
	app.router.GET("/zones", app.handleListZones)
	app.router.GET("/zones/:id", app.handleGetZone)
	app.router.POST("/zones/reload", app.handleReloadZones)

	// Classification endpoints
	app.router.GET("/classify", app.handleClassify)
	app.router.GET("/resolve", app.handleResolve)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
