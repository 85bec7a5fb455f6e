package main

import (
	"errors"
	"net/http"

	"zonemap/internal/resolver"

	"github.com/gin-gonic/gin"
)

// ClassifyInput defines the query parameters for the classify endpoint
type ClassifyInput struct {
	Latitude  float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// ResolveInput defines the query parameters for the resolve endpoint
type ResolveInput struct {
	Query string `form:"query" binding:"required"` // Free-form address or place query
}

// ClassifyResponse is the classification answer for a coordinate. Zone is
// null when the point falls outside every registered zone.
type ClassifyResponse struct {
	Coordinates CoordsResponse `json:"coordinates"`
	Zone        *ZoneSummary   `json:"zone"`
	Timezone    string         `json:"timezone,omitempty" example:"America/Los_Angeles"`
}

// ResolveResponse is the classification answer for an address query
type ResolveResponse struct {
	Query       string         `json:"query" example:"Bellevue Downtown Park"`
	DisplayName string         `json:"displayName" example:"Downtown Park, Bellevue, King County, Washington, United States"`
	Coordinates CoordsResponse `json:"coordinates"`
	Zone        *ZoneSummary   `json:"zone"`
	Timezone    string         `json:"timezone,omitempty" example:"America/Los_Angeles"`
}

// handleClassify godoc
// @Summary Classify a coordinate
// @Description Assign a coordinate to the first matching zone in registry order; a null zone means the point is outside every zone
// @Tags classification
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(47.60)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(-122.19)
// @Success 200 {object} ClassifyResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /classify [get]
func (app *App) handleClassify(c *gin.Context) {
	var input ClassifyInput

	// Bind and validate query parameters
	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Delegate to business layer
	classification, err := app.resolverService.Classify(input.Latitude, input.Longitude)
	if err != nil {
		// Check if it's a validation error from business layer
		if errors.Is(err, resolver.ErrInvalidLatitude) || errors.Is(err, resolver.ErrInvalidLongitude) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		// Other errors are internal server errors
		app.logger.Error("failed to classify coordinate",
			"latitude", input.Latitude,
			"longitude", input.Longitude,
			"error", err,
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to classify coordinate"})
		return
	}

	c.JSON(http.StatusOK, ClassifyResponse{
		Coordinates: toCoordsResponse(classification.Coordinates),
		Zone:        toZoneSummary(classification.Zone),
		Timezone:    classification.Timezone,
	})
}

// handleResolve godoc
// @Summary Resolve an address to a zone
// @Description Geocode a free-form query via Nominatim and classify the best match; 404 when the geocoder finds no location
// @Tags classification
// @Produce json
// @Param query query string true "Free-form address or place query" example(Bellevue Downtown Park)
// @Success 200 {object} ResolveResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /resolve [get]
func (app *App) handleResolve(c *gin.Context) {
	var input ResolveInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resolution, err := app.resolverService.Resolve(c.Request.Context(), input.Query)
	if err != nil {
		switch {
		case errors.Is(err, resolver.ErrEmptyQuery):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, resolver.ErrNoMatch):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			app.logger.Error("failed to resolve query",
				"query", input.Query,
				"error", err,
			)
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to resolve query"})
		}
		return
	}

	c.JSON(http.StatusOK, ResolveResponse{
		Query:       resolution.Query,
		DisplayName: resolution.DisplayName,
		Coordinates: toCoordsResponse(resolution.Coordinates),
		Zone:        toZoneSummary(resolution.Zone),
		Timezone:    resolution.Timezone,
	})
}
