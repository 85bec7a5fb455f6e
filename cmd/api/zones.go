package main

import (
	"net/http"

	"zonemap/internal/types"
	"zonemap/internal/zones"

	"github.com/gin-gonic/gin"
)

// ZoneSummary is the listing view of a zone
type ZoneSummary struct {
	ID       string `json:"id" example:"bellevue-west"`
	Name     string `json:"name" example:"Bellevue West"`
	Color    string `json:"color" example:"#1f77b4"`
	Vertices int    `json:"vertices" example:"4"` // Number of boundary vertices
}

// ZoneListResponse is the response for the zone listing endpoint
type ZoneListResponse struct {
	Zones []ZoneSummary `json:"zones"`
	Count int           `json:"count" example:"3"`
}

// CoordsResponse is a coordinate pair in a response body
type CoordsResponse struct {
	Latitude  float64 `json:"latitude" example:"47.6001"`
	Longitude float64 `json:"longitude" example:"-122.1915"`
}

// ZoneDetailResponse is the detail view of a zone, including its boundary
// and the label centroid
type ZoneDetailResponse struct {
	ID       string           `json:"id" example:"bellevue-west"`
	Name     string           `json:"name" example:"Bellevue West"`
	Color    string           `json:"color" example:"#1f77b4"`
	Boundary []CoordsResponse `json:"boundary"`
	Centroid CoordsResponse   `json:"centroid"`
}

// ReloadResponse reports the outcome of a registry reload
type ReloadResponse struct {
	Zones int `json:"zones" example:"3"` // Zone count of the new snapshot
}

func toCoordsResponse(c types.Coords) CoordsResponse {
	return CoordsResponse{Latitude: c.Latitude, Longitude: c.Longitude}
}

func toZoneSummary(z *zones.Zone) *ZoneSummary {
	if z == nil {
		return nil
	}
	return &ZoneSummary{
		ID:       z.ID,
		Name:     z.Name,
		Color:    z.Color,
		Vertices: len(z.Boundary),
	}
}

// handleListZones godoc
// @Summary List zones
// @Description List all registered zones in priority order
// @Tags zones
// @Produce json
// @Success 200 {object} ZoneListResponse
// @Router /zones [get]
func (app *App) handleListZones(c *gin.Context) {
	registry := app.store.Current()
	zs := registry.Zones()

	resp := ZoneListResponse{
		Zones: make([]ZoneSummary, 0, len(zs)),
		Count: registry.Len(),
	}
	for i := range zs {
		resp.Zones = append(resp.Zones, *toZoneSummary(&zs[i]))
	}

	c.JSON(http.StatusOK, resp)
}

// handleGetZone godoc
// @Summary Get zone detail
// @Description Retrieve a zone's boundary and label centroid by id
// @Tags zones
// @Produce json
// @Param id path string true "Zone id" example(bellevue-west)
// @Success 200 {object} ZoneDetailResponse
// @Failure 404 {object} map[string]string
// @Router /zones/{id} [get]
func (app *App) handleGetZone(c *gin.Context) {
	zone, ok := app.store.Current().ByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "zone not found"})
		return
	}

	resp := ZoneDetailResponse{
		ID:       zone.ID,
		Name:     zone.Name,
		Color:    zone.Color,
		Boundary: make([]CoordsResponse, 0, len(zone.Boundary)),
		Centroid: toCoordsResponse(zones.Centroid(zone.Boundary)),
	}
	for _, v := range zone.Boundary {
		resp.Boundary = append(resp.Boundary, toCoordsResponse(v))
	}

	c.JSON(http.StatusOK, resp)
}

// handleReloadZones godoc
// @Summary Reload the zone registry
// @Description Re-read the zones file and atomically swap in the new snapshot. On failure the previous snapshot stays live.
// @Tags zones
// @Produce json
// @Success 200 {object} ReloadResponse
// @Failure 422 {object} map[string]string
// @Router /zones/reload [post]
func (app *App) handleReloadZones(c *gin.Context) {
	registry, err := zones.LoadFile(app.cfg.Zones.Path)
	if err != nil {
		app.logger.Error("zone reload rejected", "path", app.cfg.Zones.Path, "error", err)
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	app.store.Swap(registry)
	app.logger.Info("zone registry reloaded", "path", app.cfg.Zones.Path, "zones", registry.Len())

	c.JSON(http.StatusOK, ReloadResponse{Zones: registry.Len()})
}
