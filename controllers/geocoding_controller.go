package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/smartwayz/api-go/geocoding"
)

// GeocodingController proxies reverse-geocoding lookups so browser
// clients avoid CORS and user-agent restrictions on the upstream
// providers.
type GeocodingController struct {
	Service *geocoding.Service
}

func NewGeocodingController(service *geocoding.Service) *GeocodingController {
	return &GeocodingController{Service: service}
}

// ReverseGeocode handles GET /api/geocoding/reverse?lat=<lat>&lon=<lon>.
// Provider failures are absorbed by the service's fallback chain, so
// this endpoint only fails on missing or invalid coordinates.
func (gc *GeocodingController) ReverseGeocode(c *gin.Context) {
	lat := c.Query("lat")
	lon := c.Query("lon")

	if lat == "" || lon == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required parameters: lat and lon"})
		return
	}

	result, err := gc.Service.Resolve(c.Request.Context(), lat, lon)
	if err != nil {
		if errors.Is(err, geocoding.ErrInvalidCoordinates) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Geocoding failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}
