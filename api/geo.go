package api

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hydepark-apt/amenity-api/schema"
)

// parseGeocodeParam parses the canonical "lon,lat" geocode query value.
// Every endpoint uses the same ordering.
func parseGeocodeParam(geocode string) (schema.Location, error) {
	parts := strings.Split(geocode, ",")
	if len(parts) != 2 {
		return schema.Location{}, fmt.Errorf("invalid geocode value")
	}

	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return schema.Location{}, err
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return schema.Location{}, err
	}

	return schema.Location{Longitude: lon, Latitude: lat}, nil
}

// walkingTimeParam returns the walking_time query value, substituting the
// given default when the parameter is absent. A present but malformed or
// non-positive value is an error.
func walkingTimeParam(c *gin.Context, defaultMinutes int) (int, error) {
	raw := c.Query("walking_time")
	if strings.TrimSpace(raw) == "" {
		return defaultMinutes, nil
	}

	minutes, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, err
	}
	if minutes <= 0 {
		return 0, fmt.Errorf("walking time must be a positive number of minutes")
	}

	return minutes, nil
}
