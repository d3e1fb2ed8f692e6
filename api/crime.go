package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hydepark-apt/amenity-api/schema"
)

// fetchCrimes returns crime records within walking distance of a point.
// Zero results is a valid answer.
func (s *Server) fetchCrimes(c *gin.Context) {
	center, err := parseGeocodeParam(c.Query("geocode"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	walkingTime, err := walkingTimeParam(c, s.settings.DefaultCrimeMinutes)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	radius, err := s.distance.RadiusMeters(walkingTime)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	crimes, err := s.mongoStore.FindCrimesWithin(center, radius)
	if err != nil {
		log.WithField("geocode", c.Query("geocode")).Error("query crime data: ", err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	features := make([]schema.Feature, 0, len(crimes))
	for _, crime := range crimes {
		features = append(features, schema.Feature{
			Type:     "Feature",
			Geometry: crime.Location,
			Properties: map[string]interface{}{
				"type":         crime.Type,
				"description":  crime.Description,
				"date":         crime.Date.Format("2006-01-02"),
				"distance_min": s.distance.WalkingMinutesTenths(crime.DistanceM),
			},
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"walking_time":  walkingTime,
		"crime_geojson": schema.NewFeatureCollection(features),
	})
}
