package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hydepark-apt/amenity-api/schema"
	"github.com/hydepark-apt/amenity-api/store"
)

// fetchGroceries returns grocery amenities within walking distance of a
// property, nearest first. Zero results is a valid answer. The first
// computed envelope is cached onto the property.
func (s *Server) fetchGroceries(c *gin.Context) {
	propertyID, err := primitive.ObjectIDFromHex(c.Query("property_id"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	center, err := parseGeocodeParam(c.Query("geocode"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	walkingTime, err := walkingTimeParam(c, s.settings.DefaultGroceryMinutes)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	radius, err := s.distance.RadiusMeters(walkingTime)
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	property, err := s.mongoStore.GetProperty(propertyID)
	if err != nil {
		if err == store.ErrPropertyNotFound {
			abortWithEncoding(c, http.StatusBadRequest, errorPropertyNotFound)
			return
		}
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	groceries, err := s.mongoStore.FindAmenitiesWithin(schema.AmenityTypeGrocery, center, radius)
	if err != nil {
		log.WithField("geocode", c.Query("geocode")).Error("query grocery data: ", err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	features := make([]schema.Feature, 0, len(groceries))
	for _, grocery := range groceries {
		features = append(features, schema.Feature{
			Type:     "Feature",
			Geometry: grocery.Location,
			Properties: map[string]interface{}{
				"name":         grocery.Name,
				"distance_min": s.distance.WalkingMinutesTenths(grocery.DistanceM),
				"address":      grocery.Address,
			},
		})
	}

	envelope := schema.GroceryEnvelope{
		Address:        property.Address,
		WalkingTime:    walkingTime,
		GroceryGeoJSON: schema.NewFeatureCollection(features),
	}

	if _, err := s.mongoStore.CacheGroceries(property.ID, envelope); err != nil {
		log.WithField("property_id", property.ID.Hex()).Error("update grocery cache: ", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"address":         envelope.Address,
		"walking_time":    envelope.WalkingTime,
		"grocery_geojson": envelope.GroceryGeoJSON,
	})
}
