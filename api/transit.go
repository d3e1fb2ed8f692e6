package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hydepark-apt/amenity-api/geo"
	"github.com/hydepark-apt/amenity-api/schema"
	"github.com/hydepark-apt/amenity-api/store"
)

// fetchBusStops returns the deduplicated transit stops within walking
// distance of a property, with route memberships, and caches the feature
// list onto the property the first time it is computed.
func (s *Server) fetchBusStops(c *gin.Context) {
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

	walkingTime, err := walkingTimeParam(c, s.settings.DefaultTransitMinutes)
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

	stops, err := s.mongoStore.FindStopsWithin(center, radius)
	if err != nil {
		log.WithField("geocode", c.Query("geocode")).Error("query bus stop data: ", err)
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	deduped := geo.DedupeStops(stops)
	if len(deduped) == 0 {
		// unlike groceries, zero stops is treated as a client error
		abortWithEncoding(c, http.StatusBadRequest, errorNoBusStops)
		return
	}

	features := make([]schema.Feature, 0, len(deduped))
	for _, stop := range deduped {
		routes := stop.RouteIDs
		if routes == nil {
			routes = []string{}
		}
		features = append(features, schema.Feature{
			Type:     "Feature",
			Geometry: stop.Location,
			Properties: map[string]interface{}{
				"stop_name":    stop.Name,
				"distance_min": s.distance.WalkingMinutesRounded(stop.DistanceM),
				"routes":       routes,
				"stop_id":      stop.ID.Hex(),
			},
		})
	}

	if _, err := s.mongoStore.CacheBusStops(property.ID, features); err != nil {
		// the response is already computed; a failed cache write is not
		// the client's problem
		log.WithField("property_id", property.ID.Hex()).Error("update bus stop cache: ", err)
	}

	c.JSON(http.StatusOK, gin.H{
		"address":           property.Address,
		"walking_time":      walkingTime,
		"bus_stops_geojson": schema.NewFeatureCollection(features),
	})
}

// fetchBusRoutes returns route geometries for a comma-separated id list,
// each assigned an evenly spaced HSL color in input order.
func (s *Server) fetchBusRoutes(c *gin.Context) {
	routeIDs := geo.ParseRouteList(c.Query("bus_route"))
	if len(routeIDs) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	routes, err := s.mongoStore.ListRoutesByID(routeIDs)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if len(routes) == 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorRouteNotFound)
		return
	}

	colors := geo.RouteColors(routeIDs)

	features := make([]schema.Feature, 0, len(routes))
	for _, route := range routes {
		features = append(features, schema.Feature{
			Type:     "Feature",
			Geometry: route.Geometry,
			Properties: map[string]interface{}{
				"route_id": route.ID,
				"name":     route.Name,
				"type":     route.Type,
				"color":    colors[route.ID],
			},
		})
	}

	c.JSON(http.StatusOK, schema.NewFeatureCollection(features))
}
