package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hydepark-apt/amenity-api/api/mocks"
	"github.com/hydepark-apt/amenity-api/config"
	"github.com/hydepark-apt/amenity-api/geo"
	"github.com/hydepark-apt/amenity-api/schema"
)

func testSettings() *config.Settings {
	return &config.Settings{
		WalkingSpeedMPerMin:   70,
		DefaultTransitMinutes: 5,
		DefaultGroceryMinutes: 15,
		DefaultCrimeMinutes:   15,
		TargetCity:            "Chicago",
		HydePark: config.Bounds{
			North: 41.809647,
			South: 41.780482,
			East:  -87.578501,
			West:  -87.615288,
		},
	}
}

func TestFetchBusStops(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	settings := testSettings()
	s := Server{
		mongoStore: m,
		settings:   settings,
		distance:   geo.NewDistanceResolver(settings),
	}

	propertyID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71bb5")
	property := &schema.Property{
		ID:      propertyID,
		Address: "5514 S BLACKSTONE AVE",
	}

	nearID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71b01")
	farID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71b02")
	otherID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71b03")

	center := schema.Location{Longitude: -87.590, Latitude: 41.795}

	m.EXPECT().GetProperty(propertyID).Return(property, nil).Times(1)
	// default walking time is 5 minutes at 70 m/min, a 350m radius
	m.EXPECT().FindStopsWithin(center, 350.0).Return([]schema.TransitStop{
		{ID: nearID, Name: "55th & Blackstone", Type: schema.TransitTypeCTA, RouteIDs: []string{"55"}, DistanceM: 140},
		{ID: otherID, Name: "55th & Dorchester", Type: schema.TransitTypeCTA, RouteIDs: []string{"55", "171"}, DistanceM: 210},
		{ID: farID, Name: "55th & Blackstone", Type: schema.TransitTypeCTA, RouteIDs: []string{"171"}, DistanceM: 320},
	}, nil).Times(1)
	m.EXPECT().CacheBusStops(propertyID, gomock.Any()).Return(true, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchBusStops)

	req := httptest.NewRequest("GET",
		"/?property_id=5e8bf47a0ff4f2d27df71bb5&geocode=-87.590,41.795", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Address         string                   `json:"address"`
		WalkingTime     int                      `json:"walking_time"`
		BusStopsGeoJSON schema.FeatureCollection `json:"bus_stops_geojson"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, "5514 S BLACKSTONE AVE", jResp.Address)
	assert.Equal(t, 5, jResp.WalkingTime)

	// the duplicate stop name collapses to its closest instance
	assert.Len(t, jResp.BusStopsGeoJSON.Features, 2)
	first := jResp.BusStopsGeoJSON.Features[0].Properties
	assert.Equal(t, "55th & Blackstone", first["stop_name"])
	assert.Equal(t, float64(2), first["distance_min"])
	assert.Equal(t, []interface{}{"55"}, first["routes"])
	second := jResp.BusStopsGeoJSON.Features[1].Properties
	assert.Equal(t, "55th & Dorchester", second["stop_name"])
	assert.Equal(t, float64(3), second["distance_min"])
}

func TestFetchBusStopsEmptyIsError(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	settings := testSettings()
	s := Server{
		mongoStore: m,
		settings:   settings,
		distance:   geo.NewDistanceResolver(settings),
	}

	propertyID, _ := primitive.ObjectIDFromHex("5e8bf47a0ff4f2d27df71bb5")

	m.EXPECT().GetProperty(propertyID).Return(&schema.Property{ID: propertyID}, nil).Times(1)
	m.EXPECT().FindStopsWithin(gomock.Any(), gomock.Any()).Return([]schema.TransitStop{}, nil).Times(1)
	// no cache write on the error path

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchBusStops)

	req := httptest.NewRequest("GET",
		"/?property_id=5e8bf47a0ff4f2d27df71bb5&geocode=-87.590,41.795", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorNoBusStops, jResp)
}

func TestFetchBusStopsInvalidWalkingTime(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	settings := testSettings()
	s := Server{
		mongoStore: m,
		settings:   settings,
		distance:   geo.NewDistanceResolver(settings),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchBusStops)

	req := httptest.NewRequest("GET",
		"/?property_id=5e8bf47a0ff4f2d27df71bb5&geocode=-87.590,41.795&walking_time=0", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestFetchBusRoutes(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
		settings:   testSettings(),
	}

	m.EXPECT().ListRoutesByID([]string{"55", "171", "172"}).Return([]schema.TransitRoute{
		{ID: "55", Name: "Garfield", Type: schema.TransitTypeCTA},
		{ID: "171", Name: "U. of Chicago/Hyde Park", Type: schema.TransitTypeCTA},
		{ID: "172", Name: "U. of Chicago/Kenwood", Type: schema.TransitTypeCTA},
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchBusRoutes)

	req := httptest.NewRequest("GET", "/?bus_route=55,171,172", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.FeatureCollection
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Len(t, jResp.Features, 3)
	// colors are evenly spaced over the hue circle in request order
	assert.Equal(t, "hsl(0, 100%, 45%)", jResp.Features[0].Properties["color"])
	assert.Equal(t, "hsl(120, 100%, 45%)", jResp.Features[1].Properties["color"])
	assert.Equal(t, "hsl(240, 100%, 45%)", jResp.Features[2].Properties["color"])
}

func TestFetchBusRoutesUnknownRoute(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockMongoStore(ctl)

	s := Server{
		mongoStore: m,
		settings:   testSettings(),
	}

	m.EXPECT().ListRoutesByID([]string{"999"}).Return([]schema.TransitRoute{}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchBusRoutes)

	req := httptest.NewRequest("GET", "/?bus_route=999", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorRouteNotFound, jResp)
}
