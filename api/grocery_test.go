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
	"github.com/hydepark-apt/amenity-api/geo"
	"github.com/hydepark-apt/amenity-api/schema"
)

func TestFetchGroceries(t *testing.T) {
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
	center := schema.Location{Longitude: -87.590, Latitude: 41.795}

	m.EXPECT().GetProperty(propertyID).Return(&schema.Property{
		ID:      propertyID,
		Address: "5514 S BLACKSTONE AVE",
	}, nil).Times(1)
	// walking_time=10 at 70 m/min is a 700m radius
	m.EXPECT().FindAmenitiesWithin(schema.AmenityTypeGrocery, center, 700.0).
		Return([]schema.Amenity{
			{
				Name:      "Hyde Park Produce",
				Type:      schema.AmenityTypeGrocery,
				Address:   "1226 E 53RD ST",
				DistanceM: 105,
			},
		}, nil).Times(1)
	m.EXPECT().CacheGroceries(propertyID, gomock.Any()).Return(true, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchGroceries)

	req := httptest.NewRequest("GET",
		"/?property_id=5e8bf47a0ff4f2d27df71bb5&geocode=-87.590,41.795&walking_time=10", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Address        string                   `json:"address"`
		WalkingTime    int                      `json:"walking_time"`
		GroceryGeoJSON schema.FeatureCollection `json:"grocery_geojson"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, "5514 S BLACKSTONE AVE", jResp.Address)
	assert.Equal(t, 10, jResp.WalkingTime)
	assert.Len(t, jResp.GroceryGeoJSON.Features, 1)

	props := jResp.GroceryGeoJSON.Features[0].Properties
	assert.Equal(t, "Hyde Park Produce", props["name"])
	assert.Equal(t, 1.5, props["distance_min"])
	assert.Equal(t, "1226 E 53RD ST", props["address"])
}

// Zero groceries in range is an ordinary answer, not an error. Compare
// TestFetchBusStopsEmptyIsError.
func TestFetchGroceriesEmptyIsValid(t *testing.T) {
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

	m.EXPECT().GetProperty(propertyID).Return(&schema.Property{
		ID:      propertyID,
		Address: "5514 S BLACKSTONE AVE",
	}, nil).Times(1)
	m.EXPECT().FindAmenitiesWithin(schema.AmenityTypeGrocery, gomock.Any(), gomock.Any()).
		Return([]schema.Amenity{}, nil).Times(1)
	m.EXPECT().CacheGroceries(propertyID, gomock.Any()).Return(true, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchGroceries)

	req := httptest.NewRequest("GET",
		"/?property_id=5e8bf47a0ff4f2d27df71bb5&geocode=-87.590,41.795", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp struct {
		Address        string                   `json:"address"`
		WalkingTime    int                      `json:"walking_time"`
		GroceryGeoJSON schema.FeatureCollection `json:"grocery_geojson"`
	}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, 15, jResp.WalkingTime, "wrong default walking time")
	assert.NotNil(t, jResp.GroceryGeoJSON.Features)
	assert.Len(t, jResp.GroceryGeoJSON.Features, 0)
}
