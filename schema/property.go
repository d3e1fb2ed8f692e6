package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	PropertyCollection = "properties"
)

// GroceryEnvelope is the full grocery response cached onto a property.
type GroceryEnvelope struct {
	Address        string            `json:"address" bson:"address"`
	WalkingTime    int               `json:"walking_time" bson:"walking_time"`
	GroceryGeoJSON FeatureCollection `json:"grocery_geojson" bson:"grocery_geojson"`
}

// Property is a geocoded street address. The two cache fields hold the
// first computed proximity response for the property and are populated at
// most once each.
type Property struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Address        string             `bson:"address" json:"address"`
	Location       *GeoJSON           `bson:"location" json:"location"`
	BusStopsCache  []Feature          `bson:"bus_stops_cache,omitempty" json:"bus_stops_cache,omitempty"`
	GroceriesCache *GroceryEnvelope   `bson:"groceries_cache,omitempty" json:"groceries_cache,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}
