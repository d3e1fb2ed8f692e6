package schema

// Location carries a coordinate pair with named fields. It is the only
// coordinate type in the system; ordered pairs are never passed around.
type Location struct {
	Longitude float64 `json:"longitude" bson:"longitude"`
	Latitude  float64 `json:"latitude" bson:"latitude"`
}

// GeoJSON is a point geometry document stored under a 2dsphere index.
// Coordinates are [longitude, latitude] per the GeoJSON spec (WGS-84).
type GeoJSON struct {
	Type        string    `bson:"type" json:"type"`
	Coordinates []float64 `bson:"coordinates" json:"coordinates"`
}

// GeoJSONMultiLine is a multi-polyline geometry used for transit routes.
type GeoJSONMultiLine struct {
	Type        string        `bson:"type" json:"type"`
	Coordinates [][][]float64 `bson:"coordinates" json:"coordinates"`
}

// NewPoint builds a GeoJSON point from a location.
func NewPoint(loc Location) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{loc.Longitude, loc.Latitude},
	}
}

// ToLocation converts a point geometry back into a Location.
func (g *GeoJSON) ToLocation() Location {
	if g == nil || len(g.Coordinates) < 2 {
		return Location{}
	}
	return Location{
		Longitude: g.Coordinates[0],
		Latitude:  g.Coordinates[1],
	}
}
