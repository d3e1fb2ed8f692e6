package schema

// Feature is a single GeoJSON feature in an API response or a property
// cache field.
type Feature struct {
	Type       string                 `json:"type" bson:"type"`
	Geometry   interface{}            `json:"geometry" bson:"geometry"`
	Properties map[string]interface{} `json:"properties" bson:"properties"`
}

// FeatureCollection is the GeoJSON envelope every map-facing endpoint
// returns.
type FeatureCollection struct {
	Type     string    `json:"type" bson:"type"`
	Features []Feature `json:"features" bson:"features"`
}

// NewFeatureCollection wraps features into a collection. A nil slice is
// normalized to an empty one so clients always receive a "features" array.
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
