package store

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hydepark-apt/amenity-api/schema"
)

// aggStageGeoProximity orders documents from nearest to farthest within
// maxDistance meters of the location and writes the computed spherical
// distance into the "dist" field.
func aggStageGeoProximity(maxDistance float64, location schema.Location) bson.D {
	return bson.D{{Key: "$geoNear", Value: bson.M{
		"near": bson.M{
			"type":        "Point",
			"coordinates": bson.A{location.Longitude, location.Latitude},
		},
		"distanceField": "dist",
		"spherical":     true,
		"maxDistance":   maxDistance,
	}}}
}

func aggStageMatch(query bson.M) bson.D {
	return bson.D{{Key: "$match", Value: query}}
}
