package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hydepark-apt/amenity-api/schema"
)

// Amenity - proximity operations on amenity records
type Amenity interface {
	// FindAmenitiesWithin returns amenities of the given type within
	// radiusM meters of center, nearest first, with computed distances.
	FindAmenitiesWithin(amenityType schema.AmenityType, center schema.Location, radiusM float64) ([]schema.Amenity, error)
}

func (m *mongoDB) FindAmenitiesWithin(amenityType schema.AmenityType, center schema.Location, radiusM float64) ([]schema.Amenity, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.AmenityCollection)

	cur, err := c.Aggregate(ctx, mongo.Pipeline{
		aggStageGeoProximity(radiusM, center),
		aggStageMatch(bson.M{"type": amenityType}),
	})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby amenities with error: %s", err)
		return nil, fmt.Errorf("nearby amenity query with error: %s", err)
	}

	amenities := make([]schema.Amenity, 0)
	if err := cur.All(ctx, &amenities); err != nil {
		return nil, fmt.Errorf("nearby amenity query decode with error: %s", err)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby amenity query gets %d records near long:%v lat:%v",
		len(amenities), center.Longitude, center.Latitude)

	return amenities, nil
}
