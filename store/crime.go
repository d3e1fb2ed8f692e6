package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hydepark-apt/amenity-api/schema"
)

// Crime - proximity operations on municipal crime records
type Crime interface {
	FindCrimesWithin(center schema.Location, radiusM float64) ([]schema.Crime, error)
}

func (m *mongoDB) FindCrimesWithin(center schema.Location, radiusM float64) ([]schema.Crime, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.CrimeCollection)

	cur, err := c.Aggregate(ctx, mongo.Pipeline{
		aggStageGeoProximity(radiusM, center),
	})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby crimes with error: %s", err)
		return nil, fmt.Errorf("nearby crime query with error: %s", err)
	}

	crimes := make([]schema.Crime, 0)
	if err := cur.All(ctx, &crimes); err != nil {
		return nil, fmt.Errorf("nearby crime query decode with error: %s", err)
	}

	return crimes, nil
}
