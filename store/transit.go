package store

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hydepark-apt/amenity-api/schema"
)

// Transit - proximity and lookup operations on stops and routes
type Transit interface {
	// FindStopsWithin returns stops within radiusM meters of center with
	// their computed distances, nearest first. Duplicate stop names are
	// not collapsed here; that is the deduplicator's job.
	FindStopsWithin(center schema.Location, radiusM float64) ([]schema.TransitStop, error)

	// ListRoutesByID returns the routes whose ids appear in routeIDs.
	// Unknown ids are silently omitted.
	ListRoutesByID(routeIDs []string) ([]schema.TransitRoute, error)
}

func (m *mongoDB) FindStopsWithin(center schema.Location, radiusM float64) ([]schema.TransitStop, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TransitStopCollection)

	cur, err := c.Aggregate(ctx, mongo.Pipeline{
		aggStageGeoProximity(radiusM, center),
	})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query nearby transit stops with error: %s", err)
		return nil, fmt.Errorf("nearby transit stop query with error: %s", err)
	}

	stops := make([]schema.TransitStop, 0)
	if err := cur.All(ctx, &stops); err != nil {
		return nil, fmt.Errorf("nearby transit stop query decode with error: %s", err)
	}

	log.WithField("prefix", mongoLogPrefix).Debugf("nearby stop query gets %d records near long:%v lat:%v",
		len(stops), center.Longitude, center.Latitude)

	return stops, nil
}

func (m *mongoDB) ListRoutesByID(routeIDs []string) ([]schema.TransitRoute, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.TransitRouteCollection)

	cur, err := c.Find(ctx, bson.M{"_id": bson.M{"$in": routeIDs}})
	if err != nil {
		log.WithField("prefix", mongoLogPrefix).Errorf("query transit routes with error: %s", err)
		return nil, fmt.Errorf("transit route query with error: %s", err)
	}

	routes := make([]schema.TransitRoute, 0)
	if err := cur.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("transit route query decode with error: %s", err)
	}

	return routes, nil
}
