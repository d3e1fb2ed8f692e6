package store

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hydepark-apt/amenity-api/schema"
)

var (
	ErrPropertyNotFound = fmt.Errorf("property not found")
	ErrInvalidLocation  = fmt.Errorf("invalid latitude/longitude values")
)

// caseInsensitive matches the unique index on properties.address.
var caseInsensitive = options.Collation{Locale: "en_US", Strength: 2}

// Property - operations on geocoded property records
type Property interface {
	// CreateProperty looks up the address case-insensitively and returns
	// the existing record unchanged if present; coordinates are never
	// updated so property ids stay stable.
	CreateProperty(address string, location schema.Location) (*schema.Property, error)
	GetProperty(propertyID primitive.ObjectID) (*schema.Property, error)

	// CacheBusStops and CacheGroceries populate a cache field only when
	// it is currently empty. The emptiness check and the write are one
	// atomic update, so concurrent first-time queries cannot double-write.
	CacheBusStops(propertyID primitive.ObjectID, features []schema.Feature) (bool, error)
	CacheGroceries(propertyID primitive.ObjectID, envelope schema.GroceryEnvelope) (bool, error)
}

func validLocation(location schema.Location) bool {
	return location.Longitude >= -180 && location.Longitude <= 180 &&
		location.Latitude >= -90 && location.Latitude <= 90 &&
		!(location.Longitude == 0 && location.Latitude == 0)
}

func (m *mongoDB) CreateProperty(address string, location schema.Location) (*schema.Property, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PropertyCollection)

	var existing schema.Property
	query := bson.M{"address": address}
	err := c.FindOne(ctx, query, options.FindOne().SetCollation(&caseInsensitive)).Decode(&existing)
	if err == nil {
		return &existing, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	if !validLocation(location) {
		return nil, ErrInvalidLocation
	}

	property := schema.Property{
		ID:        primitive.NewObjectID(),
		Address:   address,
		Location:  schema.NewPoint(location),
		CreatedAt: time.Now().UTC(),
	}

	if _, err := c.InsertOne(ctx, property); err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, e := range we.WriteErrors {
				if e.Code == DuplicateKeyCode {
					// lost a creation race; the winner's record is authoritative
					if err := c.FindOne(ctx, query, options.FindOne().SetCollation(&caseInsensitive)).Decode(&existing); err == nil {
						return &existing, nil
					}
				}
			}
		}
		log.WithFields(log.Fields{
			"prefix":  mongoLogPrefix,
			"address": address,
			"error":   err,
		}).Error("create property")
		return nil, fmt.Errorf("%s could not be uploaded: %s", address, err)
	}

	return &property, nil
}

func (m *mongoDB) GetProperty(propertyID primitive.ObjectID) (*schema.Property, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PropertyCollection)

	var property schema.Property
	if err := c.FindOne(ctx, bson.M{"_id": propertyID}).Decode(&property); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrPropertyNotFound
		}
		return nil, err
	}

	return &property, nil
}

// cacheIfEmpty writes value into field for the given property only when
// the field is currently unset. Returns whether the write landed.
func (m *mongoDB) cacheIfEmpty(propertyID primitive.ObjectID, field string, value interface{}) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	c := m.client.Database(m.database).Collection(schema.PropertyCollection)

	query := bson.M{
		"_id": propertyID,
		field: bson.M{"$in": bson.A{nil, bson.A{}}},
	}
	update := bson.M{"$set": bson.M{field: value}}

	result, err := c.UpdateOne(ctx, query, update)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":      mongoLogPrefix,
			"property_id": propertyID.Hex(),
			"field":       field,
			"error":       err,
		}).Error("update property cache")
		return false, err
	}

	return result.ModifiedCount > 0, nil
}

func (m *mongoDB) CacheBusStops(propertyID primitive.ObjectID, features []schema.Feature) (bool, error) {
	return m.cacheIfEmpty(propertyID, "bus_stops_cache", features)
}

func (m *mongoDB) CacheGroceries(propertyID primitive.ObjectID, envelope schema.GroceryEnvelope) (bool, error) {
	return m.cacheIfEmpty(propertyID, "groceries_cache", envelope)
}
