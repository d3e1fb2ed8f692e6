package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

func NewMongoDBIndexer(connectionString, dbName string) *MongoDBIndexer {
	ctx := context.Background()
	opts := options.Client().ApplyURI(connectionString)
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	return &MongoDBIndexer{
		ctx:      ctx,
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func panicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

func (m *MongoDBIndexer) IndexAll() {
	panicIfError(m.IndexPropertyCollection())
	panicIfError(m.IndexTransitStopCollection())
	panicIfError(m.IndexTransitRouteCollection())
	panicIfError(m.IndexAmenityCollection())
	panicIfError(m.IndexCrimeCollection())
}

func (m *MongoDBIndexer) IndexPropertyCollection() error {
	// address uniqueness is case-insensitive (collation strength 2)
	if err := m.createIndex(PropertyCollection, mongo.IndexModel{
		Keys: bson.M{
			"address": 1,
		},
		Options: options.Index().
			SetUnique(true).
			SetCollation(&options.Collation{Locale: "en_US", Strength: 2}),
	}); err != nil {
		return err
	}

	return m.createIndex(PropertyCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexTransitStopCollection() error {
	if err := m.createIndex(TransitStopCollection, mongo.IndexModel{
		Keys: bson.M{
			"name": 1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(TransitStopCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexTransitRouteCollection() error {
	return m.createIndex(TransitRouteCollection, mongo.IndexModel{
		Keys: bson.M{
			"geometry": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexAmenityCollection() error {
	// repeated imports conflict on (address, type) instead of duplicating
	if err := m.createIndex(AmenityCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "address", Value: 1},
			{Key: "type", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(AmenityCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexCrimeCollection() error {
	if err := m.createIndex(CrimeCollection, mongo.IndexModel{
		Keys: bson.M{
			"date": -1,
		},
	}); err != nil {
		return err
	}

	return m.createIndex(CrimeCollection, mongo.IndexModel{
		Keys: bson.M{
			"location": "2dsphere",
		},
	})
}
