package main

import (
	"context"
	"flag"
	"strings"

	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hydepark-apt/amenity-api/schema"
	"github.com/hydepark-apt/amenity-api/share/dataset"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("amenity")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var stopsFile, routesFile, groceriesFile, crimesFile string
	flag.StringVar(&stopsFile, "stops", "", "transit stop GeoJSON export")
	flag.StringVar(&routesFile, "routes", "", "transit route GeoJSON export")
	flag.StringVar(&groceriesFile, "groceries", "", "grocery GeoJSON export")
	flag.StringVar(&crimesFile, "crimes", "", "crime report GeoJSON export")
	flag.Parse()

	ctx := context.Background()
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	client, err := mongo.NewClient(opts)
	if err != nil {
		panic(err)
	}
	if err := client.Connect(ctx); err != nil {
		panic(err)
	}

	dbName := viper.GetString("mongo.database")

	if stopsFile != "" {
		if err := dataset.ImportTransitStops(client, dbName, stopsFile); err != nil {
			panic(err)
		}
	}

	if routesFile != "" {
		if err := dataset.ImportTransitRoutes(client, dbName, routesFile); err != nil {
			panic(err)
		}
	}

	if groceriesFile != "" {
		if err := dataset.ImportAmenities(client, dbName, groceriesFile, schema.AmenityTypeGrocery); err != nil {
			panic(err)
		}
	}

	if crimesFile != "" {
		if err := dataset.ImportCrimes(client, dbName, crimesFile); err != nil {
			panic(err)
		}
	}
}
