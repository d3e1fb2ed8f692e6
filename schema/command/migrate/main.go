package main

import (
	"strings"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/postgres"
	"github.com/spf13/viper"

	"github.com/hydepark-apt/amenity-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("amenity")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	db, err := gorm.Open("postgres", viper.GetString("orm.conn"))
	if err != nil {
		panic(err)
	}

	if err := db.Exec(`CREATE SCHEMA IF NOT EXISTS amenity`).Error; err != nil {
		panic(err)
	}

	if err := db.Exec("SET search_path TO amenity").Error; err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&schema.Violation{},
		&schema.InspectionSummary{},
	).Error; err != nil {
		panic(err)
	}

	// prefix matching on raw municipal addresses runs through this index
	if err := db.Model(schema.Violation{}).
		AddIndex("violations_address_idx", "address").Error; err != nil {
		panic(err)
	}

	if err := db.Model(schema.InspectionSummary{}).
		AddIndex("inspection_summaries_address_idx", "address").Error; err != nil {
		panic(err)
	}

	schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database")).IndexAll()
}
