package share

import (
	"testing"
	"time"

	"github.com/vmihailenco/msgpack/v4"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/yaml.v2"

	"github.com/hydepark-apt/amenity-api/schema"
)

// benchmarkProperty approximates a fully cached property document, the
// largest payload the API moves in and out of storage.
func benchmarkProperty() *schema.Property {
	features := make([]schema.Feature, 0, 40)
	for i := 0; i < 40; i++ {
		features = append(features, schema.Feature{
			Type: "Feature",
			Geometry: schema.NewPoint(schema.Location{
				Longitude: -87.59 + float64(i)*0.0001,
				Latitude:  41.79 + float64(i)*0.0001,
			}),
			Properties: map[string]interface{}{
				"stop_name":    "55th & Blackstone",
				"distance_min": 2,
				"routes":       []string{"55", "171"},
			},
		})
	}

	return &schema.Property{
		Address:       "5514 S BLACKSTONE AVE",
		Location:      schema.NewPoint(schema.Location{Longitude: -87.590, Latitude: 41.795}),
		BusStopsCache: features,
		GroceriesCache: &schema.GroceryEnvelope{
			Address:        "5514 S BLACKSTONE AVE",
			WalkingTime:    15,
			GroceryGeoJSON: schema.NewFeatureCollection(features[:10]),
		},
		CreatedAt: time.Date(2021, 3, 16, 0, 0, 0, 0, time.UTC),
	}
}

func BenchmarkEncodeBSON(b *testing.B) {
	property := benchmarkProperty()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := bson.Marshal(property); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeBSON(b *testing.B) {
	data, err := bson.Marshal(benchmarkProperty())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	var p schema.Property
	for n := 0; n < b.N; n++ {
		if err := bson.Unmarshal(data, &p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeYAML(b *testing.B) {
	property := benchmarkProperty()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := yaml.Marshal(property); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeYAML(b *testing.B) {
	data, err := yaml.Marshal(benchmarkProperty())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	var p schema.Property
	for n := 0; n < b.N; n++ {
		if err := yaml.Unmarshal(data, &p); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEncodeMsgPack(b *testing.B) {
	property := benchmarkProperty()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		if _, err := msgpack.Marshal(property); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeMsgPack(b *testing.B) {
	data, err := msgpack.Marshal(benchmarkProperty())
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()

	var p schema.Property
	for n := 0; n < b.N; n++ {
		if err := msgpack.Unmarshal(data, &p); err != nil {
			b.Fatal(err)
		}
	}
}
