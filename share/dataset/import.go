package dataset

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/hydepark-apt/amenity-api/schema"
)

// GeoFeature is one entry of a data-portal GeoJSON export. Geometry is
// kept raw so the same envelope serves point and multi-line datasets.
type GeoFeature struct {
	Type       string                 `json:"type"`
	Properties map[string]interface{} `json:"properties"`
	Geometry   json.RawMessage        `json:"geometry"`
}

type GeoJSON struct {
	Name     string       `json:"name"`
	Features []GeoFeature `json:"features"`
}

func readGeoJSON(file string) (*GeoJSON, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var result GeoJSON
	if err := json.NewDecoder(f).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}

func stringProp(properties map[string]interface{}, key string) (string, error) {
	value, ok := properties[key].(string)
	if !ok {
		return "", fmt.Errorf("invalid %s value, %+v", key, properties[key])
	}
	return value, nil
}

// ImportTransitStops loads a CTA/shuttle stop GeoJSON export into the
// transit stop collection. Each feature carries a stop name, an operator
// type and a comma-joined route list.
func ImportTransitStops(client *mongo.Client, dbName, geoJSONFile string) error {
	result, err := readGeoJSON(geoJSONFile)
	if err != nil {
		return err
	}

	var stops []interface{}
	for _, f := range result.Features {
		name, err := stringProp(f.Properties, "stop_name")
		if err != nil {
			return err
		}

		transitType, err := stringProp(f.Properties, "transit_type")
		if err != nil {
			return err
		}
		if !schema.TransitType(transitType).IsValid() {
			return fmt.Errorf("unknown transit type %q for stop %q", transitType, name)
		}

		var location schema.GeoJSON
		if err := json.Unmarshal(f.Geometry, &location); err != nil {
			return err
		}

		routes := []string{}
		if raw, ok := f.Properties["routes"].([]interface{}); ok {
			for _, r := range raw {
				route, ok := r.(string)
				if !ok {
					return fmt.Errorf("invalid route value for stop %q, %+v", name, r)
				}
				routes = append(routes, route)
			}
		}

		stops = append(stops, schema.TransitStop{
			Name:     name,
			Type:     schema.TransitType(transitType),
			Location: &location,
			RouteIDs: routes,
		})
	}

	if len(stops) == 0 {
		return fmt.Errorf("no stop features in %s", geoJSONFile)
	}

	_, err = client.Database(dbName).Collection(schema.TransitStopCollection).
		InsertMany(context.Background(), stops)
	return err
}

// ImportTransitRoutes loads a route-geometry GeoJSON export keyed by
// operator route id.
func ImportTransitRoutes(client *mongo.Client, dbName, geoJSONFile string) error {
	result, err := readGeoJSON(geoJSONFile)
	if err != nil {
		return err
	}

	var routes []interface{}
	for _, f := range result.Features {
		routeID, err := stringProp(f.Properties, "route_id")
		if err != nil {
			return err
		}

		name, err := stringProp(f.Properties, "name")
		if err != nil {
			return err
		}

		transitType, err := stringProp(f.Properties, "transit_type")
		if err != nil {
			return err
		}
		if !schema.TransitType(transitType).IsValid() {
			return fmt.Errorf("unknown transit type %q for route %q", transitType, routeID)
		}

		var geometry schema.GeoJSONMultiLine
		if err := json.Unmarshal(f.Geometry, &geometry); err != nil {
			return err
		}

		routes = append(routes, schema.TransitRoute{
			ID:        routeID,
			Name:      name,
			Type:      schema.TransitType(transitType),
			Geometry:  &geometry,
			CreatedAt: time.Now().UTC(),
		})
	}

	if len(routes) == 0 {
		return fmt.Errorf("no route features in %s", geoJSONFile)
	}

	_, err = client.Database(dbName).Collection(schema.TransitRouteCollection).
		InsertMany(context.Background(), routes)
	return err
}

// ImportAmenities loads a grocery (or other amenity) GeoJSON export.
func ImportAmenities(client *mongo.Client, dbName, geoJSONFile string, amenityType schema.AmenityType) error {
	if !amenityType.IsValid() {
		return fmt.Errorf("unknown amenity type %q", amenityType)
	}

	result, err := readGeoJSON(geoJSONFile)
	if err != nil {
		return err
	}

	var amenities []interface{}
	for _, f := range result.Features {
		name, err := stringProp(f.Properties, "name")
		if err != nil {
			return err
		}

		address, err := stringProp(f.Properties, "address")
		if err != nil {
			return err
		}

		var location schema.GeoJSON
		if err := json.Unmarshal(f.Geometry, &location); err != nil {
			return err
		}

		amenities = append(amenities, schema.Amenity{
			Name:     name,
			Type:     amenityType,
			Location: &location,
			Address:  address,
		})
	}

	if len(amenities) == 0 {
		return fmt.Errorf("no amenity features in %s", geoJSONFile)
	}

	_, err = client.Database(dbName).Collection(schema.AmenityCollection).
		InsertMany(context.Background(), amenities)
	return err
}

// ImportCrimes loads a crime-report GeoJSON export. Records with a primary
// type outside the known category set are rejected rather than skipped so
// a portal schema change surfaces at import time.
func ImportCrimes(client *mongo.Client, dbName, geoJSONFile string) error {
	result, err := readGeoJSON(geoJSONFile)
	if err != nil {
		return err
	}

	var crimes []interface{}
	for _, f := range result.Features {
		primaryType, err := stringProp(f.Properties, "primary_type")
		if err != nil {
			return err
		}
		if !schema.CrimeCategory(primaryType).IsValid() {
			return fmt.Errorf("unknown crime category %q", primaryType)
		}

		description, err := stringProp(f.Properties, "description")
		if err != nil {
			return err
		}

		rawDate, err := stringProp(f.Properties, "date")
		if err != nil {
			return err
		}
		date, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			return err
		}

		var location schema.GeoJSON
		if err := json.Unmarshal(f.Geometry, &location); err != nil {
			return err
		}

		crimes = append(crimes, schema.Crime{
			Location:    &location,
			Date:        date,
			Type:        schema.CrimeCategory(primaryType),
			Description: description,
		})
	}

	if len(crimes) == 0 {
		return fmt.Errorf("no crime features in %s", geoJSONFile)
	}

	_, err = client.Database(dbName).Collection(schema.CrimeCollection).
		InsertMany(context.Background(), crimes)
	return err
}
