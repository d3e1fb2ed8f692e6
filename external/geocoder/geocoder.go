package geocoder

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"

	"github.com/hydepark-apt/amenity-api/schema"
)

const (
	logPrefix      = "geocoder"
	defaultTimeout = 5 * time.Second
)

var (
	// ErrNoMatch means the service answered but produced no candidate
	// for the address.
	ErrNoMatch = fmt.Errorf("no matched address found")
)

// Match is a resolved, canonical address with its coordinates and the
// locality it falls in.
type Match struct {
	Address  string
	Location schema.Location
	City     string
}

// Geocoder matches a free-text street address to a canonical one.
type Geocoder interface {
	Match(ctx context.Context, address string) (*Match, error)
}

type geocoder struct {
	client *maps.Client
	region string
}

// Match geocodes the address and extracts the formatted address, the
// coordinates, and the locality component.
func (g *geocoder) Match(ctx context.Context, address string) (*Match, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("match address")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	results, err := g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address: address,
		Region:  g.region,
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNoMatch
	}

	var city string
	for _, component := range results[0].AddressComponents {
		if len(component.Types) > 0 && component.Types[0] == "locality" {
			city = component.LongName
		}
	}

	return &Match{
		Address: results[0].FormattedAddress,
		Location: schema.Location{
			Longitude: results[0].Geometry.Location.Lng,
			Latitude:  results[0].Geometry.Location.Lat,
		},
		City: city,
	}, nil
}

// New - new Geocoder backed by the Google Maps geocoding API
func New(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geocoder{
		client: client,
		region: "us",
	}, nil
}
