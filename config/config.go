package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Bounds is a rectangular lon/lat bounding box.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

// Contains reports whether the given coordinates fall inside the box,
// boundaries included.
func (b Bounds) Contains(longitude, latitude float64) bool {
	return b.West <= longitude && longitude <= b.East &&
		b.South <= latitude && latitude <= b.North
}

// Settings is the immutable configuration threaded into every component
// constructor. Nothing outside this package reads viper for these values,
// so the walking-speed constant cannot diverge between call sites again.
type Settings struct {
	// WalkingSpeedMPerMin converts a walking-time budget into a search
	// radius. One authoritative value for both proximity and
	// reverse-proximity calculations.
	WalkingSpeedMPerMin float64

	// Defaults applied when a request omits walking_time.
	DefaultTransitMinutes int
	DefaultGroceryMinutes int
	DefaultCrimeMinutes   int

	// TargetCity is the locality a geocoded address must resolve to.
	TargetCity string

	// HydePark is the designated sub-area used for the informational
	// inside/outside flag on address resolution.
	HydePark Bounds

	// ViolationCutoff is the exclusive lower bound on violation dates.
	ViolationCutoff time.Time

	// TrivialViolationCodes are administrative inspector-access codes
	// excluded from narrative summaries.
	TrivialViolationCodes []string
}

// Load reads the yaml config file plus AMENITY_-prefixed environment
// overrides and materializes Settings once.
func Load(file string) (*Settings, error) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("amenity")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("walking.speed_m_per_min", 70.0)
	viper.SetDefault("walking.default_transit_minutes", 5)
	viper.SetDefault("walking.default_grocery_minutes", 15)
	viper.SetDefault("walking.default_crime_minutes", 15)
	viper.SetDefault("geocoder.city", "Chicago")
	viper.SetDefault("bounds.north", 41.809647)
	viper.SetDefault("bounds.south", 41.780482)
	viper.SetDefault("bounds.east", -87.578501)
	viper.SetDefault("bounds.west", -87.615288)
	viper.SetDefault("violations.cutoff", "2020-01-01")
	viper.SetDefault("violations.trivial_codes", []string{"CN190019", "CN193305"})

	cutoff, err := time.Parse("2006-01-02", viper.GetString("violations.cutoff"))
	if err != nil {
		return nil, fmt.Errorf("invalid violations.cutoff: %s", err)
	}

	return &Settings{
		WalkingSpeedMPerMin:   viper.GetFloat64("walking.speed_m_per_min"),
		DefaultTransitMinutes: viper.GetInt("walking.default_transit_minutes"),
		DefaultGroceryMinutes: viper.GetInt("walking.default_grocery_minutes"),
		DefaultCrimeMinutes:   viper.GetInt("walking.default_crime_minutes"),
		TargetCity:            viper.GetString("geocoder.city"),
		HydePark: Bounds{
			North: viper.GetFloat64("bounds.north"),
			South: viper.GetFloat64("bounds.south"),
			East:  viper.GetFloat64("bounds.east"),
			West:  viper.GetFloat64("bounds.west"),
		},
		ViolationCutoff:       cutoff,
		TrivialViolationCodes: viper.GetStringSlice("violations.trivial_codes"),
	}, nil
}
