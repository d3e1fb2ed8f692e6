package geo

import (
	"fmt"
	"math"

	"github.com/hydepark-apt/amenity-api/config"
)

var (
	ErrInvalidWalkingTime = fmt.Errorf("walking time must be a positive number of minutes")
)

// DistanceResolver converts walking-time budgets into search radii and
// back. The walking-speed constant comes from the shared settings so both
// directions of the conversion always agree.
type DistanceResolver struct {
	speedMPerMin float64
}

func NewDistanceResolver(settings *config.Settings) *DistanceResolver {
	return &DistanceResolver{
		speedMPerMin: settings.WalkingSpeedMPerMin,
	}
}

// RadiusMeters returns the search radius for the given walking-time
// budget in minutes.
func (r *DistanceResolver) RadiusMeters(walkingMinutes int) (float64, error) {
	if walkingMinutes <= 0 {
		return 0, ErrInvalidWalkingTime
	}
	return float64(walkingMinutes) * r.speedMPerMin, nil
}

// WalkingMinutes converts a distance in meters back into minutes.
func (r *DistanceResolver) WalkingMinutes(meters float64) float64 {
	return meters / r.speedMPerMin
}

// WalkingMinutesRounded rounds to the nearest whole minute, half away
// from zero. Used for transit stop annotations.
func (r *DistanceResolver) WalkingMinutesRounded(meters float64) int {
	return int(math.Round(r.WalkingMinutes(meters)))
}

// WalkingMinutesTenths rounds to one decimal place. Used for amenity and
// crime annotations.
func (r *DistanceResolver) WalkingMinutesTenths(meters float64) float64 {
	return math.Round(r.WalkingMinutes(meters)*10) / 10
}
