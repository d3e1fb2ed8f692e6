package geo

import (
	"sort"

	"github.com/hydepark-apt/amenity-api/schema"
)

// DedupeStops collapses duplicate stop records sharing a name into the
// instance closest to the reference point. The source data carries
// multiple rows per physical stop (one per direction, with slightly
// different positions); clients want each named stop once.
//
// Ties on exactly equal distance go to the lexicographically lowest stop
// id, so results are deterministic. Route memberships are left untouched:
// the same route id may legitimately appear at two different nearby stops.
//
// Output is ordered ascending by distance, matching the ordering the
// spatial query returns.
func DedupeStops(stops []schema.TransitStop) []schema.TransitStop {
	closest := make(map[string]schema.TransitStop, len(stops))
	for _, stop := range stops {
		kept, ok := closest[stop.Name]
		if !ok {
			closest[stop.Name] = stop
			continue
		}
		if stop.DistanceM < kept.DistanceM ||
			(stop.DistanceM == kept.DistanceM && stop.ID.Hex() < kept.ID.Hex()) {
			closest[stop.Name] = stop
		}
	}

	deduped := make([]schema.TransitStop, 0, len(closest))
	for _, stop := range closest {
		deduped = append(deduped, stop)
	}
	sort.Slice(deduped, func(i, j int) bool {
		if deduped[i].DistanceM != deduped[j].DistanceM {
			return deduped[i].DistanceM < deduped[j].DistanceM
		}
		return deduped[i].ID.Hex() < deduped[j].ID.Hex()
	})

	return deduped
}
