package geo

import (
	"fmt"
	"strings"
)

// ParseRouteList splits a comma-separated route id list into trimmed ids.
// Blank entries and a blank input yield an empty list, not an error.
func ParseRouteList(in string) []string {
	if strings.TrimSpace(in) == "" {
		return []string{}
	}

	ids := make([]string, 0)
	for _, part := range strings.Split(in, ",") {
		id := strings.TrimSpace(part)
		if id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// RouteColors assigns each requested route id an evenly spaced HSL hue in
// input order, so a set of routes drawn together is always visually
// distinguishable.
func RouteColors(routeIDs []string) map[string]string {
	colors := make(map[string]string, len(routeIDs))
	n := len(routeIDs)
	for i, id := range routeIDs {
		colors[id] = fmt.Sprintf("hsl(%d, 100%%, 45%%)", int(360*i/n))
	}
	return colors
}
