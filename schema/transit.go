package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	TransitStopCollection  = "transitstops"
	TransitRouteCollection = "transitroutes"
)

// TransitType classifies a stop or route by operator.
type TransitType string

const (
	TransitTypeCTA     TransitType = "cta"
	TransitTypeMetra   TransitType = "metra"
	TransitTypeShuttle TransitType = "shuttle"
	TransitTypeDivvy   TransitType = "divvy"
	TransitTypeOther   TransitType = "other"
)

// IsValid reports whether t is one of the known transit types.
func (t TransitType) IsValid() bool {
	switch t {
	case TransitTypeCTA, TransitTypeMetra, TransitTypeShuttle, TransitTypeDivvy, TransitTypeOther:
		return true
	}
	return false
}

// TransitStop is a single stop record. The source data contains multiple
// rows for the same physical stop (directions, minor position differences)
// sharing one name. RouteIDs materializes the stop side of the
// stop-route many-to-many relation.
type TransitStop struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Type     TransitType        `bson:"type" json:"type"`
	Location *GeoJSON           `bson:"location" json:"location"`
	RouteIDs []string           `bson:"routes" json:"routes"`

	// DistanceM is filled by $geoNear queries, not stored.
	DistanceM float64 `bson:"dist,omitempty" json:"-"`
}

// TransitRoute is keyed by the operator route id.
type TransitRoute struct {
	ID        string               `bson:"_id" json:"route_id"`
	Name      string               `bson:"name" json:"name"`
	Type      TransitType          `bson:"type" json:"type"`
	Geometry  *GeoJSONMultiLine    `bson:"geometry" json:"geometry"`
	StopIDs   []primitive.ObjectID `bson:"stops,omitempty" json:"-"`
	CreatedAt time.Time            `bson:"created_at" json:"created_at"`
}
