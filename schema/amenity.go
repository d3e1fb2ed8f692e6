package schema

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	AmenityCollection = "amenities"
)

// AmenityType classifies an amenity record.
type AmenityType string

const (
	AmenityTypeGrocery    AmenityType = "grocery"
	AmenityTypePharmacy   AmenityType = "pharmacy"
	AmenityTypeRestaurant AmenityType = "restaurant"
	AmenityTypeCafe       AmenityType = "cafe"
	AmenityTypeBar        AmenityType = "bar"
	AmenityTypeHospital   AmenityType = "hospital"
	AmenityTypeOther      AmenityType = "other"
)

// IsValid reports whether t is one of the known amenity types.
func (t AmenityType) IsValid() bool {
	switch t {
	case AmenityTypeGrocery, AmenityTypePharmacy, AmenityTypeRestaurant,
		AmenityTypeCafe, AmenityTypeBar, AmenityTypeHospital, AmenityTypeOther:
		return true
	}
	return false
}

// Amenity is a point of interest loaded by the refresh job, which upserts
// on the (address, type) pair.
type Amenity struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name     string             `bson:"name" json:"name"`
	Type     AmenityType        `bson:"type" json:"type"`
	Location *GeoJSON           `bson:"location" json:"location"`
	Address  string             `bson:"address" json:"address"`

	// DistanceM is filled by $geoNear queries, not stored.
	DistanceM float64 `bson:"dist,omitempty" json:"-"`
}
