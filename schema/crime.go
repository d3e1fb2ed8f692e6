package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	CrimeCollection = "crimes"
)

// CrimeCategory is the closed set of primary crime types found in the
// municipal crime dataset.
type CrimeCategory string

const (
	CrimeOffenseInvolvingChildren CrimeCategory = "OFFENSE INVOLVING CHILDREN"
	CrimeNarcotics                CrimeCategory = "NARCOTICS"
	CrimeCriminalDamage           CrimeCategory = "CRIMINAL DAMAGE"
	CrimeTheft                    CrimeCategory = "THEFT"
	CrimeBurglary                 CrimeCategory = "BURGLARY"
	CrimeSexOffense               CrimeCategory = "SEX OFFENSE"
	CrimeRobbery                  CrimeCategory = "ROBBERY"
	CrimeMotorVehicleTheft        CrimeCategory = "MOTOR VEHICLE THEFT"
	CrimeBattery                  CrimeCategory = "BATTERY"
	CrimeHomicide                 CrimeCategory = "HOMICIDE"
	CrimeCriminalSexualAssault    CrimeCategory = "CRIMINAL SEXUAL ASSAULT"
	CrimeOtherOffense             CrimeCategory = "OTHER OFFENSE"
	CrimeWeaponsViolation         CrimeCategory = "WEAPONS VIOLATION"
	CrimeDeceptivePractice        CrimeCategory = "DECEPTIVE PRACTICE"
	CrimeStalking                 CrimeCategory = "STALKING"
	CrimeCriminalTrespass         CrimeCategory = "CRIMINAL TRESPASS"
	CrimeAssault                  CrimeCategory = "ASSAULT"
	CrimeProstitution             CrimeCategory = "PROSTITUTION"
	CrimeKidnapping               CrimeCategory = "KIDNAPPING"
	CrimeArson                    CrimeCategory = "ARSON"
	CrimeConcealedCarryViolation  CrimeCategory = "CONCEALED CARRY LICENSE VIOLATION"
	CrimeInterferenceWithOfficer  CrimeCategory = "INTERFERENCE WITH PUBLIC OFFICER"
	CrimePublicPeaceViolation     CrimeCategory = "PUBLIC PEACE VIOLATION"
	CrimeLiquorLawViolation       CrimeCategory = "LIQUOR LAW VIOLATION"
	CrimeIntimidation             CrimeCategory = "INTIMIDATION"
	CrimeHumanTrafficking         CrimeCategory = "HUMAN TRAFFICKING"
	CrimeGambling                 CrimeCategory = "GAMBLING"
	CrimeObscenity                CrimeCategory = "OBSCENITY"
	CrimePublicIndecency          CrimeCategory = "PUBLIC INDECENCY"
	CrimeNonCriminal              CrimeCategory = "NON-CRIMINAL"
	CrimeOtherNarcoticViolation   CrimeCategory = "OTHER NARCOTIC VIOLATION"
	CrimeRitualism                CrimeCategory = "RITUALISM"
	CrimeDomesticViolence         CrimeCategory = "DOMESTIC VIOLENCE"
)

var crimeCategories = map[CrimeCategory]struct{}{
	CrimeOffenseInvolvingChildren: {},
	CrimeNarcotics:                {},
	CrimeCriminalDamage:           {},
	CrimeTheft:                    {},
	CrimeBurglary:                 {},
	CrimeSexOffense:               {},
	CrimeRobbery:                  {},
	CrimeMotorVehicleTheft:        {},
	CrimeBattery:                  {},
	CrimeHomicide:                 {},
	CrimeCriminalSexualAssault:    {},
	CrimeOtherOffense:             {},
	CrimeWeaponsViolation:         {},
	CrimeDeceptivePractice:        {},
	CrimeStalking:                 {},
	CrimeCriminalTrespass:         {},
	CrimeAssault:                  {},
	CrimeProstitution:             {},
	CrimeKidnapping:               {},
	CrimeArson:                    {},
	CrimeConcealedCarryViolation:  {},
	CrimeInterferenceWithOfficer:  {},
	CrimePublicPeaceViolation:     {},
	CrimeLiquorLawViolation:       {},
	CrimeIntimidation:             {},
	CrimeHumanTrafficking:         {},
	CrimeGambling:                 {},
	CrimeObscenity:                {},
	CrimePublicIndecency:          {},
	CrimeNonCriminal:              {},
	CrimeOtherNarcoticViolation:   {},
	CrimeRitualism:                {},
	CrimeDomesticViolence:         {},
}

// IsValid reports whether c is one of the known crime categories.
func (c CrimeCategory) IsValid() bool {
	_, ok := crimeCategories[c]
	return ok
}

// Crime is a single municipal crime record.
type Crime struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Location    *GeoJSON           `bson:"location" json:"location"`
	Date        time.Time          `bson:"date" json:"date"`
	Type        CrimeCategory      `bson:"type" json:"type"`
	Description string             `bson:"description" json:"description"`

	// DistanceM is filled by $geoNear queries, not stored.
	DistanceM float64 `bson:"dist,omitempty" json:"-"`
}
