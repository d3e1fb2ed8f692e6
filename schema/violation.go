package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// InspectionCategory classifies the inspection that produced a violation
// record. Only complaint-driven and periodic inspections feed the
// violation report.
type InspectionCategory string

const (
	InspectionCategoryComplaint InspectionCategory = "COMPLAINT"
	InspectionCategoryPeriodic  InspectionCategory = "PERIODIC"
	InspectionCategoryPermit    InspectionCategory = "PERMIT"
	InspectionCategoryRegistry  InspectionCategory = "REGISTRY"
)

// IsValid reports whether c is one of the known inspection categories.
func (c InspectionCategory) IsValid() bool {
	switch c {
	case InspectionCategoryComplaint, InspectionCategoryPeriodic,
		InspectionCategoryPermit, InspectionCategoryRegistry:
		return true
	}
	return false
}

// Violation is a municipal housing-inspection record. Rows are immutable
// after ingestion. Address matching against properties is done by
// case-insensitive string prefix since the raw municipal address strings
// are not normalized.
type Violation struct {
	ViolationID               string             `gorm:"column:violation_id;primary_key" json:"violation_id"`
	ViolationLastModifiedDate time.Time          `gorm:"column:violation_last_modified_date" json:"violation_last_modified_date"`
	ViolationDate             time.Time          `gorm:"column:violation_date" json:"violation_date"`
	ViolationCode             string             `gorm:"column:violation_code" json:"violation_code"`
	ViolationStatus           string             `gorm:"column:violation_status" json:"violation_status"`
	ViolationDescription      string             `gorm:"column:violation_description" json:"violation_description"`
	ViolationLocation         string             `gorm:"column:violation_location" json:"violation_location"`
	ViolationInspectorComment string             `gorm:"column:violation_inspector_comments" json:"violation_inspector_comments"`
	ViolationOrdinance        string             `gorm:"column:violation_ordinance" json:"violation_ordinance"`
	InspectorID               string             `gorm:"column:inspector_id" json:"inspector_id"`
	InspectionNumber          int                `gorm:"column:inspection_number" json:"inspection_number"`
	InspectionStatus          string             `gorm:"column:inspection_status" json:"inspection_status"`
	InspectionWaived          string             `gorm:"column:inspection_waived" json:"inspection_waived"`
	InspectionCategory        InspectionCategory `gorm:"column:inspection_category" json:"inspection_category"`
	DepartmentBureau          string             `gorm:"column:department_bureau" json:"department_bureau"`
	Address                   string             `gorm:"column:address" json:"address"`
	Latitude                  float64            `gorm:"column:latitude" json:"latitude"`
	Longitude                 float64            `gorm:"column:longitude" json:"longitude"`
}

// TableName - the table name of violations in postgres
func (Violation) TableName() string {
	return "violations"
}

// SummaryJSON is the precomputed narrative summary produced by the
// out-of-band summarization batch, stored as a jsonb column.
type SummaryJSON map[string]interface{}

func (s SummaryJSON) Value() (driver.Value, error) {
	return json.Marshal(s)
}

func (s *SummaryJSON) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, s)
}

// InspectionSummary is keyed by address prefix and only ever consulted,
// never written, by the request path.
type InspectionSummary struct {
	ID      int         `gorm:"column:id;primary_key" json:"-"`
	Address string      `gorm:"column:address" json:"address"`
	Summary SummaryJSON `gorm:"column:summary;type:jsonb" json:"summary"`
}

// TableName - the table name of inspection summaries in postgres
func (InspectionSummary) TableName() string {
	return "inspection_summaries"
}
