package store

import (
	"context"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/hydepark-apt/amenity-api/schema"
)

// ViolationStore is the gorm-backed store for the append-only violation
// and inspection-summary reference datasets. It satisfies
// inspection.ViolationStore.
type ViolationStore struct {
	ormDB *gorm.DB
}

func NewViolationStore(ormDB *gorm.DB) *ViolationStore {
	return &ViolationStore{
		ormDB: ormDB,
	}
}

// Ping is to check the storage health status
func (s *ViolationStore) Ping() error {
	return s.ormDB.DB().Ping()
}

// ListViolations returns violations whose raw municipal address starts
// with addressPrefix (case-insensitively), dated strictly after cutoff,
// restricted to the given inspection categories.
func (s *ViolationStore) ListViolations(ctx context.Context, addressPrefix string, cutoff time.Time, categories []schema.InspectionCategory) ([]schema.Violation, error) {
	var violations []schema.Violation

	err := s.ormDB.
		Where("address ILIKE ?", likePrefix(addressPrefix)).
		Where("violation_date > ?", cutoff).
		Where("inspection_category IN (?)", categories).
		Find(&violations).Error
	if err != nil {
		return nil, err
	}

	return violations, nil
}

// GetInspectionSummary returns the precomputed summary for the address
// prefix, or nil when none exists.
func (s *ViolationStore) GetInspectionSummary(ctx context.Context, addressPrefix string) (*schema.InspectionSummary, error) {
	var summary schema.InspectionSummary

	err := s.ormDB.
		Where("address ILIKE ?", likePrefix(addressPrefix)).
		First(&summary).Error
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil
		}
		return nil, err
	}

	return &summary, nil
}

// likePrefix escapes LIKE metacharacters so the prefix matches literally.
func likePrefix(prefix string) string {
	escaped := make([]rune, 0, len(prefix)+2)
	for _, r := range prefix {
		if r == '%' || r == '_' || r == '\\' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return string(escaped) + "%"
}
