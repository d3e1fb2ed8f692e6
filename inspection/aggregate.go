package inspection

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/hydepark-apt/amenity-api/config"
	"github.com/hydepark-apt/amenity-api/schema"
)

const logPrefix = "inspection"

var (
	ErrMissingAddress = fmt.Errorf("address is required")
)

// Data statuses of a violation report.
const (
	StatusNoViolations = "no_violations"
	StatusTrivialOnly  = "trivial_only"
	StatusAvailable    = "available"
)

const noViolationsNote = "No complaint or periodic inspection violations on record since the cutoff date."

// ViolationStore provides the violation records and precomputed summaries
// the aggregator consumes. Matching is by case-insensitive address prefix.
type ViolationStore interface {
	ListViolations(ctx context.Context, addressPrefix string, cutoff time.Time, categories []schema.InspectionCategory) ([]schema.Violation, error)
	GetInspectionSummary(ctx context.Context, addressPrefix string) (*schema.InspectionSummary, error)
}

// Report is the JSON body of a violation summary response. For the
// "available" status it is a superset-merge of the precomputed summary
// plus computed counts.
type Report map[string]interface{}

// Aggregator rolls up violation records for one address into a structured
// report. Narrative synthesis happens out of band; the aggregator only
// consults its precomputed output.
type Aggregator struct {
	store        ViolationStore
	cutoff       time.Time
	categories   []schema.InspectionCategory
	trivialCodes map[string]struct{}
}

func NewAggregator(store ViolationStore, settings *config.Settings) *Aggregator {
	trivial := make(map[string]struct{}, len(settings.TrivialViolationCodes))
	for _, code := range settings.TrivialViolationCodes {
		trivial[code] = struct{}{}
	}

	return &Aggregator{
		store:        store,
		cutoff:       settings.ViolationCutoff,
		categories:   []schema.InspectionCategory{schema.InspectionCategoryComplaint, schema.InspectionCategoryPeriodic},
		trivialCodes: trivial,
	}
}

// Aggregate resolves the report for a raw address string.
func (a *Aggregator) Aggregate(ctx context.Context, rawAddress string) (Report, error) {
	address := NormalizeAddress(rawAddress)
	if address == "" {
		return nil, ErrMissingAddress
	}

	violations, err := a.store.ListViolations(ctx, address, a.cutoff, a.categories)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"address": address,
			"error":   err,
		}).Error("list violations")
		return nil, err
	}

	if len(violations) == 0 {
		return Report{
			"address":      address,
			"data_status":  StatusNoViolations,
			"cut_off_date": a.cutoff.Format("2006-01-02"),
			"note":         noViolationsNote,
		}, nil
	}

	trivial, substantive := a.partition(violations)

	summary, err := a.store.GetInspectionSummary(ctx, address)
	if err != nil {
		log.WithFields(log.Fields{
			"prefix":  logPrefix,
			"address": address,
			"error":   err,
		}).Error("get inspection summary")
		return nil, err
	}

	if summary == nil {
		return a.trivialOnlyReport(address, violations, trivial), nil
	}

	return a.availableReport(address, summary, trivial, substantive), nil
}

func (a *Aggregator) partition(violations []schema.Violation) (trivial, substantive []schema.Violation) {
	for _, v := range violations {
		if _, ok := a.trivialCodes[v.ViolationCode]; ok {
			trivial = append(trivial, v)
		} else {
			substantive = append(substantive, v)
		}
	}
	return trivial, substantive
}

func (a *Aggregator) trivialOnlyReport(address string, violations, trivial []schema.Violation) Report {
	occasions := GroupOccasions(trivial)

	return Report{
		"address":                address,
		"data_status":            StatusTrivialOnly,
		"total_violations_count": len(violations),
		"cut_off_date":           a.cutoff.Format("2006-01-02"),
		"note":                   omissionNote(len(trivial), len(occasions)),
	}
}

func (a *Aggregator) availableReport(address string, summary *schema.InspectionSummary, trivial, substantive []schema.Violation) Report {
	report := Report{}
	for k, v := range summary.Summary {
		report[k] = v
	}

	report["address"] = address
	report["data_status"] = StatusAvailable
	report["cut_off_date"] = a.cutoff.Format("2006-01-02")
	report["total_violations_count"] = len(substantive)
	report["total_inspections_count"] = len(GroupOccasions(substantive))

	if len(trivial) > 0 {
		report["note"] = omissionNote(len(trivial), len(GroupOccasions(trivial)))
	}

	return report
}

func omissionNote(violations, occasions int) string {
	return fmt.Sprintf(
		"%d trivial violation(s) across %d occasion(s), such as inspectors being unable to enter the premises, were omitted.",
		violations, occasions)
}
