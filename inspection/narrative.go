package inspection

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/hydepark-apt/amenity-api/schema"
)

// Occasion is the set of violation records sharing a single inspection
// date, treated as one reportable unit.
type Occasion struct {
	Date       time.Time
	Violations []schema.Violation
}

// GroupOccasions partitions records into occasions by violation date,
// ordered by date descending and secondarily by inspection number
// descending. Records within an occasion follow the same inspection-number
// order.
func GroupOccasions(violations []schema.Violation) []Occasion {
	byDate := make(map[string][]schema.Violation)
	for _, v := range violations {
		key := v.ViolationDate.Format("2006-01-02")
		byDate[key] = append(byDate[key], v)
	}

	occasions := make([]Occasion, 0, len(byDate))
	for _, group := range byDate {
		sort.Slice(group, func(i, j int) bool {
			if group[i].InspectionNumber != group[j].InspectionNumber {
				return group[i].InspectionNumber > group[j].InspectionNumber
			}
			return group[i].ViolationID < group[j].ViolationID
		})
		occasions = append(occasions, Occasion{
			Date:       group[0].ViolationDate,
			Violations: group,
		})
	}

	sort.Slice(occasions, func(i, j int) bool {
		if !occasions[i].Date.Equal(occasions[j].Date) {
			return occasions[i].Date.After(occasions[j].Date)
		}
		return occasions[i].Violations[0].InspectionNumber > occasions[j].Violations[0].InspectionNumber
	})

	return occasions
}

var ordinanceCodePattern = regexp.MustCompile(`\d+-\d+`)

// StripTrailingOrdinance removes a trailing parenthetical ordinance-code
// list from ordinance text, e.g.
//
//	"Failed to maintain walls.  (13-196-530(b), 13-196-641)"
//
// becomes "Failed to maintain walls.". Text without such a trailing
// parenthetical is returned unchanged apart from whitespace trimming.
func StripTrailingOrdinance(in string) string {
	s := strings.TrimSpace(in)
	if s == "" || !strings.HasSuffix(s, ")") {
		return s
	}

	// walk back to the opening paren of the trailing parenthetical,
	// balancing nested parens like "(13-196-530(b), ...)"
	depth := 0
	start := -1
	for i := len(s) - 1; i >= 0; i-- {
		switch s[i] {
		case ')':
			depth++
		case '(':
			depth--
		}
		if depth == 0 {
			start = i
			break
		}
	}

	if start <= 0 || !ordinanceCodePattern.MatchString(s[start:]) {
		return s
	}

	return strings.TrimSpace(s[:start])
}

// BuildNarrative renders the deterministic narrative report consumed by
// the out-of-band summarization batch. The request path never calls it;
// it exists so the batch and the aggregator agree on occasion grouping.
func BuildNarrative(occasions []Occasion) string {
	var b strings.Builder
	b.WriteString("This building was cited for the following violations: ")

	for _, occasion := range occasions {
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("On %s, it was cited for the following %d violations: ",
			occasion.Date.Format("2006-01-02"), len(occasion.Violations)))

		for i, v := range occasion.Violations {
			b.WriteString(fmt.Sprintf("%d) it allegedly violated city ordinance '%s'. Inspector commented: '%s'; ",
				i+1, StripTrailingOrdinance(v.ViolationOrdinance), v.ViolationInspectorComment))
		}
	}

	return b.String()
}
