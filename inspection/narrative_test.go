package inspection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/hydepark-apt/amenity-api/schema"
)

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStripTrailingOrdinance(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{
			"Failed to maintain the exterior walls.  (13-196-530(b), 13-196-641)",
			"Failed to maintain the exterior walls.",
		},
		{
			"Repair porch system. (13-196-570)",
			"Repair porch system.",
		},
		{
			"Input with no trailing parenthetical is returned unchanged",
			"Input with no trailing parenthetical is returned unchanged",
		},
		{
			// the trailing parenthetical carries no ordinance codes
			"Arrange premise inspection (pending)",
			"Arrange premise inspection (pending)",
		},
		{"", ""},
		{"   ", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.expected, StripTrailingOrdinance(c.in), "input %q", c.in)
	}
}

func TestGroupOccasions(t *testing.T) {
	violations := []schema.Violation{
		{ViolationID: "1", ViolationDate: day("2023-05-01"), InspectionNumber: 100},
		{ViolationID: "2", ViolationDate: day("2024-11-20"), InspectionNumber: 300},
		{ViolationID: "3", ViolationDate: day("2023-05-01"), InspectionNumber: 100},
		{ViolationID: "4", ViolationDate: day("2024-02-08"), InspectionNumber: 200},
	}

	occasions := GroupOccasions(violations)

	assert.Len(t, occasions, 3)
	assert.Equal(t, day("2024-11-20"), occasions[0].Date)
	assert.Equal(t, day("2024-02-08"), occasions[1].Date)
	assert.Equal(t, day("2023-05-01"), occasions[2].Date)
	assert.Len(t, occasions[2].Violations, 2)
}

func TestGroupOccasionsEmpty(t *testing.T) {
	assert.Empty(t, GroupOccasions(nil))
}

func TestBuildNarrative(t *testing.T) {
	occasions := GroupOccasions([]schema.Violation{
		{
			ViolationID:               "1",
			ViolationDate:             day("2024-02-08"),
			InspectionNumber:          200,
			ViolationOrdinance:        "Failed to maintain the exterior walls. (13-196-530(b), 13-196-641)",
			ViolationInspectorComment: "WEST ELEVATION WASHED OUT MORTAR JOINTS",
		},
	})

	narrative := BuildNarrative(occasions)

	assert.Contains(t, narrative, "This building was cited for the following violations:")
	assert.Contains(t, narrative, "On 2024-02-08, it was cited for the following 1 violations:")
	assert.Contains(t, narrative, "1) it allegedly violated city ordinance 'Failed to maintain the exterior walls.'")
	assert.Contains(t, narrative, "Inspector commented: 'WEST ELEVATION WASHED OUT MORTAR JOINTS'")
	assert.NotContains(t, narrative, "13-196-530")
}
