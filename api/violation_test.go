package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/hydepark-apt/amenity-api/config"
	"github.com/hydepark-apt/amenity-api/inspection"
	"github.com/hydepark-apt/amenity-api/schema"
)

type fixedViolationStore struct {
	violations []schema.Violation
	summary    *schema.InspectionSummary
}

func (f *fixedViolationStore) ListViolations(ctx context.Context, addressPrefix string, cutoff time.Time, categories []schema.InspectionCategory) ([]schema.Violation, error) {
	return f.violations, nil
}

func (f *fixedViolationStore) GetInspectionSummary(ctx context.Context, addressPrefix string) (*schema.InspectionSummary, error) {
	return f.summary, nil
}

func inspectionSettings() *config.Settings {
	settings := testSettings()
	settings.ViolationCutoff = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	settings.TrivialViolationCodes = []string{"CN190019", "CN193305"}
	return settings
}

func TestFetchInspections(t *testing.T) {
	store := &fixedViolationStore{
		violations: []schema.Violation{
			{
				ViolationID:      "7868571",
				ViolationDate:    time.Date(2021, 3, 16, 0, 0, 0, 0, time.UTC),
				ViolationCode:    "CN065014",
				InspectionNumber: 13035553,
			},
		},
		summary: &schema.InspectionSummary{
			Address: "5514 S BLACKSTONE AVE",
			Summary: schema.SummaryJSON{"summary": "One exterior wall violation."},
		},
	}

	settings := inspectionSettings()
	s := Server{
		settings:   settings,
		aggregator: inspection.NewAggregator(store, settings),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchInspections)

	req := httptest.NewRequest("GET", "/?address=5514+S+Blackstone+Ave,+Chicago", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")

	assert.Equal(t, "5514 S BLACKSTONE AVE", jResp["address"])
	assert.Equal(t, inspection.StatusAvailable, jResp["data_status"])
	assert.Equal(t, "2020-01-01", jResp["cut_off_date"])
	assert.Equal(t, float64(1), jResp["total_violations_count"])
	assert.Equal(t, float64(1), jResp["total_inspections_count"])
	assert.Equal(t, "One exterior wall violation.", jResp["summary"])
}

func TestFetchInspectionsNoViolations(t *testing.T) {
	settings := inspectionSettings()
	s := Server{
		settings:   settings,
		aggregator: inspection.NewAggregator(&fixedViolationStore{}, settings),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchInspections)

	req := httptest.NewRequest("GET", "/?address=5514+S+Blackstone+Ave", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp map[string]interface{}
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, inspection.StatusNoViolations, jResp["data_status"])
}

func TestFetchInspectionsMissingAddress(t *testing.T) {
	settings := inspectionSettings()
	s := Server{
		settings:   settings,
		aggregator: inspection.NewAggregator(&fixedViolationStore{}, settings),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/", s.fetchInspections)

	req := httptest.NewRequest("GET", "/?address=", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal([]byte(w.Body.String()), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, errorAddressRequired, jResp)
}
