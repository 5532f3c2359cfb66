package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	e "github.com/dkravets/layoffpulse/internal/layoffs/errors"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/dkravets/layoffpulse/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// stubController implements AnalyticsController with canned responses and
// records the criteria each call received.
type stubController struct {
	lastCriteria models.FilterCriteria
	reloadCalls  int
	reloadErr    error
}

func (s *stubController) Snapshot(c models.FilterCriteria) (*models.DashboardSnapshot, error) {
	s.lastCriteria = c
	return &models.DashboardSnapshot{Criteria: c, KPIs: models.KPISummary{TotalEvents: 2}}, nil
}

func (s *stubController) Summary(c models.FilterCriteria) (models.KPISummary, models.AIStats, error) {
	s.lastCriteria = c
	return models.KPISummary{TotalLaidOff: 1500, TotalEvents: 2, LargestCompany: "Globex"},
		models.AIStats{Events: 1, ShareOfEvents: 50}, nil
}

func (s *stubController) Trends(c models.FilterCriteria) (models.TrendDeltas, error) {
	s.lastCriteria = c
	return models.TrendDeltas{TotalLaidOffChange: utils.Ptr(200)}, nil
}

func (s *stubController) Monthly(c models.FilterCriteria) ([]models.MonthlyPoint, error) {
	s.lastCriteria = c
	return []models.MonthlyPoint{{Month: "Jan 2025", Year: 2025, MonthNum: 1, Events: 2}}, nil
}

func (s *stubController) Industries(c models.FilterCriteria) ([]models.IndustryRow, error) {
	s.lastCriteria = c
	return []models.IndustryRow{{Industry: "Finance", TotalLaidOff: 300, Events: 1}}, nil
}

func (s *stubController) Countries(c models.FilterCriteria) ([]models.CountryRow, error) {
	s.lastCriteria = c
	return nil, nil
}

func (s *stubController) Stages(c models.FilterCriteria) ([]models.StageRow, error) {
	s.lastCriteria = c
	return nil, nil
}

func (s *stubController) Years(c models.FilterCriteria) ([]models.YearRow, error) {
	s.lastCriteria = c
	return nil, nil
}

func (s *stubController) Heatmap(c models.FilterCriteria) ([]models.HeatmapCell, error) {
	s.lastCriteria = c
	return nil, nil
}

func (s *stubController) TopCompanies(c models.FilterCriteria) ([]models.LayoffRecord, error) {
	s.lastCriteria = c
	return nil, nil
}

func (s *stubController) Efficiency() []models.EfficiencyMetric {
	return []models.EfficiencyMetric{{Company: "Globex", JobsPerBillionRevenue: 2000}}
}

func (s *stubController) WorkforceImpact(c models.FilterCriteria) ([]models.WorkforceImpactRow, error) {
	s.lastCriteria = c
	return nil, nil
}

func (s *stubController) HeadcountHistory(company string) (models.CompanyHistory, error) {
	if company != "Globex" {
		return models.CompanyHistory{}, e.ErrNotFound
	}
	return models.CompanyHistory{Company: "Globex"}, nil
}

func (s *stubController) Headlines() []models.Headline {
	return []models.Headline{{Text: "cuts announced", Company: "Globex"}}
}

func (s *stubController) FilterOptions() ([]string, []string, int, int) {
	return []string{"Finance"}, []string{"United States"}, 2022, 2025
}

func (s *stubController) Reload(context.Context) error {
	s.reloadCalls++
	return s.reloadErr
}

func newTestMux(t *testing.T, controller AnalyticsController) *http.ServeMux {
	t.Helper()
	handler := NewAnalyticsHandler(controller, nil, zaptest.NewLogger(t))
	mux := http.NewServeMux()
	handler.Register(mux)
	return mux
}

func TestAnalyticsHandler_Routes(t *testing.T) {
	mux := newTestMux(t, &stubController{})

	routes := []string{
		"/v1/snapshot",
		"/v1/summary",
		"/v1/trends",
		"/v1/aggregates/monthly",
		"/v1/aggregates/industries",
		"/v1/aggregates/countries",
		"/v1/aggregates/stages",
		"/v1/aggregates/years",
		"/v1/aggregates/heatmap",
		"/v1/records/top",
		"/v1/analytics/efficiency",
		"/v1/analytics/workforce-impact",
		"/v1/analytics/headcount/Globex",
		"/v1/headlines",
		"/v1/meta/filters",
	}

	for _, route := range routes {
		t.Run(route, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, route, nil))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestAnalyticsHandler_GetSummary(t *testing.T) {
	controller := &stubController{}
	mux := newTestMux(t, controller)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/v1/summary?min_year=2023&max_year=2024&industry=Finance&country=United+States&q=glo", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, models.FilterCriteria{
		MinYear:  2023,
		MaxYear:  2024,
		Industry: "Finance",
		Country:  "United States",
		Search:   "glo",
	}, controller.lastCriteria)

	var body summaryResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 1500, body.KPIs.TotalLaidOff)
	assert.Equal(t, "Globex", body.KPIs.LargestCompany)
	assert.Equal(t, 1, body.AI.Events)
	assert.Equal(t, "1.5K", body.Display.TotalLaidOff)
}

func TestAnalyticsHandler_BadYearParam(t *testing.T) {
	mux := newTestMux(t, &stubController{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/summary?min_year=banana", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Error, "min_year")
}

func TestAnalyticsHandler_HeadcountHistory(t *testing.T) {
	mux := newTestMux(t, &stubController{})

	t.Run("known company", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/headcount/Globex", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body models.CompanyHistory
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "Globex", body.Company)
	})

	t.Run("unknown company", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/analytics/headcount/Nobody", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAnalyticsHandler_FilterOptions(t *testing.T) {
	mux := newTestMux(t, &stubController{})

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/meta/filters", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body filterOptionsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"Finance"}, body.Industries)
	assert.Equal(t, []string{"United States"}, body.Countries)
	assert.Equal(t, 2022, body.MinYear)
	assert.Equal(t, 2025, body.MaxYear)
}

func TestAnalyticsHandler_PostReload(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		controller := &stubController{}
		mux := newTestMux(t, controller)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, 1, controller.reloadCalls)
	})

	t.Run("empty dataset maps to 503", func(t *testing.T) {
		controller := &stubController{reloadErr: e.ErrEmptyDataset}
		mux := newTestMux(t, controller)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/dataset/reload", nil))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}
