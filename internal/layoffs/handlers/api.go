package handlers

import (
	"context"
	"net/http"

	"github.com/dkravets/layoffpulse/internal/layoffs/metrics"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"go.uber.org/zap"
)

// AnalyticsController defines the business logic interface the HTTP
// handlers invoke.
type AnalyticsController interface {
	Snapshot(c models.FilterCriteria) (*models.DashboardSnapshot, error)
	Summary(c models.FilterCriteria) (models.KPISummary, models.AIStats, error)
	Trends(c models.FilterCriteria) (models.TrendDeltas, error)
	Monthly(c models.FilterCriteria) ([]models.MonthlyPoint, error)
	Industries(c models.FilterCriteria) ([]models.IndustryRow, error)
	Countries(c models.FilterCriteria) ([]models.CountryRow, error)
	Stages(c models.FilterCriteria) ([]models.StageRow, error)
	Years(c models.FilterCriteria) ([]models.YearRow, error)
	Heatmap(c models.FilterCriteria) ([]models.HeatmapCell, error)
	TopCompanies(c models.FilterCriteria) ([]models.LayoffRecord, error)
	Efficiency() []models.EfficiencyMetric
	WorkforceImpact(c models.FilterCriteria) ([]models.WorkforceImpactRow, error)
	HeadcountHistory(company string) (models.CompanyHistory, error)
	Headlines() []models.Headline
	FilterOptions() (industries, countries []string, minYear, maxYear int)
	Reload(ctx context.Context) error
}

// AnalyticsHandler serves the dashboard API.
type AnalyticsHandler struct {
	controller AnalyticsController
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// NewAnalyticsHandler constructs the handler.
func NewAnalyticsHandler(controller AnalyticsController, m *metrics.Metrics, logger *zap.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{
		controller: controller,
		logger:     logger.Named("analytics_handler"),
		metrics:    m,
	}
}

// Register mounts every dashboard route on the mux.
func (h *AnalyticsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/snapshot", h.instrument("snapshot", h.getSnapshot))
	mux.HandleFunc("GET /v1/summary", h.instrument("summary", h.getSummary))
	mux.HandleFunc("GET /v1/trends", h.instrument("trends", h.getTrends))
	mux.HandleFunc("GET /v1/aggregates/monthly", h.instrument("monthly", h.getMonthly))
	mux.HandleFunc("GET /v1/aggregates/industries", h.instrument("industries", h.getIndustries))
	mux.HandleFunc("GET /v1/aggregates/countries", h.instrument("countries", h.getCountries))
	mux.HandleFunc("GET /v1/aggregates/stages", h.instrument("stages", h.getStages))
	mux.HandleFunc("GET /v1/aggregates/years", h.instrument("years", h.getYears))
	mux.HandleFunc("GET /v1/aggregates/heatmap", h.instrument("heatmap", h.getHeatmap))
	mux.HandleFunc("GET /v1/records/top", h.instrument("top_records", h.getTopCompanies))
	mux.HandleFunc("GET /v1/analytics/efficiency", h.instrument("efficiency", h.getEfficiency))
	mux.HandleFunc("GET /v1/analytics/workforce-impact", h.instrument("workforce_impact", h.getWorkforceImpact))
	mux.HandleFunc("GET /v1/analytics/headcount/{company}", h.instrument("headcount", h.getHeadcountHistory))
	mux.HandleFunc("GET /v1/headlines", h.instrument("headlines", h.getHeadlines))
	mux.HandleFunc("GET /v1/meta/filters", h.instrument("filters", h.getFilterOptions))
	mux.HandleFunc("POST /v1/dataset/reload", h.instrument("reload", h.postReload))
}

func (h *AnalyticsHandler) getSnapshot(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	snapshot, err := h.controller.Snapshot(criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, snapshot)
}

func (h *AnalyticsHandler) getSummary(w http.ResponseWriter, r *http.Request) {
	criteria, err := parseCriteria(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	kpis, ai, err := h.controller.Summary(criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, summaryResponse{KPIs: kpis, AI: ai, Display: formatSummary(kpis)})
}

func (h *AnalyticsHandler) getTrends(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.Trends(c)
	})
}

func (h *AnalyticsHandler) getMonthly(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.Monthly(c)
	})
}

func (h *AnalyticsHandler) getIndustries(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.Industries(c)
	})
}

func (h *AnalyticsHandler) getCountries(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.Countries(c)
	})
}

func (h *AnalyticsHandler) getStages(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.Stages(c)
	})
}

func (h *AnalyticsHandler) getYears(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.Years(c)
	})
}

func (h *AnalyticsHandler) getHeatmap(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.Heatmap(c)
	})
}

func (h *AnalyticsHandler) getTopCompanies(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.TopCompanies(c)
	})
}

func (h *AnalyticsHandler) getEfficiency(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.controller.Efficiency())
}

func (h *AnalyticsHandler) getWorkforceImpact(w http.ResponseWriter, r *http.Request) {
	h.serveFiltered(w, r, func(c models.FilterCriteria) (any, error) {
		return h.controller.WorkforceImpact(c)
	})
}

func (h *AnalyticsHandler) getHeadcountHistory(w http.ResponseWriter, r *http.Request) {
	history, err := h.controller.HeadcountHistory(r.PathValue("company"))
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, history)
}

func (h *AnalyticsHandler) getHeadlines(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, h.controller.Headlines())
}

func (h *AnalyticsHandler) getFilterOptions(w http.ResponseWriter, _ *http.Request) {
	industries, countries, minYear, maxYear := h.controller.FilterOptions()
	h.writeJSON(w, filterOptionsResponse{
		Industries: industries,
		Countries:  countries,
		MinYear:    minYear,
		MaxYear:    maxYear,
	})
}

func (h *AnalyticsHandler) postReload(w http.ResponseWriter, r *http.Request) {
	if err := h.controller.Reload(r.Context()); err != nil {
		h.logger.Error("dataset reload failed", zap.Error(err))
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// serveFiltered parses the filter query params and writes the view fn
// produces for them.
func (h *AnalyticsHandler) serveFiltered(w http.ResponseWriter, r *http.Request, fn func(models.FilterCriteria) (any, error)) {
	criteria, err := parseCriteria(r)
	if err != nil {
		h.writeError(w, err)
		return
	}
	payload, err := fn(criteria)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, payload)
}
