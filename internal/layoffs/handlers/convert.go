package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	e "github.com/dkravets/layoffpulse/internal/layoffs/errors"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/dkravets/layoffpulse/internal/pkg/format"
	"go.uber.org/zap"
)

type summaryResponse struct {
	KPIs models.KPISummary `json:"kpis"`
	AI   models.AIStats    `json:"ai"`
	// Display carries the pre-formatted figures the dashboard header shows.
	Display displayFigures `json:"display"`
}

type displayFigures struct {
	TotalLaidOff  string `json:"totalLaidOff"`
	AverageSize   string `json:"averageSize"`
	LargestLayoff string `json:"largestLayoff"`
}

func formatSummary(kpis models.KPISummary) displayFigures {
	return displayFigures{
		TotalLaidOff:  format.Count(kpis.TotalLaidOff),
		AverageSize:   format.Count(kpis.AverageSize),
		LargestLayoff: format.Count(kpis.LargestLayoff),
	}
}

type filterOptionsResponse struct {
	Industries []string `json:"industries"`
	Countries  []string `json:"countries"`
	MinYear    int      `json:"minYear"`
	MaxYear    int      `json:"maxYear"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// parseCriteria converts the filter query parameters to FilterCriteria.
// Unset year bounds stay zero; the controller fills them with the corpus
// range.
func parseCriteria(r *http.Request) (models.FilterCriteria, error) {
	q := r.URL.Query()
	criteria := models.FilterCriteria{
		Industry: q.Get("industry"),
		Country:  q.Get("country"),
		Search:   q.Get("q"),
	}

	var err error
	if criteria.MinYear, err = yearParam(q.Get("min_year")); err != nil {
		return criteria, fmt.Errorf("%w: min_year: %v", e.ErrInvalidFilter, err)
	}
	if criteria.MaxYear, err = yearParam(q.Get("max_year")); err != nil {
		return criteria, fmt.Errorf("%w: max_year: %v", e.ErrInvalidFilter, err)
	}
	return criteria, nil
}

func yearParam(raw string) (int, error) {
	if raw == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("not a year: %q", raw)
	}
	return year, nil
}

func (h *AnalyticsHandler) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// writeError maps domain errors to HTTP status codes.
func (h *AnalyticsHandler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, e.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, e.ErrInvalidFilter):
		status = http.StatusBadRequest
	case errors.Is(err, e.ErrEmptyDataset):
		status = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encodeErr := json.NewEncoder(w).Encode(errorResponse{Error: err.Error()}); encodeErr != nil {
		h.logger.Error("failed to encode error response", zap.Error(encodeErr))
	}
}

// statusRecorder captures the status code for the request counter.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument counts requests per route and status code.
func (h *AnalyticsHandler) instrument(route string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)
		if h.metrics != nil {
			h.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(recorder.status)).Inc()
		}
	}
}
