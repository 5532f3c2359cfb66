// Package controller implements the service layer of the dashboard: it owns
// the enriched corpus, runs the pure aggregation pipeline for each request,
// and emits dataset lifecycle events.
package controller

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dkravets/layoffpulse/internal/layoffs/analytics"
	e "github.com/dkravets/layoffpulse/internal/layoffs/errors"
	"github.com/dkravets/layoffpulse/internal/layoffs/events"
	"github.com/dkravets/layoffpulse/internal/layoffs/metrics"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Repository defines the storage interface for the layoff corpus.
type Repository interface {
	ListRecords(ctx context.Context) ([]models.LayoffRecord, error)
	SeedIfEmpty(ctx context.Context, records []models.LayoffRecord) (bool, error)
	CountRecords(ctx context.Context) (int64, error)
	Close() error
}

// Enricher overlays curated metadata onto the base corpus.
type Enricher interface {
	Enrich(base []models.LayoffRecord) []models.LayoffRecord
}

type EventProducer interface {
	Produce(eventType events.EventType, dataset *events.DatasetInfo)
}

// AuxData carries the fixed auxiliary datasets the analytics join against.
type AuxData struct {
	Financials []models.CompanyFinancials
	Histories  []models.CompanyHistory
	Headlines  []models.Headline
}

// AnalyticsService serves derived views of the enriched corpus. The corpus
// itself is immutable between loads; requests only ever read it, so a single
// RWMutex guards the swap on reload.
type AnalyticsService struct {
	repo     Repository
	enricher Enricher
	producer EventProducer
	metrics  *metrics.Metrics
	aux      AuxData
	logger   *zap.Logger

	mu      sync.RWMutex
	corpus  []models.LayoffRecord
	version uuid.UUID
}

// NewAnalyticsService constructs the service. Call LoadDataset before
// serving.
func NewAnalyticsService(
	repo Repository,
	enricher Enricher,
	producer EventProducer,
	m *metrics.Metrics,
	aux AuxData,
	logger *zap.Logger,
) *AnalyticsService {
	return &AnalyticsService{
		repo:     repo,
		enricher: enricher,
		producer: producer,
		metrics:  m,
		aux:      aux,
		logger:   logger.Named("analytics_service"),
	}
}

// LoadDataset seeds the repository with the embedded corpus when empty, then
// reads it back and enriches it. Emits dataset_seeded on a fresh seed,
// dataset_reloaded otherwise.
func (s *AnalyticsService) LoadDataset(ctx context.Context, seed []models.LayoffRecord) error {
	seeded, err := s.repo.SeedIfEmpty(ctx, seed)
	if err != nil {
		return fmt.Errorf("failed to seed corpus: %w", err)
	}
	eventType := events.DatasetReloaded
	if seeded {
		eventType = events.DatasetSeeded
	}
	return s.reload(ctx, eventType)
}

// Reload re-reads the repository and re-enriches, replacing the served
// corpus. Used after out-of-band corpus updates.
func (s *AnalyticsService) Reload(ctx context.Context) error {
	return s.reload(ctx, events.DatasetReloaded)
}

func (s *AnalyticsService) reload(ctx context.Context, eventType events.EventType) error {
	base, err := s.repo.ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("failed to list corpus: %w", err)
	}
	if len(base) == 0 {
		return e.ErrEmptyDataset
	}

	enriched := s.enricher.Enrich(base)
	version := uuid.New()

	s.mu.Lock()
	s.corpus = enriched
	s.version = version
	s.mu.Unlock()

	if s.metrics != nil {
		s.metrics.CorpusSize.Set(float64(len(enriched)))
	}
	s.logger.Info("corpus loaded",
		zap.String("dataset_version", version.String()),
		zap.Int("records", len(enriched)),
	)

	info := &events.DatasetInfo{Version: version, Records: len(enriched)}
	go func() {
		s.producer.Produce(eventType, info)
	}()
	return nil
}

// snapshotCorpus returns the current enriched corpus and its version. The
// slice is shared read-only; callers must not mutate it.
func (s *AnalyticsService) snapshotCorpus() ([]models.LayoffRecord, uuid.UUID) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.corpus, s.version
}

// normalize fills unset year bounds with the corpus range and rejects an
// inverted range.
func (s *AnalyticsService) normalize(corpus []models.LayoffRecord, c models.FilterCriteria) (models.FilterCriteria, error) {
	minYear, maxYear, ok := analytics.YearBounds(corpus)
	if !ok {
		return c, e.ErrEmptyDataset
	}
	if c.MinYear == 0 {
		c.MinYear = minYear
	}
	if c.MaxYear == 0 {
		c.MaxYear = maxYear
	}
	if c.MinYear > c.MaxYear {
		return c, fmt.Errorf("%w: min year %d after max year %d", e.ErrInvalidFilter, c.MinYear, c.MaxYear)
	}
	return c, nil
}

// subset resolves the criteria against the current corpus.
func (s *AnalyticsService) subset(c models.FilterCriteria) ([]models.LayoffRecord, models.FilterCriteria, error) {
	corpus, _ := s.snapshotCorpus()
	norm, err := s.normalize(corpus, c)
	if err != nil {
		return nil, norm, err
	}
	return analytics.Filter(corpus, norm), norm, nil
}

// Snapshot runs the full pipeline for the criteria and returns every derived
// view in one structure.
func (s *AnalyticsService) Snapshot(c models.FilterCriteria) (*models.DashboardSnapshot, error) {
	start := time.Now()
	subset, norm, err := s.subset(c)
	if err != nil {
		return nil, err
	}

	snap := &models.DashboardSnapshot{
		Criteria:     norm,
		KPIs:         analytics.Summarize(subset),
		AI:           analytics.AISummary(subset),
		Trends:       analytics.Trends(subset),
		Monthly:      analytics.MonthlySeries(subset),
		Industries:   analytics.IndustryRollup(subset),
		Countries:    analytics.CountryRollup(subset),
		Stages:       analytics.StageRollup(subset),
		Years:        analytics.YearlyRollup(subset),
		Heatmap:      analytics.Heatmap(subset),
		TopCompanies: analytics.TopCompanies(subset),
	}

	if s.metrics != nil {
		s.metrics.SnapshotsTotal.Inc()
		s.metrics.PipelineDuration.Observe(time.Since(start).Seconds())
	}

	_, version := s.snapshotCorpus()
	info := &events.DatasetInfo{Version: version, Records: len(subset)}
	go func() {
		s.producer.Produce(events.SnapshotComputed, info)
	}()
	return snap, nil
}

// Summary returns the headline KPIs and the AI stats for the criteria.
func (s *AnalyticsService) Summary(c models.FilterCriteria) (models.KPISummary, models.AIStats, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return models.KPISummary{}, models.AIStats{}, err
	}
	return analytics.Summarize(subset), analytics.AISummary(subset), nil
}

// Trends returns year-over-year deltas for the criteria.
func (s *AnalyticsService) Trends(c models.FilterCriteria) (models.TrendDeltas, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return models.TrendDeltas{}, err
	}
	return analytics.Trends(subset), nil
}

func (s *AnalyticsService) Monthly(c models.FilterCriteria) ([]models.MonthlyPoint, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.MonthlySeries(subset), nil
}

func (s *AnalyticsService) Industries(c models.FilterCriteria) ([]models.IndustryRow, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.IndustryRollup(subset), nil
}

func (s *AnalyticsService) Countries(c models.FilterCriteria) ([]models.CountryRow, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.CountryRollup(subset), nil
}

func (s *AnalyticsService) Stages(c models.FilterCriteria) ([]models.StageRow, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.StageRollup(subset), nil
}

func (s *AnalyticsService) Years(c models.FilterCriteria) ([]models.YearRow, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.YearlyRollup(subset), nil
}

func (s *AnalyticsService) Heatmap(c models.FilterCriteria) ([]models.HeatmapCell, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.Heatmap(subset), nil
}

func (s *AnalyticsService) TopCompanies(c models.FilterCriteria) ([]models.LayoffRecord, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.TopCompanies(subset), nil
}

// Efficiency joins the financials dataset against the full, unfiltered
// corpus; the active filter deliberately does not apply here.
func (s *AnalyticsService) Efficiency() []models.EfficiencyMetric {
	corpus, _ := s.snapshotCorpus()
	return analytics.EfficiencyMetrics(s.aux.Financials, corpus)
}

// WorkforceImpact ranks companies by cumulative layoffs relative to their
// estimated workforce, within the criteria.
func (s *AnalyticsService) WorkforceImpact(c models.FilterCriteria) ([]models.WorkforceImpactRow, error) {
	subset, _, err := s.subset(c)
	if err != nil {
		return nil, err
	}
	return analytics.WorkforceImpact(subset), nil
}

// HeadcountHistory returns a company's headcount trajectory with YoY deltas
// filled in.
func (s *AnalyticsService) HeadcountHistory(company string) (models.CompanyHistory, error) {
	history, err := analytics.HistoryFor(s.aux.Histories, company)
	if err != nil {
		return models.CompanyHistory{}, err
	}
	return analytics.FillYoY(history), nil
}

// Headlines returns the curated ticker entries.
func (s *AnalyticsService) Headlines() []models.Headline {
	return s.aux.Headlines
}

// FilterOptions returns the distinct industries and countries plus the year
// range of the enriched corpus, for populating the dashboard filter bar.
func (s *AnalyticsService) FilterOptions() (industries, countries []string, minYear, maxYear int) {
	corpus, _ := s.snapshotCorpus()
	industries = analytics.DistinctIndustries(corpus)
	countries = analytics.DistinctCountries(corpus)
	minYear, maxYear, _ = analytics.YearBounds(corpus)
	return industries, countries, minYear, maxYear
}
