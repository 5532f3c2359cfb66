// Package enrich overlays curated metadata onto the base layoff corpus:
// division labels and AI-attribution flags from an override table, workforce
// estimates from a size table, derived reduction percentages, and a set of
// supplemental hand-curated records appended at the end.
//
// Overlays are monotonic: enrichment fills gaps and adds confirmed signals,
// it never erases a value already present on a record.
package enrich

import (
	"math"

	"github.com/dkravets/layoffpulse/internal/layoffs/dates"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"go.uber.org/zap"
)

// Tables bundles the curated lookup tables the enricher joins against.
// They are injected at construction so tests can supply synthetic data.
type Tables struct {
	// Overrides is keyed by OverrideKey(company, date).
	Overrides map[string]models.DivisionOverride
	// AIPatterns marks whole companies (optionally date-bounded) as
	// AI-related.
	AIPatterns []models.AIPattern
	// Workforce maps company name to its estimated total employee count.
	Workforce map[string]int
	// Supplemental records are appended unmodified after enrichment; they
	// already carry final values.
	Supplemental []models.LayoffRecord
}

// Enricher joins the base corpus against the curated tables.
type Enricher struct {
	tables Tables
	logger *zap.Logger
}

// NewEnricher constructs an Enricher over the given tables.
func NewEnricher(tables Tables, logger *zap.Logger) *Enricher {
	return &Enricher{
		tables: tables,
		logger: logger.Named("enricher"),
	}
}

// OverrideKey builds the composite company|date key of the override table.
func OverrideKey(company, date string) string {
	return company + "|" + date
}

// Enrich returns a new slice containing every input record, overlaid with
// curated metadata, followed by the supplemental records. The input is not
// mutated and no input record is dropped:
//
//	len(out) == len(base) + len(tables.Supplemental)
func (e *Enricher) Enrich(base []models.LayoffRecord) []models.LayoffRecord {
	out := make([]models.LayoffRecord, 0, len(base)+len(e.tables.Supplemental))

	for _, rec := range base {
		override, hasOverride := e.tables.Overrides[OverrideKey(rec.Company, rec.Date)]

		if hasOverride && override.Division != "" && rec.Division == "" {
			rec.Division = override.Division
		}

		ai := false
		if hasOverride && override.AIRelated != nil {
			ai = *override.AIRelated
		}
		if !ai {
			ai = e.matchesAIPattern(rec)
		}
		// The flag is sticky: a pattern or override can set it, nothing
		// clears a true already on the record.
		rec.AIRelated = ai || rec.AIRelated

		if size, ok := e.tables.Workforce[rec.Company]; ok {
			size := size
			rec.EstEmployees = &size
		}

		if rec.Percentage == nil && rec.LaidOff != nil && *rec.LaidOff > 0 &&
			rec.EstEmployees != nil && *rec.EstEmployees > 0 {
			// Scaled to one decimal place before dividing back down so
			// the result is an exact tenth.
			pct := math.Round(float64(*rec.LaidOff)/float64(*rec.EstEmployees)*1000) / 10
			rec.Percentage = &pct
		}

		out = append(out, rec)
	}

	out = append(out, e.tables.Supplemental...)

	e.logger.Debug("enriched corpus",
		zap.Int("base_records", len(base)),
		zap.Int("supplemental_records", len(e.tables.Supplemental)),
	)
	return out
}

// matchesAIPattern reports whether any AI pattern applies to the record.
// A pattern with a threshold only matches records dated on or after it;
// records with an unparseable date never match a dated pattern.
func (e *Enricher) matchesAIPattern(rec models.LayoffRecord) bool {
	for _, p := range e.tables.AIPatterns {
		if rec.Company != p.Company {
			continue
		}
		if p.DateAfter == "" {
			return true
		}
		recDate, okRec := dates.ParseEventDate(rec.Date)
		threshold, okThr := dates.ParseEventDate(p.DateAfter)
		if okRec && okThr && !recDate.Before(threshold) {
			return true
		}
	}
	return false
}
