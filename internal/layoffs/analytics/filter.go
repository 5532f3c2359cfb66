// Package analytics implements the pure reduction pipeline behind the
// dashboard: the filter engine, the grouped rollups, the KPI and trend
// summaries, and the cross-dataset joins against financials and headcounts.
// Every function here is a pure function over its input slice; none of them
// mutate records or share state, so callers may run them in any order.
package analytics

import (
	"sort"
	"strings"

	"github.com/dkravets/layoffpulse/internal/layoffs/dates"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
)

// Filter returns the records passing all four predicates of the criteria:
// event year within [MinYear, MaxYear], exact industry match, exact country
// match, and a case-insensitive substring search over company, HQ and
// industry. Records whose date does not parse fail the year check and are
// excluded. The returned slice preserves input order.
func Filter(records []models.LayoffRecord, c models.FilterCriteria) []models.LayoffRecord {
	search := strings.ToLower(c.Search)

	out := make([]models.LayoffRecord, 0, len(records))
	for _, rec := range records {
		date, ok := dates.ParseEventDate(rec.Date)
		if !ok {
			continue
		}
		year := date.Year()
		if year < c.MinYear || year > c.MaxYear {
			continue
		}
		if c.Industry != "" && rec.Industry != c.Industry {
			continue
		}
		if c.Country != "" && rec.Country != c.Country {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(rec.Company), search) &&
			!strings.Contains(strings.ToLower(rec.LocationHQ), search) &&
			!strings.Contains(strings.ToLower(rec.Industry), search) {
			continue
		}
		out = append(out, rec)
	}
	return out
}

// DistinctIndustries returns the sorted set of non-empty industries.
func DistinctIndustries(records []models.LayoffRecord) []string {
	return distinctNonEmpty(records, func(r models.LayoffRecord) string { return r.Industry })
}

// DistinctCountries returns the sorted set of non-empty countries.
func DistinctCountries(records []models.LayoffRecord) []string {
	return distinctNonEmpty(records, func(r models.LayoffRecord) string { return r.Country })
}

// YearBounds returns the min and max event year over records with a
// parseable date; ok is false when no record has one.
func YearBounds(records []models.LayoffRecord) (minYear, maxYear int, ok bool) {
	for _, rec := range records {
		date, valid := dates.ParseEventDate(rec.Date)
		if !valid {
			continue
		}
		y := date.Year()
		if !ok {
			minYear, maxYear, ok = y, y, true
			continue
		}
		if y < minYear {
			minYear = y
		}
		if y > maxYear {
			maxYear = y
		}
	}
	return minYear, maxYear, ok
}

func distinctNonEmpty(records []models.LayoffRecord, field func(models.LayoffRecord) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, rec := range records {
		v := field(rec)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
