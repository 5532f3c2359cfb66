// Package dataset holds the curated corpus compiled into the binary: the
// base layoff records, the enrichment tables, and the auxiliary financial
// datasets. Accessors return fresh copies so callers can never mutate the
// canonical data.
//
// The corpus is seeded into the repository on first start; the tables feed
// the enricher and the cross-dataset analytics directly.
package dataset

import (
	"github.com/dkravets/layoffpulse/internal/layoffs/enrich"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
)

// BaseRecords returns the primary layoff corpus.
func BaseRecords() []models.LayoffRecord {
	out := make([]models.LayoffRecord, len(baseRecords))
	copy(out, baseRecords)
	return out
}

// EnrichmentTables returns the override, pattern, workforce and supplemental
// tables wired for enrich.NewEnricher.
func EnrichmentTables() enrich.Tables {
	overrides := make(map[string]models.DivisionOverride, len(divisionOverrides))
	for k, v := range divisionOverrides {
		overrides[k] = v
	}
	workforce := make(map[string]int, len(workforceSizes))
	for k, v := range workforceSizes {
		workforce[k] = v
	}
	patterns := make([]models.AIPattern, len(aiPatterns))
	copy(patterns, aiPatterns)
	supplemental := make([]models.LayoffRecord, len(supplementalRecords))
	copy(supplemental, supplementalRecords)

	return enrich.Tables{
		Overrides:    overrides,
		AIPatterns:   patterns,
		Workforce:    workforce,
		Supplemental: supplemental,
	}
}

// Financials returns the curated company revenue dataset.
func Financials() []models.CompanyFinancials {
	out := make([]models.CompanyFinancials, len(financials))
	copy(out, financials)
	return out
}

// Histories returns the multi-year headcount histories.
func Histories() []models.CompanyHistory {
	out := make([]models.CompanyHistory, len(headcountHistories))
	copy(out, headcountHistories)
	return out
}

// Headlines returns the curated press ticker entries.
func Headlines() []models.Headline {
	out := make([]models.Headline, len(headlines))
	copy(out, headlines)
	return out
}
