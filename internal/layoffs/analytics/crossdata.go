package analytics

import (
	"fmt"
	"math"
	"sort"

	e "github.com/dkravets/layoffpulse/internal/layoffs/errors"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
)

// EfficiencyMetrics joins the curated financials against the full, unfiltered
// corpus. Jobs per $1B of revenue is derived from the financial row alone
// (zero when the company reports no revenue); the corpus contributes only the
// contextual net-layoffs figure. Companies join on exact name; a company with
// no tracked layoffs simply has NetAdded zero.
func EfficiencyMetrics(financials []models.CompanyFinancials, allRecords []models.LayoffRecord) []models.EfficiencyMetric {
	laidOffByCompany := make(map[string]int)
	for _, rec := range allRecords {
		if rec.LaidOff != nil {
			laidOffByCompany[rec.Company] += *rec.LaidOff
		}
	}

	out := make([]models.EfficiencyMetric, 0, len(financials))
	for _, fin := range financials {
		jobsPerBillion := 0
		if fin.RevenueMillions > 0 {
			jobsPerBillion = int(math.Round(float64(fin.EmployeeCount) / (float64(fin.RevenueMillions) / 1000)))
		}
		out = append(out, models.EfficiencyMetric{
			Company:               fin.Company,
			Sector:                fin.Sector,
			RevenuePerEmployee:    fin.RevenuePerEmployee,
			JobsPerBillionRevenue: jobsPerBillion,
			NetAdded:              -laidOffByCompany[fin.Company],
			RevenueMillions:       fin.RevenueMillions,
			EmployeeCount:         fin.EmployeeCount,
		})
	}
	return out
}

// WorkforceImpact expresses each company's cumulative laid-off total as a
// percentage of its estimated workforce, descending. Companies without a
// positive laid-off total or without a workforce estimate are excluded
// entirely rather than shown at zero.
func WorkforceImpact(records []models.LayoffRecord) []models.WorkforceImpactRow {
	type companyAcc struct {
		totalLaidOff int
		estEmployees int
	}
	acc := make(map[string]*companyAcc)
	var order []string

	for _, rec := range records {
		entry, exists := acc[rec.Company]
		if !exists {
			entry = &companyAcc{}
			acc[rec.Company] = entry
			order = append(order, rec.Company)
		}
		if rec.LaidOff != nil && *rec.LaidOff > 0 {
			entry.totalLaidOff += *rec.LaidOff
		}
		if entry.estEmployees == 0 && rec.EstEmployees != nil {
			entry.estEmployees = *rec.EstEmployees
		}
	}

	out := make([]models.WorkforceImpactRow, 0, len(order))
	for _, company := range order {
		entry := acc[company]
		if entry.totalLaidOff <= 0 || entry.estEmployees <= 0 {
			continue
		}
		out = append(out, models.WorkforceImpactRow{
			Company:        company,
			TotalLaidOff:   entry.totalLaidOff,
			EstEmployees:   entry.estEmployees,
			PctOfWorkforce: math.Round(float64(entry.totalLaidOff)/float64(entry.estEmployees)*1000) / 10,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PctOfWorkforce > out[j].PctOfWorkforce
	})
	return out
}

// HistoryFor looks up a company's headcount history by exact name.
func HistoryFor(histories []models.CompanyHistory, company string) (models.CompanyHistory, error) {
	for _, h := range histories {
		if h.Company == company {
			return h, nil
		}
	}
	return models.CompanyHistory{}, fmt.Errorf("%w: no headcount history for %q", e.ErrNotFound, company)
}

// FillYoY returns a copy of the history with missing year-over-year deltas
// computed from consecutive counts, to one decimal place. The first tracked
// year stays nil, as does any year following a zero count.
func FillYoY(history models.CompanyHistory) models.CompanyHistory {
	filled := make([]models.HeadcountYear, len(history.Headcount))
	copy(filled, history.Headcount)

	for i := 1; i < len(filled); i++ {
		if filled[i].YoYChangePercent != nil {
			continue
		}
		prev := filled[i-1].Count
		if prev == 0 {
			continue
		}
		yoy := math.Round(float64(filled[i].Count-prev)/float64(prev)*1000) / 10
		filled[i].YoYChangePercent = &yoy
	}

	history.Headcount = filled
	return history
}
