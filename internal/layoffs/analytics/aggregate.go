package analytics

import (
	"sort"
	"strconv"

	"github.com/dkravets/layoffpulse/internal/layoffs/dates"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
)

// Row caps for the ranked rollups. Consumers chart at most this many bars.
const (
	industryRollupLimit = 12
	countryRollupLimit  = 12
	topCompaniesLimit   = 15
)

type yearMonth struct {
	year  int
	month int
}

// MonthlySeries groups the subset by calendar month, ascending. Records with
// an unparseable date are skipped.
func MonthlySeries(records []models.LayoffRecord) []models.MonthlyPoint {
	acc := make(map[yearMonth]*models.MonthlyPoint)

	for _, rec := range records {
		date, ok := dates.ParseEventDate(rec.Date)
		if !ok {
			continue
		}
		key := yearMonth{year: date.Year(), month: int(date.Month())}
		point, exists := acc[key]
		if !exists {
			point = &models.MonthlyPoint{
				Month:    dates.MonthAbbrev(date.Month()) + " " + strconv.Itoa(key.year),
				Year:     key.year,
				MonthNum: key.month,
			}
			acc[key] = point
		}
		point.Events++
		if rec.LaidOff != nil {
			point.Count++
			point.TotalLaidOff += *rec.LaidOff
		}
	}

	out := make([]models.MonthlyPoint, 0, len(acc))
	for _, point := range acc {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].MonthNum < out[j].MonthNum
	})
	return out
}

// IndustryRollup sums the subset per industry, descending by total laid off,
// capped at twelve rows. Records with an empty industry are skipped.
func IndustryRollup(records []models.LayoffRecord) []models.IndustryRow {
	acc := make(map[string]*models.IndustryRow)
	var order []string

	for _, rec := range records {
		if rec.Industry == "" {
			continue
		}
		row, exists := acc[rec.Industry]
		if !exists {
			row = &models.IndustryRow{Industry: rec.Industry}
			acc[rec.Industry] = row
			order = append(order, rec.Industry)
		}
		row.Events++
		if rec.LaidOff != nil {
			row.TotalLaidOff += *rec.LaidOff
		}
	}

	out := make([]models.IndustryRow, 0, len(order))
	for _, industry := range order {
		out = append(out, *acc[industry])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalLaidOff > out[j].TotalLaidOff
	})
	if len(out) > industryRollupLimit {
		out = out[:industryRollupLimit]
	}
	return out
}

// CountryRollup sums the subset per country, descending by total laid off,
// capped at twelve rows. Records with an empty country are skipped.
func CountryRollup(records []models.LayoffRecord) []models.CountryRow {
	acc := make(map[string]*models.CountryRow)
	var order []string

	for _, rec := range records {
		if rec.Country == "" {
			continue
		}
		row, exists := acc[rec.Country]
		if !exists {
			row = &models.CountryRow{Country: rec.Country}
			acc[rec.Country] = row
			order = append(order, rec.Country)
		}
		row.Events++
		if rec.LaidOff != nil {
			row.TotalLaidOff += *rec.LaidOff
		}
	}

	out := make([]models.CountryRow, 0, len(order))
	for _, country := range order {
		out = append(out, *acc[country])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].TotalLaidOff > out[j].TotalLaidOff
	})
	if len(out) > countryRollupLimit {
		out = out[:countryRollupLimit]
	}
	return out
}

// StageRollup sums the subset per funding stage, descending by event count.
// An absent stage groups under "Unknown".
func StageRollup(records []models.LayoffRecord) []models.StageRow {
	acc := make(map[string]*models.StageRow)
	var order []string

	for _, rec := range records {
		stage := rec.Stage
		if stage == "" {
			stage = "Unknown"
		}
		row, exists := acc[stage]
		if !exists {
			row = &models.StageRow{Stage: stage}
			acc[stage] = row
			order = append(order, stage)
		}
		row.Events++
		if rec.LaidOff != nil {
			row.TotalLaidOff += *rec.LaidOff
		}
	}

	out := make([]models.StageRow, 0, len(order))
	for _, stage := range order {
		out = append(out, *acc[stage])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Events > out[j].Events
	})
	return out
}

// YearlyRollup sums the subset per calendar year, ascending. Records with an
// unparseable date are skipped.
func YearlyRollup(records []models.LayoffRecord) []models.YearRow {
	acc := make(map[int]*models.YearRow)

	for _, rec := range records {
		date, ok := dates.ParseEventDate(rec.Date)
		if !ok {
			continue
		}
		year := date.Year()
		row, exists := acc[year]
		if !exists {
			row = &models.YearRow{Year: year}
			acc[year] = row
		}
		row.Events++
		if rec.LaidOff != nil {
			row.TotalLaidOff += *rec.LaidOff
		}
	}

	out := make([]models.YearRow, 0, len(acc))
	for _, row := range acc {
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Heatmap sums laid-off counts per (year, month) cell, treating unknown
// figures as zero. Cell order is unspecified; consumers index by key.
func Heatmap(records []models.LayoffRecord) []models.HeatmapCell {
	acc := make(map[yearMonth]*models.HeatmapCell)
	var order []yearMonth

	for _, rec := range records {
		date, ok := dates.ParseEventDate(rec.Date)
		if !ok {
			continue
		}
		key := yearMonth{year: date.Year(), month: int(date.Month())}
		cell, exists := acc[key]
		if !exists {
			cell = &models.HeatmapCell{
				Month:     key.month,
				MonthName: dates.MonthAbbrev(date.Month()),
				Year:      key.year,
			}
			acc[key] = cell
			order = append(order, key)
		}
		if rec.LaidOff != nil {
			cell.Value += *rec.LaidOff
		}
	}

	out := make([]models.HeatmapCell, 0, len(order))
	for _, key := range order {
		out = append(out, *acc[key])
	}
	return out
}

// TopCompanies ranks individual records by laid-off count, descending,
// capped at fifteen. Records with an unknown or non-positive count are
// excluded; ties keep input order.
func TopCompanies(records []models.LayoffRecord) []models.LayoffRecord {
	out := make([]models.LayoffRecord, 0, len(records))
	for _, rec := range records {
		if rec.LaidOff != nil && *rec.LaidOff > 0 {
			out = append(out, rec)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].LaidOff > *out[j].LaidOff
	})
	if len(out) > topCompaniesLimit {
		out = out[:topCompaniesLimit]
	}
	return out
}
