package analytics

import (
	"math"
	"time"

	"github.com/dkravets/layoffpulse/internal/layoffs/dates"
	"github.com/dkravets/layoffpulse/internal/layoffs/models"
)

// Summarize computes the headline scalars over the filtered subset. Sums and
// averages only consider records with a positive laid-off count; the event
// total counts every record. Ties on the largest event and the top industry
// go to the first record encountered.
func Summarize(records []models.LayoffRecord) models.KPISummary {
	summary := models.KPISummary{TotalEvents: len(records)}

	withCount := 0
	for _, rec := range records {
		if rec.LaidOff == nil || *rec.LaidOff <= 0 {
			continue
		}
		withCount++
		summary.TotalLaidOff += *rec.LaidOff
		if *rec.LaidOff > summary.LargestLayoff {
			summary.LargestLayoff = *rec.LaidOff
			summary.LargestCompany = rec.Company
		}
	}
	if withCount > 0 {
		summary.AverageSize = int(math.Round(float64(summary.TotalLaidOff) / float64(withCount)))
	}

	summary.TopIndustry, summary.TopIndustryCount = topIndustry(records)
	summary.DateRange = dateRangeLabel(records)
	return summary
}

// topIndustry finds the most frequent industry, excluding the "Other"
// placeholder. Selection walks industries in first-encountered order with a
// strict comparison, so ties resolve to the earliest one.
func topIndustry(records []models.LayoffRecord) (string, int) {
	counts := make(map[string]int)
	var order []string
	for _, rec := range records {
		if rec.Industry == "" || rec.Industry == "Other" {
			continue
		}
		if _, seen := counts[rec.Industry]; !seen {
			order = append(order, rec.Industry)
		}
		counts[rec.Industry]++
	}

	top, topCount := "", 0
	for _, industry := range order {
		if counts[industry] > topCount {
			top, topCount = industry, counts[industry]
		}
	}
	return top, topCount
}

func dateRangeLabel(records []models.LayoffRecord) string {
	var earliest, latest time.Time
	found := false
	for _, rec := range records {
		date, ok := dates.ParseEventDate(rec.Date)
		if !ok {
			continue
		}
		if !found {
			earliest, latest = date, date
			found = true
			continue
		}
		if date.Before(earliest) {
			earliest = date
		}
		if date.After(latest) {
			latest = date
		}
	}
	if !found {
		return ""
	}
	return dates.SpanLabel(earliest, latest)
}

// yearBucket accumulates one year's worth of trend inputs.
type yearBucket struct {
	events       int
	totalLaidOff int
	withCount    int
}

// Trends compares the two most recent years present in the subset (by year
// value, not necessarily consecutive) and returns percent deltas for total
// laid off, event count, and average event size. A delta is nil when fewer
// than two years of data exist or the prior value is zero, so no division by
// zero ever leaks out.
func Trends(records []models.LayoffRecord) models.TrendDeltas {
	buckets := make(map[int]*yearBucket)
	var years []int

	for _, rec := range records {
		date, ok := dates.ParseEventDate(rec.Date)
		if !ok {
			continue
		}
		year := date.Year()
		bucket, exists := buckets[year]
		if !exists {
			bucket = &yearBucket{}
			buckets[year] = bucket
			years = append(years, year)
		}
		bucket.events++
		if rec.LaidOff != nil && *rec.LaidOff > 0 {
			bucket.totalLaidOff += *rec.LaidOff
			bucket.withCount++
		}
	}

	if len(years) < 2 {
		return models.TrendDeltas{}
	}

	latest, prior := years[0], years[0]
	for _, y := range years {
		if y > latest {
			latest = y
		}
	}
	prior = math.MinInt
	for _, y := range years {
		if y != latest && y > prior {
			prior = y
		}
	}

	current, previous := buckets[latest], buckets[prior]
	return models.TrendDeltas{
		TotalLaidOffChange: percentChange(current.totalLaidOff, previous.totalLaidOff),
		EventsChange:       percentChange(current.events, previous.events),
		AverageSizeChange:  percentChange(average(current), average(previous)),
	}
}

func average(b *yearBucket) int {
	if b.withCount == 0 {
		return 0
	}
	return int(math.Round(float64(b.totalLaidOff) / float64(b.withCount)))
}

func percentChange(current, prior int) *int {
	if prior == 0 {
		return nil
	}
	change := int(math.Round(float64(current-prior) / float64(prior) * 100))
	return &change
}

// AISummary counts the subset's AI-attributed events, their laid-off sum,
// and their share of the subset in whole percent.
func AISummary(records []models.LayoffRecord) models.AIStats {
	var stats models.AIStats
	for _, rec := range records {
		if !rec.AIRelated {
			continue
		}
		stats.Events++
		if rec.LaidOff != nil {
			stats.TotalLaidOff += *rec.LaidOff
		}
	}
	if len(records) > 0 {
		stats.ShareOfEvents = int(math.Round(float64(stats.Events) / float64(len(records)) * 100))
	}
	return stats
}
