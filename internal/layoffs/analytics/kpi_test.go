package analytics

import (
	"testing"

	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/dkravets/layoffpulse/internal/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_SingleEvent(t *testing.T) {
	records := []models.LayoffRecord{
		{Company: "Acme", Industry: "Tech", Country: "USA", Date: "1/15/2023", LaidOff: utils.Ptr(100)},
	}

	got := Summarize(records)
	assert.Equal(t, 100, got.TotalLaidOff)
	assert.Equal(t, 1, got.TotalEvents)
	assert.Equal(t, 100, got.AverageSize)
	assert.Equal(t, 100, got.LargestLayoff)
	assert.Equal(t, "Acme", got.LargestCompany)
	assert.Equal(t, "Tech", got.TopIndustry)
	assert.Equal(t, "Jan 2023 - Jan 2023", got.DateRange)
}

func TestSummarize(t *testing.T) {
	records := []models.LayoffRecord{
		{Company: "A", Industry: "Retail", Date: "1/1/2022", LaidOff: utils.Ptr(100)},
		{Company: "B", Industry: "Retail", Date: "6/1/2023", LaidOff: utils.Ptr(300)},
		{Company: "C", Industry: "Finance", Date: "12/1/2025", LaidOff: utils.Ptr(200)},
		{Company: "D", Industry: "Other", Date: "3/1/2024"},             // no count, excluded from sums
		{Company: "E", Industry: "Other", Date: "3/2/2024", LaidOff: utils.Ptr(0)}, // zero excluded too
	}

	got := Summarize(records)
	assert.Equal(t, 600, got.TotalLaidOff)
	assert.Equal(t, 5, got.TotalEvents)
	assert.Equal(t, 200, got.AverageSize)
	assert.Equal(t, 300, got.LargestLayoff)
	assert.Equal(t, "B", got.LargestCompany)
	// "Other" never wins top industry even though it appears twice.
	assert.Equal(t, "Retail", got.TopIndustry)
	assert.Equal(t, 2, got.TopIndustryCount)
	assert.Equal(t, "Jan 2022 - Dec 2025", got.DateRange)
}

func TestSummarize_TiesGoToFirstEncountered(t *testing.T) {
	records := []models.LayoffRecord{
		{Company: "First", Industry: "Media", Date: "1/1/2023", LaidOff: utils.Ptr(500)},
		{Company: "Second", Industry: "Crypto", Date: "2/1/2023", LaidOff: utils.Ptr(500)},
		{Company: "Third", Industry: "Crypto", Date: "3/1/2023", LaidOff: utils.Ptr(1)},
		{Company: "Fourth", Industry: "Media", Date: "4/1/2023", LaidOff: utils.Ptr(1)},
	}

	got := Summarize(records)
	assert.Equal(t, "First", got.LargestCompany)
	// Media and Crypto both have two events; Media was seen first.
	assert.Equal(t, "Media", got.TopIndustry)
}

func TestSummarize_Empty(t *testing.T) {
	got := Summarize(nil)
	assert.Equal(t, 0, got.TotalEvents)
	assert.Equal(t, 0, got.AverageSize)
	assert.Equal(t, "", got.LargestCompany)
	assert.Equal(t, "", got.TopIndustry)
	assert.Equal(t, "", got.DateRange)
}

func TestTrends(t *testing.T) {
	records := []models.LayoffRecord{
		{Company: "A", Date: "5/1/2023", LaidOff: utils.Ptr(100)},
		{Company: "B", Date: "7/1/2024", LaidOff: utils.Ptr(300)},
	}

	got := Trends(records)
	require.NotNil(t, got.TotalLaidOffChange)
	assert.Equal(t, 200, *got.TotalLaidOffChange)
	require.NotNil(t, got.EventsChange)
	assert.Equal(t, 0, *got.EventsChange)
	require.NotNil(t, got.AverageSizeChange)
	assert.Equal(t, 200, *got.AverageSizeChange)
}

func TestTrends_NonConsecutiveYears(t *testing.T) {
	// 2021 and 2025 are the two most recent years present; the gap between
	// them does not matter.
	records := []models.LayoffRecord{
		{Company: "A", Date: "5/1/2021", LaidOff: utils.Ptr(200)},
		{Company: "B", Date: "7/1/2025", LaidOff: utils.Ptr(100)},
	}

	got := Trends(records)
	require.NotNil(t, got.TotalLaidOffChange)
	assert.Equal(t, -50, *got.TotalLaidOffChange)
}

func TestTrends_NullSafety(t *testing.T) {
	tests := []struct {
		name    string
		records []models.LayoffRecord
	}{
		{name: "empty subset"},
		{name: "single year", records: []models.LayoffRecord{
			{Company: "A", Date: "1/1/2023", LaidOff: utils.Ptr(100)},
			{Company: "B", Date: "6/1/2023", LaidOff: utils.Ptr(50)},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Trends(tt.records)
			assert.Nil(t, got.TotalLaidOffChange)
			assert.Nil(t, got.EventsChange)
			assert.Nil(t, got.AverageSizeChange)
		})
	}
}

func TestTrends_ZeroPriorYieldsNilDelta(t *testing.T) {
	// The prior year has events but no laid-off counts, so the laid-off and
	// average deltas are undefined while the event delta still computes.
	records := []models.LayoffRecord{
		{Company: "A", Date: "1/1/2023"},
		{Company: "B", Date: "1/1/2024", LaidOff: utils.Ptr(100)},
	}

	got := Trends(records)
	assert.Nil(t, got.TotalLaidOffChange)
	assert.Nil(t, got.AverageSizeChange)
	require.NotNil(t, got.EventsChange)
	assert.Equal(t, 0, *got.EventsChange)
}

func TestAISummary(t *testing.T) {
	records := []models.LayoffRecord{
		{Company: "A", Date: "1/1/2024", LaidOff: utils.Ptr(100), AIRelated: true},
		{Company: "B", Date: "2/1/2024", LaidOff: utils.Ptr(50)},
		{Company: "C", Date: "3/1/2024", AIRelated: true},
	}

	got := AISummary(records)
	assert.Equal(t, 2, got.Events)
	assert.Equal(t, 100, got.TotalLaidOff)
	assert.Equal(t, 67, got.ShareOfEvents)

	assert.Equal(t, models.AIStats{}, AISummary(nil))
}
