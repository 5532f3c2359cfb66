package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantOK   bool
		wantYear int
		wantMon  time.Month
		wantDay  int
	}{
		{name: "plain M/D/YYYY", input: "1/15/2023", wantOK: true, wantYear: 2023, wantMon: time.January, wantDay: 15},
		{name: "two digit month and day", input: "12/31/2025", wantOK: true, wantYear: 2025, wantMon: time.December, wantDay: 31},
		{name: "iso fallback", input: "2024-06-01", wantOK: true, wantYear: 2024, wantMon: time.June, wantDay: 1},
		{name: "long month fallback", input: "March 5, 2023", wantOK: true, wantYear: 2023, wantMon: time.March, wantDay: 5},
		{name: "garbage", input: "not-a-date", wantOK: false},
		{name: "empty", input: "", wantOK: false},
		{name: "month out of range", input: "13/1/2023", wantOK: false},
		{name: "day out of range", input: "1/32/2023", wantOK: false},
		{name: "non numeric parts", input: "a/b/c", wantOK: false},
		{name: "two parts", input: "1/2023", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEventDate(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if !tt.wantOK {
				return
			}
			assert.Equal(t, tt.wantYear, got.Year())
			assert.Equal(t, tt.wantMon, got.Month())
			assert.Equal(t, tt.wantDay, got.Day())
		})
	}
}

func TestMonthAbbrev(t *testing.T) {
	assert.Equal(t, "Jan", MonthAbbrev(time.January))
	assert.Equal(t, "Dec", MonthAbbrev(time.December))
	assert.Equal(t, "", MonthAbbrev(time.Month(0)))
	assert.Equal(t, "", MonthAbbrev(time.Month(13)))
}

func TestSpanLabel(t *testing.T) {
	from, ok := ParseEventDate("1/5/2022")
	require.True(t, ok)
	to, ok := ParseEventDate("12/20/2025")
	require.True(t, ok)

	assert.Equal(t, "Jan 2022 - Dec 2025", SpanLabel(from, to))
}
