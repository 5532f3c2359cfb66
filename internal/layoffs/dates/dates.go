// Package dates parses the M/D/YYYY event dates used throughout the layoff
// corpus. Parsing never fails hard: malformed input yields ok=false and the
// caller skips the record in time-keyed views.
package dates

import (
	"strconv"
	"strings"
	"time"
)

// monthAbbrevs indexes 1-based calendar months.
var monthAbbrevs = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// fallbackLayouts are tried, in order, when the input is not M/D/YYYY.
var fallbackLayouts = []string{
	"2006-01-02",
	"January 2, 2006",
	"Jan 2, 2006",
	"2006/01/02",
}

// ParseEventDate parses a date string in M/D/YYYY form, falling back to a
// handful of generic layouts. The second return value is false when the
// string is unparseable; the zero time it returns then must not be used.
func ParseEventDate(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) == 3 {
		month, errM := strconv.Atoi(parts[0])
		day, errD := strconv.Atoi(parts[1])
		year, errY := strconv.Atoi(parts[2])
		if errM == nil && errD == nil && errY == nil &&
			month >= 1 && month <= 12 && day >= 1 && day <= 31 && year > 0 {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
		}
		return time.Time{}, false
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// MonthAbbrev returns the three-letter label for a 1-based month.
func MonthAbbrev(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthAbbrevs[m]
}

// SpanLabel formats an inclusive date span as "Jan 2022 - Dec 2025".
func SpanLabel(from, to time.Time) string {
	return MonthAbbrev(from.Month()) + " " + strconv.Itoa(from.Year()) +
		" - " + MonthAbbrev(to.Month()) + " " + strconv.Itoa(to.Year())
}
