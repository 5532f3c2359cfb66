package models

// MonthlyPoint is one month on the timeline. Events counts every record in
// the month; Count and TotalLaidOff only reflect records with a known
// laid-off figure.
type MonthlyPoint struct {
	// Month is the display label, e.g. "Jan 2023".
	Month    string `json:"month"`
	Year     int    `json:"year"`
	MonthNum int    `json:"monthNum"`
	// Count is the number of records with a known laid-off figure.
	Count        int `json:"count"`
	TotalLaidOff int `json:"totalLaidOff"`
	// Events is the number of records in the month, known figure or not.
	Events int `json:"events"`
}

// IndustryRow is one industry in the industry rollup.
type IndustryRow struct {
	Industry     string `json:"industry"`
	TotalLaidOff int    `json:"totalLaidOff"`
	Events       int    `json:"events"`
}

// CountryRow is one country in the country rollup.
type CountryRow struct {
	Country      string `json:"country"`
	TotalLaidOff int    `json:"totalLaidOff"`
	Events       int    `json:"events"`
}

// StageRow is one funding stage in the stage rollup.
type StageRow struct {
	Stage        string `json:"stage"`
	Events       int    `json:"events"`
	TotalLaidOff int    `json:"totalLaidOff"`
}

// YearRow is one calendar year in the yearly rollup.
type YearRow struct {
	Year         int `json:"year"`
	TotalLaidOff int `json:"totalLaidOff"`
	Events       int `json:"events"`
}

// HeatmapCell is one (year, month) cell. Value sums laid-off counts,
// treating unknown figures as zero for display purposes.
type HeatmapCell struct {
	Month     int    `json:"month"`
	MonthName string `json:"monthName"`
	Year      int    `json:"year"`
	Value     int    `json:"value"`
}

// KPISummary holds the headline scalars for the current filter.
type KPISummary struct {
	TotalLaidOff int `json:"totalLaidOff"`
	// TotalEvents is the size of the filtered subset.
	TotalEvents int `json:"totalEvents"`
	// AverageSize is the mean laid-off count over records with a positive
	// figure, rounded; zero when no such records exist.
	AverageSize    int    `json:"averageSize"`
	LargestLayoff  int    `json:"largestLayoff"`
	LargestCompany string `json:"largestCompany"`
	// TopIndustry is the most frequent industry, excluding "Other".
	TopIndustry      string `json:"topIndustry"`
	TopIndustryCount int    `json:"topIndustryCount"`
	// DateRange is a label like "Jan 2022 - Dec 2025", empty when the
	// subset has no parseable dates.
	DateRange string `json:"dateRange"`
}

// TrendDeltas compares the two most recent years in the subset. A nil delta
// means no signal: fewer than two years of data, or a zero prior value.
type TrendDeltas struct {
	TotalLaidOffChange *int `json:"totalLaidOffChange"`
	EventsChange       *int `json:"eventsChange"`
	AverageSizeChange  *int `json:"averageSizeChange"`
}

// AIStats summarizes AI-attributed events within the subset.
type AIStats struct {
	Events       int `json:"events"`
	TotalLaidOff int `json:"totalLaidOff"`
	// ShareOfEvents is the AI-attributed share of the subset in whole
	// percent, zero for an empty subset.
	ShareOfEvents int `json:"shareOfEvents"`
}
