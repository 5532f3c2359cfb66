package models

// CompanyFinancials is one row of the curated revenue dataset.
// RevenuePerEmployee is pre-computed from public filings.
type CompanyFinancials struct {
	Company            string `json:"company"`
	Sector             string `json:"sector"`
	RevenueMillions    int    `json:"revenueMillions"`
	EmployeeCount      int    `json:"employeeCount"`
	RevenuePerEmployee int    `json:"revenuePerEmployee"`
}

// EfficiencyMetric contrasts capital-efficient and labor-intensive companies.
type EfficiencyMetric struct {
	Company            string `json:"company"`
	Sector             string `json:"sector"`
	RevenuePerEmployee int    `json:"revenuePerEmployee"`
	// JobsPerBillionRevenue is employees per $1B of revenue, zero when the
	// company reports no revenue.
	JobsPerBillionRevenue int `json:"jobsPerBillionRevenue"`
	// NetAdded is the net headcount change attributable to tracked layoffs
	// across the full corpus (negative when layoffs were recorded).
	// Context only; it does not feed the ratios.
	NetAdded        int `json:"netAdded"`
	RevenueMillions int `json:"revenueMillions"`
	EmployeeCount   int `json:"employeeCount"`
}

// WorkforceImpactRow expresses a company's cumulative tracked layoffs as a
// share of its estimated total workforce.
type WorkforceImpactRow struct {
	Company        string  `json:"company"`
	TotalLaidOff   int     `json:"totalLaidOff"`
	EstEmployees   int     `json:"estEmployees"`
	PctOfWorkforce float64 `json:"pctOfWorkforce"`
}

// HeadcountYear is one year of a company's headcount history.
type HeadcountYear struct {
	Year  int `json:"year"`
	Count int `json:"count"`
	// YoYChangePercent is nil for the first tracked year.
	YoYChangePercent *float64 `json:"yoyChangePercent,omitempty"`
}

// CompanyHistory is a company's multi-year headcount trajectory.
type CompanyHistory struct {
	Company   string          `json:"company"`
	Sector    string          `json:"sector"`
	Headcount []HeadcountYear `json:"headcount"`
}

// Headline is one entry of the curated press ticker.
type Headline struct {
	Text    string `json:"text"`
	Source  string `json:"source"`
	Company string `json:"company"`
	Date    string `json:"date"`
	// Type is one of "quote", "headline" or "stat".
	Type string `json:"type"`
}
