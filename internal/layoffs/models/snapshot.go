package models

// DashboardSnapshot bundles every derived view for one filter, the unit the
// dashboard renders. It is recomputed from scratch on every request; nothing
// in it is persisted.
type DashboardSnapshot struct {
	Criteria     FilterCriteria `json:"criteria"`
	KPIs         KPISummary     `json:"kpis"`
	AI           AIStats        `json:"ai"`
	Trends       TrendDeltas    `json:"trends"`
	Monthly      []MonthlyPoint `json:"monthly"`
	Industries   []IndustryRow  `json:"industries"`
	Countries    []CountryRow   `json:"countries"`
	Stages       []StageRow     `json:"stages"`
	Years        []YearRow      `json:"years"`
	Heatmap      []HeatmapCell  `json:"heatmap"`
	TopCompanies []LayoffRecord `json:"topCompanies"`
}
