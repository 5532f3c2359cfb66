// Package models defines the domain types for the layoff analytics pipeline:
// the base record, the enrichment tables, the filter criteria, and the
// aggregate rows the dashboard consumes.
package models

// LayoffRecord is one reported workforce-reduction event. Numeric fields that
// may be absent in the source corpus are pointers so that "zero reported"
// stays distinguishable from "unknown".
type LayoffRecord struct {
	// Company is the reporting company's name. Never empty.
	Company string `json:"company"`
	// LocationHQ is the company's headquarters location.
	LocationHQ string `json:"locationHQ"`
	// LaidOff is the reported number of people let go, nil when unknown.
	LaidOff *int `json:"laidOff"`
	// Date is the event date in M/D/YYYY form. May be malformed; consumers
	// must go through dates.ParseEventDate.
	Date string `json:"date"`
	// Percentage is the reported workforce-reduction percentage, nil when
	// not reported. Enrichment derives it from LaidOff and EstEmployees.
	Percentage *float64 `json:"percentage"`
	// Industry is the company's industry label, possibly empty.
	Industry string `json:"industry"`
	// Source cites the reporting article.
	Source string `json:"source"`
	// Stage is the company's funding stage, "Unknown" when absent.
	Stage string `json:"stage"`
	// RaisedMM is the total raised in millions of dollars, nil when unknown.
	RaisedMM *float64 `json:"raisedMM"`
	// Country is the company's country.
	Country string `json:"country"`
	// DateAdded records when the event entered the corpus.
	DateAdded string `json:"dateAdded"`
	// Division is the affected business unit, filled by enrichment.
	Division string `json:"division,omitempty"`
	// AIRelated marks events attributed to AI adoption in reporting.
	AIRelated bool `json:"aiRelated,omitempty"`
	// EstEmployees is the estimated total workforce, filled by enrichment.
	EstEmployees *int `json:"estEmployees,omitempty"`
}

// FilterCriteria narrows the enriched corpus before aggregation. The zero
// value of the optional fields means "no restriction".
type FilterCriteria struct {
	// MinYear and MaxYear bound the event year, inclusive. Records whose
	// date does not parse fail the bound check and are excluded.
	MinYear int `json:"minYear"`
	MaxYear int `json:"maxYear"`
	// Industry, when non-empty, must match the record's industry exactly.
	Industry string `json:"industry"`
	// Country, when non-empty, must match the record's country exactly.
	Country string `json:"country"`
	// Search is a case-insensitive substring over company, HQ and industry.
	Search string `json:"search"`
}

// DivisionOverride annotates a record matched by company|date with a division
// label and, optionally, an explicit AI-attribution flag.
type DivisionOverride struct {
	Division  string
	AIRelated *bool
}

// AIPattern marks records of a company as AI-related, optionally only on or
// after a threshold date (M/D/YYYY). A pattern can only set the flag, never
// clear it.
type AIPattern struct {
	Company   string
	DateAfter string
}
