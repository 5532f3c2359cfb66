// Package models contains the persistence model for the layoff corpus,
// configured to work using GORM as the ORM.
package models

import (
	"time"

	"github.com/dkravets/layoffpulse/internal/layoffs/models"
	"github.com/google/uuid"
)

// LayoffRecord is one corpus row. Position preserves the original corpus
// order: enrichment tie-breaks and top-N stability depend on records coming
// back in exactly the order they were loaded.
type LayoffRecord struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position     int       `gorm:"index"`
	Company      string    `gorm:"size:120;index"`
	LocationHQ   string    `gorm:"size:120"`
	LaidOff      *int
	EventDate    string `gorm:"size:24"`
	Percentage   *float64
	Industry     string `gorm:"size:80;index"`
	Source       string `gorm:"size:500"`
	Stage        string `gorm:"size:40"`
	RaisedMM     *float64
	Country      string `gorm:"size:80;index"`
	DateAdded    string `gorm:"size:24"`
	Division     string `gorm:"size:200"`
	AIRelated    bool
	EstEmployees *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// FromDomain converts a domain record to its persistence row, assigning a
// fresh ID and the given corpus position.
func FromDomain(rec models.LayoffRecord, position int) LayoffRecord {
	return LayoffRecord{
		ID:           uuid.New(),
		Position:     position,
		Company:      rec.Company,
		LocationHQ:   rec.LocationHQ,
		LaidOff:      rec.LaidOff,
		EventDate:    rec.Date,
		Percentage:   rec.Percentage,
		Industry:     rec.Industry,
		Source:       rec.Source,
		Stage:        rec.Stage,
		RaisedMM:     rec.RaisedMM,
		Country:      rec.Country,
		DateAdded:    rec.DateAdded,
		Division:     rec.Division,
		AIRelated:    rec.AIRelated,
		EstEmployees: rec.EstEmployees,
	}
}

// ToDomain converts a persistence row back to the domain record.
func (r LayoffRecord) ToDomain() models.LayoffRecord {
	return models.LayoffRecord{
		Company:      r.Company,
		LocationHQ:   r.LocationHQ,
		LaidOff:      r.LaidOff,
		Date:         r.EventDate,
		Percentage:   r.Percentage,
		Industry:     r.Industry,
		Source:       r.Source,
		Stage:        r.Stage,
		RaisedMM:     r.RaisedMM,
		Country:      r.Country,
		DateAdded:    r.DateAdded,
		Division:     r.Division,
		AIRelated:    r.AIRelated,
		EstEmployees: r.EstEmployees,
	}
}
