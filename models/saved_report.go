package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SavedReport is a named report configuration the user can restore later
type SavedReport struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string         `json:"name" gorm:"not null"`                // Duplicate names are allowed
	StartDate string         `json:"-" gorm:"column:start_date;not null"` // YYYY-MM-DD
	EndDate   string         `json:"-" gorm:"column:end_date;not null"`   // YYYY-MM-DD
	Metrics   datatypes.JSON `json:"-" gorm:"column:metrics"`             // Criteria saved from the report generator
	SavedAt   time.Time      `json:"saved_at" gorm:"not null;index"`
}

// BeforeCreate hook - auto-generate UUID v7
func (r *SavedReport) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (SavedReport) TableName() string {
	return "saved_reports"
}

func (r SavedReport) DateRange() DateRange {
	return DateRange{Start: r.StartDate, End: r.EndDate}
}

// MetricIDs decodes the stored criteria; nil when the report was saved without any
func (r SavedReport) MetricIDs() []MetricID {
	if len(r.Metrics) == 0 {
		return nil
	}
	var ids []MetricID
	if err := json.Unmarshal(r.Metrics, &ids); err != nil {
		return nil
	}
	return ids
}

// EncodeMetrics converts criteria to the JSON column value
func EncodeMetrics(ids []MetricID) datatypes.JSON {
	if len(ids) == 0 {
		return nil
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}

// ════════════════════════════════════════════════════════════
// Request/Response Models
// ════════════════════════════════════════════════════════════

type SavedReportResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	DateRange DateRange  `json:"date_range"`
	Metrics   []MetricID `json:"metrics,omitempty"`
	SavedAt   time.Time  `json:"saved_at"`
}

func (r SavedReport) ToResponse() SavedReportResponse {
	return SavedReportResponse{
		ID:        r.ID.String(),
		Name:      r.Name,
		DateRange: r.DateRange(),
		Metrics:   r.MetricIDs(),
		SavedAt:   r.SavedAt,
	}
}

// SaveReportRequest saves the current (or given) date range under a name
type SaveReportRequest struct {
	Name      string     `json:"name" binding:"required"`
	DateRange *DateRange `json:"date_range,omitempty"`
}

// SaveCustomReportRequest saves a report generator configuration
type SaveCustomReportRequest struct {
	Name    string   `json:"name" binding:"required"`
	Metrics []string `json:"metrics"`
}
