// Package report implements submission and retrieval of health incident
// reports from field users. Reports are append-only: once created they are
// never updated or deleted.
package report

import (
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// Report types.
const (
	TypeDisease      = "disease"
	TypeWaterQuality = "water_quality"
	TypeComplaint    = "complaint"
)

// Severity levels.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Report statuses.
const (
	StatusActive             = "active"
	StatusResolved           = "resolved"
	StatusUnderInvestigation = "under_investigation"
)

// HealthReport maps to the health_reports table.
//
// ReporterID is derived server-side: a fresh UUID for anonymous reports,
// otherwise the reporter's name. Status defaults to "active"; the other two
// statuses exist in the data model but no endpoint mutates them.
type HealthReport struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	ReporterID     string       `db:"reporter_id" json:"reporter_id"`
	ReporterName   string       `db:"reporter_name" json:"reporter_name"`
	ReportType     string       `db:"report_type" json:"report_type"`
	Symptoms       string       `db:"symptoms" json:"symptoms"`
	Severity       string       `db:"severity" json:"severity"`
	Location       geo.Location `db:"location" json:"location"`
	DateReported   time.Time    `db:"date_reported" json:"date_reported"`
	Status         string       `db:"status" json:"status"`
	IsAnonymous    bool         `db:"is_anonymous" json:"is_anonymous"`
	AdditionalInfo *string      `db:"additional_info" json:"additional_info,omitempty"`
}
