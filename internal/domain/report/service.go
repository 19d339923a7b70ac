package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// ErrInvalid wraps every validation failure so handlers can map it to a 400
// without inspecting message text.
var ErrInvalid = errors.New("invalid report")

// CreateReportRequest is the create payload. Location is a pointer so an
// absent object is distinguishable from one at (0,0); server-owned fields
// (id, reporter_id, date_reported, status) are not accepted at all.
type CreateReportRequest struct {
	ReporterName   string        `json:"reporter_name"`
	ReportType     string        `json:"report_type"`
	Symptoms       string        `json:"symptoms"`
	Severity       string        `json:"severity"`
	Location       *geo.Location `json:"location"`
	IsAnonymous    bool          `json:"is_anonymous"`
	AdditionalInfo *string       `json:"additional_info"`
}

type Service struct {
	reports Repository
	now     func() time.Time
}

func NewService(reports Repository) *Service {
	return &Service{reports: reports, now: time.Now}
}

var validReportTypes = map[string]bool{
	TypeDisease: true, TypeWaterQuality: true, TypeComplaint: true,
}

var validSeverities = map[string]bool{
	SeverityLow: true, SeverityMedium: true, SeverityHigh: true, SeverityCritical: true,
}

// CreateReport validates the submission, derives the reporter identifier,
// stamps the record, and persists it.
func (s *Service) CreateReport(ctx context.Context, req *CreateReportRequest) (*HealthReport, error) {
	if req.ReporterName == "" {
		return nil, fmt.Errorf("%w: reporter_name is required", ErrInvalid)
	}
	if !validReportTypes[req.ReportType] {
		return nil, fmt.Errorf("%w: unknown report_type %q", ErrInvalid, req.ReportType)
	}
	if req.Symptoms == "" {
		return nil, fmt.Errorf("%w: symptoms is required", ErrInvalid)
	}
	if !validSeverities[req.Severity] {
		return nil, fmt.Errorf("%w: unknown severity %q", ErrInvalid, req.Severity)
	}
	if req.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalid)
	}
	if err := req.Location.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	r := &HealthReport{
		ID:             uuid.New(),
		ReporterName:   req.ReporterName,
		ReportType:     req.ReportType,
		Symptoms:       req.Symptoms,
		Severity:       req.Severity,
		Location:       *req.Location,
		DateReported:   s.now().UTC(),
		Status:         StatusActive,
		IsAnonymous:    req.IsAnonymous,
		AdditionalInfo: req.AdditionalInfo,
	}
	if req.IsAnonymous {
		r.ReporterID = uuid.NewString()
	} else {
		r.ReporterID = req.ReporterName
	}

	if err := s.reports.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *Service) GetReport(ctx context.Context, id uuid.UUID) (*HealthReport, error) {
	return s.reports.GetByID(ctx, id)
}

func (s *Service) ListReports(ctx context.Context, limit int) ([]*HealthReport, error) {
	return s.reports.List(ctx, limit)
}
