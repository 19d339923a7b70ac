package water

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// ErrInvalid wraps every validation failure so handlers can map it to a 400.
var ErrInvalid = errors.New("invalid water quality data")

// CreateReadingRequest is the create payload. The measurements and location
// are pointers so an absent field is rejected instead of being read as zero
// and classified from it.
type CreateReadingRequest struct {
	Location      *geo.Location `json:"location"`
	TDSValue      *float64      `json:"tds_value"`
	PHLevel       *float64      `json:"ph_level"`
	Turbidity     *float64      `json:"turbidity"`
	ChlorineLevel *float64      `json:"chlorine_level"`
	TestedBy      string        `json:"tested_by"`
}

type Service struct {
	readings Repository
	now      func() time.Time
}

func NewService(readings Repository) *Service {
	return &Service{readings: readings, now: time.Now}
}

// CreateReading classifies the measured values, stamps the reading, and
// persists it. The status is computed here once and never recomputed.
func (s *Service) CreateReading(ctx context.Context, req *CreateReadingRequest) (*QualityData, error) {
	if req.TestedBy == "" {
		return nil, fmt.Errorf("%w: tested_by is required", ErrInvalid)
	}
	if req.TDSValue == nil {
		return nil, fmt.Errorf("%w: tds_value is required", ErrInvalid)
	}
	if req.PHLevel == nil {
		return nil, fmt.Errorf("%w: ph_level is required", ErrInvalid)
	}
	if req.Turbidity == nil {
		return nil, fmt.Errorf("%w: turbidity is required", ErrInvalid)
	}
	if req.ChlorineLevel == nil {
		return nil, fmt.Errorf("%w: chlorine_level is required", ErrInvalid)
	}
	if req.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalid)
	}
	if err := req.Location.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	q := &QualityData{
		ID:            uuid.New(),
		Location:      *req.Location,
		TDSValue:      *req.TDSValue,
		PHLevel:       *req.PHLevel,
		Turbidity:     *req.Turbidity,
		ChlorineLevel: *req.ChlorineLevel,
		Status:        Classify(*req.TDSValue, *req.PHLevel, *req.Turbidity, *req.ChlorineLevel),
		TestedBy:      req.TestedBy,
		TestDate:      s.now().UTC(),
	}

	if err := s.readings.Create(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *Service) ListReadings(ctx context.Context, limit int) ([]*QualityData, error) {
	return s.readings.List(ctx, limit)
}
