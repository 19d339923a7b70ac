package doctor

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// ErrInvalid wraps every validation failure so handlers can map it to a 400.
var ErrInvalid = errors.New("invalid doctor")

// CreateDoctorRequest is the create payload. Location is a pointer so an
// absent object is rejected rather than read as (0,0).
type CreateDoctorRequest struct {
	Name           string        `json:"name"`
	Specialization string        `json:"specialization"`
	Location       *geo.Location `json:"location"`
	Phone          string        `json:"phone"`
	Email          string        `json:"email"`
	Availability   string        `json:"availability"`
	ClinicName     *string       `json:"clinic_name"`
}

type Service struct {
	doctors Repository
}

func NewService(doctors Repository) *Service {
	return &Service{doctors: doctors}
}

func (s *Service) CreateDoctor(ctx context.Context, req *CreateDoctorRequest) (*Doctor, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if req.Specialization == "" {
		return nil, fmt.Errorf("%w: specialization is required", ErrInvalid)
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalid)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if req.Availability == "" {
		return nil, fmt.Errorf("%w: availability is required", ErrInvalid)
	}
	if req.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalid)
	}
	if err := req.Location.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	d := &Doctor{
		ID:             uuid.New(),
		Name:           req.Name,
		Specialization: req.Specialization,
		Location:       *req.Location,
		Phone:          req.Phone,
		Email:          req.Email,
		Availability:   req.Availability,
		ClinicName:     req.ClinicName,
	}

	if err := s.doctors.Create(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) ListDoctors(ctx context.Context, limit int) ([]*Doctor, error) {
	return s.doctors.List(ctx, limit)
}
