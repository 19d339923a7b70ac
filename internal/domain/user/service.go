package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// ErrInvalid wraps every validation failure so handlers can map it to a 400.
var ErrInvalid = errors.New("invalid user")

// CreateUserRequest is the create payload. Location is a pointer so an
// absent object is rejected rather than read as (0,0).
type CreateUserRequest struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Role     string        `json:"role"`
	Location *geo.Location `json:"location"`
	Phone    *string       `json:"phone"`
}

type Service struct {
	users Repository
	now   func() time.Time
}

func NewService(users Repository) *Service {
	return &Service{users: users, now: time.Now}
}

var validRoles = map[string]bool{
	RoleCitizen: true, RoleDoctor: true, RoleClinicStaff: true, RoleGovernment: true,
}

func (s *Service) CreateUser(ctx context.Context, req *CreateUserRequest) (*User, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalid)
	}
	if req.Email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalid)
	}
	if !validRoles[req.Role] {
		return nil, fmt.Errorf("%w: unknown role %q", ErrInvalid, req.Role)
	}
	if req.Location == nil {
		return nil, fmt.Errorf("%w: location is required", ErrInvalid)
	}
	if err := req.Location.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	u := &User{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Role:      req.Role,
		Location:  *req.Location,
		Phone:     req.Phone,
		CreatedAt: s.now().UTC(),
	}

	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context, limit int) ([]*User, error) {
	return s.users.List(ctx, limit)
}
