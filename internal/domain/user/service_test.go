package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

type mockUserRepo struct {
	items []*User
}

func (m *mockUserRepo) Create(_ context.Context, u *User) error {
	cp := *u
	m.items = append(m.items, &cp)
	return nil
}

func (m *mockUserRepo) List(_ context.Context, limit int) ([]*User, error) {
	// Newest first, matching the created_at ordering of the real store.
	out := make([]*User, 0, len(m.items))
	for i := len(m.items) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.items[i])
	}
	return out, nil
}

func validUser() *CreateUserRequest {
	return &CreateUserRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.org",
		Role:     RoleCitizen,
		Location: &geo.Location{Lat: 17.38, Lng: 78.48, Address: "Shamirpet"},
	}
}

func TestCreateUserStampsFields(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewService(repo)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	u, err := svc.CreateUser(context.Background(), validUser())
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if !u.CreatedAt.Equal(fixed) {
		t.Errorf("created_at = %v, want %v", u.CreatedAt, fixed)
	}
}

func TestCreateUserRoles(t *testing.T) {
	for _, role := range []string{RoleCitizen, RoleDoctor, RoleClinicStaff, RoleGovernment} {
		t.Run(role, func(t *testing.T) {
			svc := NewService(&mockUserRepo{})
			req := validUser()
			req.Role = role
			if _, err := svc.CreateUser(context.Background(), req); err != nil {
				t.Errorf("role %q rejected: %v", role, err)
			}
		})
	}
}

func TestCreateUserValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateUserRequest)
	}{
		{"missing name", func(r *CreateUserRequest) { r.Name = "" }},
		{"missing email", func(r *CreateUserRequest) { r.Email = "" }},
		{"unknown role", func(r *CreateUserRequest) { r.Role = "admin" }},
		{"empty role", func(r *CreateUserRequest) { r.Role = "" }},
		{"missing location", func(r *CreateUserRequest) { r.Location = nil }},
		{"latitude out of range", func(r *CreateUserRequest) { r.Location.Lat = -95 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{}
			svc := NewService(repo)
			req := validUser()
			tt.mutate(req)
			_, err := svc.CreateUser(context.Background(), req)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if len(repo.items) != 0 {
				t.Error("invalid user must not be persisted")
			}
		})
	}
}

func TestListUsersNewestFirst(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewService(repo)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		tick := base.Add(time.Duration(i) * time.Hour)
		svc.now = func() time.Time { return tick }
		if _, err := svc.CreateUser(context.Background(), validUser()); err != nil {
			t.Fatalf("CreateUser: %v", err)
		}
	}

	items, err := svc.ListUsers(context.Background(), 10)
	if err != nil {
		t.Fatalf("ListUsers: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 users, got %d", len(items))
	}
	if !items[0].CreatedAt.After(items[2].CreatedAt) {
		t.Error("expected newest user first")
	}
}
