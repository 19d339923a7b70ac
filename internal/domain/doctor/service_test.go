package doctor

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

type mockDoctorRepo struct {
	items []*Doctor
}

func (m *mockDoctorRepo) Create(_ context.Context, d *Doctor) error {
	cp := *d
	m.items = append(m.items, &cp)
	return nil
}

func (m *mockDoctorRepo) List(_ context.Context, limit int) ([]*Doctor, error) {
	if limit > len(m.items) {
		limit = len(m.items)
	}
	return m.items[:limit], nil
}

func (m *mockDoctorRepo) Count(_ context.Context) (int, error) {
	return len(m.items), nil
}

func validDoctor() *CreateDoctorRequest {
	return &CreateDoctorRequest{
		Name:           "Dr. Asha Rao",
		Specialization: "General Medicine",
		Location:       &geo.Location{Lat: 17.38, Lng: 78.48, Address: "PHC Shamirpet"},
		Phone:          "+91-9000000001",
		Email:          "asha.rao@example.org",
		Availability:   "9AM-6PM",
	}
}

func TestCreateDoctorAssignsID(t *testing.T) {
	repo := &mockDoctorRepo{}
	svc := NewService(repo)

	d, err := svc.CreateDoctor(context.Background(), validDoctor())
	if err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}
	if d.ID == uuid.Nil {
		t.Error("expected a generated id")
	}
	if len(repo.items) != 1 {
		t.Fatalf("expected 1 stored doctor, got %d", len(repo.items))
	}
}

func TestCreateDoctorValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateDoctorRequest)
	}{
		{"missing name", func(r *CreateDoctorRequest) { r.Name = "" }},
		{"missing specialization", func(r *CreateDoctorRequest) { r.Specialization = "" }},
		{"missing phone", func(r *CreateDoctorRequest) { r.Phone = "" }},
		{"missing email", func(r *CreateDoctorRequest) { r.Email = "" }},
		{"missing availability", func(r *CreateDoctorRequest) { r.Availability = "" }},
		{"missing location", func(r *CreateDoctorRequest) { r.Location = nil }},
		{"latitude out of range", func(r *CreateDoctorRequest) { r.Location.Lat = 91 }},
		{"longitude out of range", func(r *CreateDoctorRequest) { r.Location.Lng = -181 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockDoctorRepo{}
			svc := NewService(repo)
			req := validDoctor()
			tt.mutate(req)
			_, err := svc.CreateDoctor(context.Background(), req)
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
			if len(repo.items) != 0 {
				t.Error("invalid doctor must not be persisted")
			}
		})
	}
}

func TestCreateDoctorKeepsClinicName(t *testing.T) {
	repo := &mockDoctorRepo{}
	svc := NewService(repo)

	clinic := "Shamirpet PHC"
	req := validDoctor()
	req.ClinicName = &clinic
	if _, err := svc.CreateDoctor(context.Background(), req); err != nil {
		t.Fatalf("CreateDoctor: %v", err)
	}
	got := repo.items[0]
	if got.ClinicName == nil || *got.ClinicName != clinic {
		t.Errorf("clinic_name not persisted: %v", got.ClinicName)
	}
}

func TestListDoctorsLimit(t *testing.T) {
	repo := &mockDoctorRepo{}
	svc := NewService(repo)
	for i := 0; i < 5; i++ {
		if _, err := svc.CreateDoctor(context.Background(), validDoctor()); err != nil {
			t.Fatalf("CreateDoctor: %v", err)
		}
	}

	items, err := svc.ListDoctors(context.Background(), 3)
	if err != nil {
		t.Fatalf("ListDoctors: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 doctors, got %d", len(items))
	}
}
