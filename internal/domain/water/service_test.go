package water

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// -- Mock Repository --

type mockWaterRepo struct {
	store map[uuid.UUID]*QualityData
}

func newMockWaterRepo() *mockWaterRepo {
	return &mockWaterRepo{store: make(map[uuid.UUID]*QualityData)}
}

func (m *mockWaterRepo) Create(_ context.Context, q *QualityData) error {
	m.store[q.ID] = q
	return nil
}

func (m *mockWaterRepo) List(_ context.Context, limit int) ([]*QualityData, error) {
	var items []*QualityData
	for _, q := range m.store {
		items = append(items, q)
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].TestDate.After(items[j].TestDate)
	})
	if len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (m *mockWaterRepo) AverageTDS(_ context.Context) (float64, error) {
	if len(m.store) == 0 {
		return 0, nil
	}
	sum := 0.0
	for _, q := range m.store {
		sum += q.TDSValue
	}
	return sum / float64(len(m.store)), nil
}

func fptr(v float64) *float64 { return &v }

func validReading() *CreateReadingRequest {
	return &CreateReadingRequest{
		TDSValue:      fptr(300),
		PHLevel:       fptr(7.2),
		Turbidity:     fptr(1.0),
		ChlorineLevel: fptr(0.5),
		TestedBy:      "Block Water Testing Lab",
		Location:      &geo.Location{Lat: 26.2, Lng: 92.9, Address: "Majuli handpump 4"},
	}
}

// -- Service Tests --

func TestCreateReading_ComputesStatus(t *testing.T) {
	svc := NewService(newMockWaterRepo())
	q, err := svc.CreateReading(context.Background(), validReading())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.ID == uuid.Nil {
		t.Error("expected ID to be set")
	}
	if q.Status != StatusSafe {
		t.Errorf("expected safe, got %q", q.Status)
	}
	if q.TestDate.IsZero() {
		t.Error("expected test_date to be stamped")
	}
}

func TestCreateReading_UnsafeScenario(t *testing.T) {
	svc := NewService(newMockWaterRepo())
	req := validReading()
	req.TDSValue = fptr(1200)
	req.PHLevel = fptr(8.8)
	req.Turbidity = fptr(6.0)
	req.ChlorineLevel = fptr(0.1)
	q, err := svc.CreateReading(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != StatusUnsafe {
		t.Errorf("expected unsafe, got %q", q.Status)
	}
}

func TestCreateReading_ModerateScenario(t *testing.T) {
	svc := NewService(newMockWaterRepo())
	req := validReading()
	req.TDSValue = fptr(600)
	req.PHLevel = fptr(7.0)
	req.Turbidity = fptr(3.0)
	req.ChlorineLevel = fptr(0.3)
	q, err := svc.CreateReading(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.Status != StatusModerate {
		t.Errorf("expected moderate, got %q", q.Status)
	}
}

func TestCreateReading_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CreateReadingRequest)
	}{
		{"missing tested_by", func(q *CreateReadingRequest) { q.TestedBy = "" }},
		{"missing tds_value", func(q *CreateReadingRequest) { q.TDSValue = nil }},
		{"missing ph_level", func(q *CreateReadingRequest) { q.PHLevel = nil }},
		{"missing turbidity", func(q *CreateReadingRequest) { q.Turbidity = nil }},
		{"missing chlorine_level", func(q *CreateReadingRequest) { q.ChlorineLevel = nil }},
		{"missing location", func(q *CreateReadingRequest) { q.Location = nil }},
		{"bad longitude", func(q *CreateReadingRequest) { q.Location.Lng = 200 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockWaterRepo()
			svc := NewService(repo)
			req := validReading()
			tt.mutate(req)
			if _, err := svc.CreateReading(context.Background(), req); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if len(repo.store) != 0 {
				t.Error("invalid reading must not be persisted")
			}
		})
	}
}

func TestListReadings_Limit(t *testing.T) {
	repo := newMockWaterRepo()
	svc := NewService(repo)
	for i := 0; i < 5; i++ {
		if _, err := svc.CreateReading(context.Background(), validReading()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	items, err := svc.ListReadings(context.Background(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("expected 3 readings, got %d", len(items))
	}
}
