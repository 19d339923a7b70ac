package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned when no report matches the requested identifier.
var ErrNotFound = errors.New("report not found")

type Repository interface {
	Create(ctx context.Context, r *HealthReport) error
	GetByID(ctx context.Context, id uuid.UUID) (*HealthReport, error)
	// List returns up to limit reports, newest first by date_reported.
	List(ctx context.Context, limit int) ([]*HealthReport, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	// CountAlertsSince counts high and critical severity reports dated at or
	// after the given instant.
	CountAlertsSince(ctx context.Context, since time.Time) (int, error)
}
