package water

import "context"

type Repository interface {
	Create(ctx context.Context, q *QualityData) error
	// List returns up to limit readings, newest first by test_date.
	List(ctx context.Context, limit int) ([]*QualityData, error)
	// AverageTDS returns the mean tds_value over all readings, 0 when the
	// collection is empty.
	AverageTDS(ctx context.Context) (float64, error)
}
