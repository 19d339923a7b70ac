package doctor

import "context"

type Repository interface {
	Create(ctx context.Context, d *Doctor) error
	List(ctx context.Context, limit int) ([]*Doctor, error)
	Count(ctx context.Context) (int, error)
}
