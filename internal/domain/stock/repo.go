package stock

import "context"

type Repository interface {
	Create(ctx context.Context, m *MedicalStock) error
	List(ctx context.Context, limit int) ([]*MedicalStock, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}
