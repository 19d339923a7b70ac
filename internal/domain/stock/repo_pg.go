package stock

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type stockRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &stockRepoPG{pool: pool}
}

const stockCols = `id, item_name, quantity, unit, status, location,
	expiry_date, last_updated`

func scanStock(row pgx.Row) (*MedicalStock, error) {
	var m MedicalStock
	err := row.Scan(&m.ID, &m.ItemName, &m.Quantity, &m.Unit, &m.Status,
		&m.Location, &m.ExpiryDate, &m.LastUpdated)
	return &m, err
}

func (r *stockRepoPG) Create(ctx context.Context, m *MedicalStock) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO medical_stock (id, item_name, quantity, unit, status,
			location, expiry_date, last_updated)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		m.ID, m.ItemName, m.Quantity, m.Unit, m.Status, m.Location,
		m.ExpiryDate, m.LastUpdated)
	return err
}

func (r *stockRepoPG) List(ctx context.Context, limit int) ([]*MedicalStock, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+stockCols+` FROM medical_stock ORDER BY last_updated DESC LIMIT $1`,
		limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*MedicalStock
	for rows.Next() {
		m, err := scanStock(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *stockRepoPG) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM medical_stock WHERE status = $1`, status).Scan(&n)
	return n, err
}
