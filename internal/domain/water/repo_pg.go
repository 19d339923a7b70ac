package water

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type waterRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &waterRepoPG{pool: pool}
}

const waterCols = `id, location, tds_value, ph_level, turbidity,
	chlorine_level, status, tested_by, test_date`

func scanQualityData(row pgx.Row) (*QualityData, error) {
	var q QualityData
	err := row.Scan(&q.ID, &q.Location, &q.TDSValue, &q.PHLevel, &q.Turbidity,
		&q.ChlorineLevel, &q.Status, &q.TestedBy, &q.TestDate)
	return &q, err
}

func (r *waterRepoPG) Create(ctx context.Context, q *QualityData) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO water_quality (id, location, tds_value, ph_level, turbidity,
			chlorine_level, status, tested_by, test_date)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		q.ID, q.Location, q.TDSValue, q.PHLevel, q.Turbidity,
		q.ChlorineLevel, q.Status, q.TestedBy, q.TestDate)
	return err
}

func (r *waterRepoPG) List(ctx context.Context, limit int) ([]*QualityData, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+waterCols+` FROM water_quality ORDER BY test_date DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*QualityData
	for rows.Next() {
		q, err := scanQualityData(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, q)
	}
	return items, rows.Err()
}

func (r *waterRepoPG) AverageTDS(ctx context.Context) (float64, error) {
	var avg float64
	err := r.pool.QueryRow(ctx,
		`SELECT COALESCE(AVG(tds_value), 0) FROM water_quality`).Scan(&avg)
	return avg, err
}
