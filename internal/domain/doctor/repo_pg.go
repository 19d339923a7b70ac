package doctor

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type doctorRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &doctorRepoPG{pool: pool}
}

const doctorCols = `id, name, specialization, location, phone, email,
	availability, clinic_name`

func scanDoctor(row pgx.Row) (*Doctor, error) {
	var d Doctor
	err := row.Scan(&d.ID, &d.Name, &d.Specialization, &d.Location, &d.Phone,
		&d.Email, &d.Availability, &d.ClinicName)
	return &d, err
}

func (r *doctorRepoPG) Create(ctx context.Context, d *Doctor) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO doctors (id, name, specialization, location, phone, email,
			availability, clinic_name)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		d.ID, d.Name, d.Specialization, d.Location, d.Phone, d.Email,
		d.Availability, d.ClinicName)
	return err
}

func (r *doctorRepoPG) List(ctx context.Context, limit int) ([]*Doctor, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+doctorCols+` FROM doctors LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Doctor
	for rows.Next() {
		d, err := scanDoctor(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *doctorRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM doctors`).Scan(&n)
	return n, err
}
