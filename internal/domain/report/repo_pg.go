package report

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type reportRepoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &reportRepoPG{pool: pool}
}

const reportCols = `id, reporter_id, reporter_name, report_type, symptoms,
	severity, location, date_reported, status, is_anonymous, additional_info`

func scanReport(row pgx.Row) (*HealthReport, error) {
	var r HealthReport
	err := row.Scan(&r.ID, &r.ReporterID, &r.ReporterName, &r.ReportType,
		&r.Symptoms, &r.Severity, &r.Location, &r.DateReported, &r.Status,
		&r.IsAnonymous, &r.AdditionalInfo)
	return &r, err
}

func (repo *reportRepoPG) Create(ctx context.Context, r *HealthReport) error {
	_, err := repo.pool.Exec(ctx, `
		INSERT INTO health_reports (id, reporter_id, reporter_name, report_type,
			symptoms, severity, location, date_reported, status, is_anonymous,
			additional_info)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		r.ID, r.ReporterID, r.ReporterName, r.ReportType, r.Symptoms,
		r.Severity, r.Location, r.DateReported, r.Status, r.IsAnonymous,
		r.AdditionalInfo)
	return err
}

func (repo *reportRepoPG) GetByID(ctx context.Context, id uuid.UUID) (*HealthReport, error) {
	r, err := scanReport(repo.pool.QueryRow(ctx,
		`SELECT `+reportCols+` FROM health_reports WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (repo *reportRepoPG) List(ctx context.Context, limit int) ([]*HealthReport, error) {
	rows, err := repo.pool.Query(ctx,
		`SELECT `+reportCols+` FROM health_reports ORDER BY date_reported DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*HealthReport
	for rows.Next() {
		r, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, r)
	}
	return items, rows.Err()
}

func (repo *reportRepoPG) Count(ctx context.Context) (int, error) {
	var n int
	err := repo.pool.QueryRow(ctx, `SELECT COUNT(*) FROM health_reports`).Scan(&n)
	return n, err
}

func (repo *reportRepoPG) CountByStatus(ctx context.Context, status string) (int, error) {
	var n int
	err := repo.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM health_reports WHERE status = $1`, status).Scan(&n)
	return n, err
}

func (repo *reportRepoPG) CountAlertsSince(ctx context.Context, since time.Time) (int, error) {
	var n int
	err := repo.pool.QueryRow(ctx, `
		SELECT COUNT(*) FROM health_reports
		WHERE severity IN ($1, $2) AND date_reported >= $3`,
		SeverityHigh, SeverityCritical, since).Scan(&n)
	return n, err
}
