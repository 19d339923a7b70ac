package dashboard

import (
	"context"
	"math"
	"time"

	"github.com/gramhealth/gramhealth/internal/domain/report"
	"github.com/gramhealth/gramhealth/internal/domain/stock"
)

// alertWindow is how far back a high or critical report still counts as an
// active alert.
const alertWindow = 7 * 24 * time.Hour

// ReportStats is the slice of the report store the dashboard reads.
type ReportStats interface {
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context, status string) (int, error)
	CountAlertsSince(ctx context.Context, since time.Time) (int, error)
}

// WaterStats is the slice of the water-quality store the dashboard reads.
type WaterStats interface {
	AverageTDS(ctx context.Context) (float64, error)
}

// DoctorStats is the slice of the doctor directory the dashboard reads.
type DoctorStats interface {
	Count(ctx context.Context) (int, error)
}

// StockStats is the slice of the inventory store the dashboard reads.
type StockStats interface {
	CountByStatus(ctx context.Context, status string) (int, error)
}

type Service struct {
	reports ReportStats
	water   WaterStats
	doctors DoctorStats
	stocks  StockStats
	now     func() time.Time
}

func NewService(reports ReportStats, water WaterStats, doctors DoctorStats, stocks StockStats) *Service {
	return &Service{
		reports: reports,
		water:   water,
		doctors: doctors,
		stocks:  stocks,
		now:     time.Now,
	}
}

// Stats assembles the snapshot. Any store failure fails the whole call;
// partial dashboards are worse than none.
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	var (
		st  Stats
		err error
	)

	if st.TotalReports, err = s.reports.Count(ctx); err != nil {
		return nil, err
	}
	if st.ActiveCases, err = s.reports.CountByStatus(ctx, report.StatusActive); err != nil {
		return nil, err
	}
	since := s.now().UTC().Add(-alertWindow)
	if st.Alerts, err = s.reports.CountAlertsSince(ctx, since); err != nil {
		return nil, err
	}

	avg, err := s.water.AverageTDS(ctx)
	if err != nil {
		return nil, err
	}
	st.WaterQualityAverage = math.Round(avg*100) / 100

	if st.DoctorsAvailable, err = s.doctors.Count(ctx); err != nil {
		return nil, err
	}
	if st.CriticalStocks, err = s.stocks.CountByStatus(ctx, stock.StatusCritical); err != nil {
		return nil, err
	}
	return &st, nil
}
