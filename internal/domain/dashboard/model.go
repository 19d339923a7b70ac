// Package dashboard aggregates counters from every domain store into a
// single snapshot for the monitoring landing page.
package dashboard

// Stats is the dashboard snapshot. WaterQualityAverage is the mean TDS of
// all readings, rounded to two decimals, 0 when no readings exist.
type Stats struct {
	TotalReports        int     `json:"total_reports"`
	ActiveCases         int     `json:"active_cases"`
	Alerts              int     `json:"alerts"`
	WaterQualityAverage float64 `json:"water_quality_average"`
	DoctorsAvailable    int     `json:"doctors_available"`
	CriticalStocks      int     `json:"critical_stocks"`
}
