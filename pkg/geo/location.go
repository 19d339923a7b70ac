// Package geo holds the shared location value type attached to every
// submitted record: a lat/lng point plus a free-form address string.
package geo

import "fmt"

// Location is the point a record was submitted from or refers to.
// It is stored as a single JSONB document alongside the record.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address"`
}

// Validate checks that the coordinates are within range.
func (l Location) Validate() error {
	if l.Lat < -90 || l.Lat > 90 {
		return fmt.Errorf("lat must be between -90 and 90, got %v", l.Lat)
	}
	if l.Lng < -180 || l.Lng > 180 {
		return fmt.Errorf("lng must be between -180 and 180, got %v", l.Lng)
	}
	return nil
}
