// Package stock tracks medical supply inventory at clinics and primary
// health centers. Each record is a snapshot of one item's quantity; the
// stock status is derived from the quantity at write time.
package stock

import (
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// MedicalStock maps to the medical_stock table.
type MedicalStock struct {
	ID          uuid.UUID    `db:"id" json:"id"`
	ItemName    string       `db:"item_name" json:"item_name"`
	Quantity    int          `db:"quantity" json:"quantity"`
	Unit        string       `db:"unit" json:"unit"`
	Status      string       `db:"status" json:"status"`
	Location    geo.Location `db:"location" json:"location"`
	ExpiryDate  *time.Time   `db:"expiry_date" json:"expiry_date,omitempty"`
	LastUpdated time.Time    `db:"last_updated" json:"last_updated"`
}
