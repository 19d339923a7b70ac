// Package water implements submission and retrieval of field water-quality
// test readings. Each reading is classified safe/moderate/unsafe at creation
// time; the stored status is a frozen snapshot and is never recomputed.
package water

import (
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// QualityData maps to the water_quality table.
type QualityData struct {
	ID            uuid.UUID    `db:"id" json:"id"`
	Location      geo.Location `db:"location" json:"location"`
	TDSValue      float64      `db:"tds_value" json:"tds_value"`
	PHLevel       float64      `db:"ph_level" json:"ph_level"`
	Turbidity     float64      `db:"turbidity" json:"turbidity"`
	ChlorineLevel float64      `db:"chlorine_level" json:"chlorine_level"`
	Status        string       `db:"status" json:"status"`
	TestedBy      string       `db:"tested_by" json:"tested_by"`
	TestDate      time.Time    `db:"test_date" json:"test_date"`
}
