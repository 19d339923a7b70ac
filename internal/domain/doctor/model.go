// Package doctor implements the doctor directory: contact and availability
// entries that field users can browse when escalating a case. Entries are
// append-only and carry no uniqueness constraint.
package doctor

import (
	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// Doctor maps to the doctors table. Availability is a free-form schedule
// string such as "24/7" or "9AM-6PM".
type Doctor struct {
	ID             uuid.UUID    `db:"id" json:"id"`
	Name           string       `db:"name" json:"name"`
	Specialization string       `db:"specialization" json:"specialization"`
	Location       geo.Location `db:"location" json:"location"`
	Phone          string       `db:"phone" json:"phone"`
	Email          string       `db:"email" json:"email"`
	Availability   string       `db:"availability" json:"availability"`
	ClinicName     *string      `db:"clinic_name" json:"clinic_name,omitempty"`
}
