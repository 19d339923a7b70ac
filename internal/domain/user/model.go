// Package user implements the registry of program participants: citizens,
// doctors, clinic staff, and government users.
package user

import (
	"time"

	"github.com/google/uuid"

	"github.com/gramhealth/gramhealth/pkg/geo"
)

// User roles.
const (
	RoleCitizen     = "citizen"
	RoleDoctor      = "doctor"
	RoleClinicStaff = "clinic_staff"
	RoleGovernment  = "government"
)

// User maps to the users table. IDs are immutable after creation.
type User struct {
	ID        uuid.UUID    `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Email     string       `db:"email" json:"email"`
	Role      string       `db:"role" json:"role"`
	Location  geo.Location `db:"location" json:"location"`
	Phone     *string      `db:"phone" json:"phone,omitempty"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
}
