package clinics

import (
	"time"

	"clinic-intake-backend/internal/users"
)

// Clinic is the tenant boundary; it owns users and, transitively, uploads.
type Clinic struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ClinicWithUsers is the listing view: a clinic with its users eagerly loaded.
type ClinicWithUsers struct {
	Clinic
	Users []users.User `json:"users"`
}
