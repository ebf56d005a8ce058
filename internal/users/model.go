package users

import "time"

// User is a clinic staff member. Every user belongs to exactly one clinic.
type User struct {
	ID        string    `json:"id"`
	ClinicID  string    `json:"clinicId"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
