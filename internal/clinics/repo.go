package clinics

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "clinic not found" }

// Repo defines persistence operations for clinics.
type Repo interface {
	// UpsertByName creates the clinic if no row carries the name yet and
	// otherwise returns the existing row untouched.
	UpsertByName(ctx context.Context, name string) (Clinic, error)
	Exists(ctx context.Context, clinicID string) (bool, error)
	ListWithUsers(ctx context.Context) ([]ClinicWithUsers, error)
}
