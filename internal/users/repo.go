package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

// Repo defines persistence operations for users.
type Repo interface {
	// UpsertByEmail creates the user if no row carries the email yet and
	// otherwise returns the existing row untouched.
	UpsertByEmail(ctx context.Context, user User) (User, error)
	GetByID(ctx context.Context, userID string) (User, error)
	// FindInClinic is the tenant-scoped lookup: the user must match both IDs.
	FindInClinic(ctx context.Context, userID, clinicID string) (User, error)
}
