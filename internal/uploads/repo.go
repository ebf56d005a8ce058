package uploads

import (
	"context"

	"clinic-intake-backend/internal/users"
)

// Repo defines persistence operations for uploads. The clinic and uploader
// lookups live here because the creation chain reads them inside the same
// transaction as the insert.
type Repo interface {
	// InTx runs fn against a transaction-bound copy of the repository and
	// commits if fn returns nil.
	InTx(ctx context.Context, fn func(Repo) error) error
	ClinicExists(ctx context.Context, clinicID string) (bool, error)
	GetUploader(ctx context.Context, userID string) (users.User, error)
	Create(ctx context.Context, upload Upload) error
	GetByID(ctx context.Context, uploadID string) (Upload, error)
	ListByClinic(ctx context.Context, clinicID string) ([]ClinicUpload, error)
	// TransitionStatus flips the status only if the upload still holds from,
	// reporting whether the swap happened.
	TransitionStatus(ctx context.Context, uploadID string, from, to Status) (bool, error)
}
