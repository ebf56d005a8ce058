package uploads

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"clinic-intake-backend/internal/shared/storage/object"
	"clinic-intake-backend/internal/users"
)

var requiredFields = []string{"clinicId", "uploadedByUserId", "originalFilename", "mimeType"}

var allowedMimeTypes = []string{"application/pdf", "image/png", "image/jpeg"}

func mimeTypeAllowed(mimeType string) bool {
	for _, allowed := range allowedMimeTypes {
		if mimeType == allowed {
			return true
		}
	}
	return false
}

// Service contains the upload creation and listing logic.
type Service struct {
	Repo  Repo
	Store object.Store
}

// CreateParams are the caller-supplied fields for a new upload.
type CreateParams struct {
	ClinicID         string
	UploadedByUserID string
	OriginalFilename string
	MimeType         string
}

// Create validates and persists a new upload. Checks run in a fixed order
// and the first failure wins; the entity reads and the insert share one
// repository transaction.
func (s *Service) Create(ctx context.Context, p CreateParams) (Upload, error) {
	if p.ClinicID == "" || p.UploadedByUserID == "" || p.OriginalFilename == "" || p.MimeType == "" {
		return Upload{}, &MissingFieldsError{Required: requiredFields}
	}
	if !mimeTypeAllowed(p.MimeType) {
		return Upload{}, &InvalidMimeTypeError{Allowed: allowedMimeTypes, Received: p.MimeType}
	}

	var created Upload
	err := s.Repo.InTx(ctx, func(repo Repo) error {
		exists, err := repo.ClinicExists(ctx, p.ClinicID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrClinicNotFound
		}

		uploader, err := repo.GetUploader(ctx, p.UploadedByUserID)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if uploader.ClinicID != p.ClinicID {
			return ErrWrongClinic
		}
		if !uploader.Role.CanManageIntake() {
			return ErrRoleForbidden
		}

		storageKey, err := s.Store.Put(ctx, p.OriginalFilename, nil)
		if err != nil {
			return err
		}

		created = Upload{
			ID:               uuid.NewString(),
			ClinicID:         p.ClinicID,
			UploadedByUserID: p.UploadedByUserID,
			OriginalFilename: p.OriginalFilename,
			MimeType:         p.MimeType,
			StorageKey:       storageKey,
			Status:           StatusReceived,
			CreatedAt:        time.Now().UTC(),
		}
		return repo.Create(ctx, created)
	})
	if err != nil {
		return Upload{}, err
	}
	return created, nil
}
