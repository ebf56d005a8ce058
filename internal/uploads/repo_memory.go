package uploads

import (
	"context"
	"sort"
	"sync"

	"clinic-intake-backend/internal/users"
)

// ClinicDirectory answers clinic existence checks for the memory repo.
type ClinicDirectory interface {
	Exists(ctx context.Context, clinicID string) (bool, error)
}

// UserDirectory answers uploader lookups for the memory repo.
type UserDirectory interface {
	GetByID(ctx context.Context, userID string) (users.User, error)
}

// MemoryRepo is an in-memory implementation of Repo backed by the in-memory
// clinic and user repositories.
type MemoryRepo struct {
	mu      sync.RWMutex
	data    map[string]Upload
	clinics ClinicDirectory
	users   UserDirectory
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo(clinics ClinicDirectory, userDir UserDirectory) *MemoryRepo {
	return &MemoryRepo{
		data:    make(map[string]Upload),
		clinics: clinics,
		users:   userDir,
	}
}

// InTx runs fn directly; the memory repo has no transactional scope beyond
// its mutex.
func (r *MemoryRepo) InTx(ctx context.Context, fn func(Repo) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(r)
}

// ClinicExists delegates to the clinic directory.
func (r *MemoryRepo) ClinicExists(ctx context.Context, clinicID string) (bool, error) {
	return r.clinics.Exists(ctx, clinicID)
}

// GetUploader delegates to the user directory.
func (r *MemoryRepo) GetUploader(ctx context.Context, userID string) (users.User, error) {
	return r.users.GetByID(ctx, userID)
}

// Create stores a new upload.
func (r *MemoryRepo) Create(ctx context.Context, upload Upload) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[upload.ID] = upload
	return nil
}

// GetByID returns an upload by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, uploadID string) (Upload, error) {
	if err := ctx.Err(); err != nil {
		return Upload{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	upload, ok := r.data[uploadID]
	if !ok {
		return Upload{}, ErrUploadNotFound
	}
	return upload, nil
}

// ListByClinic returns the clinic's uploads newest-first.
func (r *MemoryRepo) ListByClinic(ctx context.Context, clinicID string) ([]ClinicUpload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	matched := make([]Upload, 0)
	for _, upload := range r.data {
		if upload.ClinicID == clinicID {
			matched = append(matched, upload)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	out := make([]ClinicUpload, 0, len(matched))
	for _, upload := range matched {
		item := ClinicUpload{
			ID:               upload.ID,
			OriginalFilename: upload.OriginalFilename,
			Status:           upload.Status,
			CreatedAt:        upload.CreatedAt,
		}
		if uploader, err := r.users.GetByID(ctx, upload.UploadedByUserID); err == nil {
			item.UploadedBy = UploaderRef{ID: uploader.ID, Email: uploader.Email, Role: uploader.Role}
		}
		out = append(out, item)
	}
	return out, nil
}

// TransitionStatus performs a conditional status swap under the lock.
func (r *MemoryRepo) TransitionStatus(ctx context.Context, uploadID string, from, to Status) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	upload, ok := r.data[uploadID]
	if !ok || upload.Status != from {
		return false, nil
	}
	upload.Status = to
	r.data[uploadID] = upload
	return true, nil
}

var _ Repo = (*MemoryRepo)(nil)
