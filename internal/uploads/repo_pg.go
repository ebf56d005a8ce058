package uploads

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	storagedb "clinic-intake-backend/internal/shared/storage/db"
	"clinic-intake-backend/internal/users"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	db *sql.DB
	q  storagedb.Querier
}

// NewPGRepo constructs a PGRepo over the shared connection pool.
func NewPGRepo(db *sql.DB) *PGRepo {
	return &PGRepo{db: db, q: db}
}

// InTx begins a transaction and runs fn against a tx-bound repository copy.
// A repo already inside a transaction runs fn directly.
func (r *PGRepo) InTx(ctx context.Context, fn func(Repo) error) error {
	if r.db == nil {
		return fn(r)
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(&PGRepo{q: tx}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// ClinicExists reports whether a clinic row exists.
func (r *PGRepo) ClinicExists(ctx context.Context, clinicID string) (bool, error) {
	const query = `SELECT 1 FROM clinics WHERE id = $1 LIMIT 1`
	var one int
	err := r.q.QueryRowContext(ctx, query, clinicID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetUploader fetches the uploading user.
func (r *PGRepo) GetUploader(ctx context.Context, userID string) (users.User, error) {
	const query = `
SELECT id, clinic_id, email, role, created_at
FROM users
WHERE id = $1
LIMIT 1`
	var user users.User
	err := r.q.QueryRowContext(ctx, query, userID).Scan(
		&user.ID,
		&user.ClinicID,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return user, nil
}

// Create inserts a new upload.
func (r *PGRepo) Create(ctx context.Context, upload Upload) error {
	const query = `
INSERT INTO uploads (
    id,
    clinic_id,
    uploaded_by_user_id,
    original_filename,
    mime_type,
    storage_key,
    status,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.q.ExecContext(
		ctx,
		query,
		upload.ID,
		upload.ClinicID,
		upload.UploadedByUserID,
		upload.OriginalFilename,
		upload.MimeType,
		upload.StorageKey,
		string(upload.Status),
		upload.CreatedAt,
	)
	return err
}

// GetByID fetches an upload by ID.
func (r *PGRepo) GetByID(ctx context.Context, uploadID string) (Upload, error) {
	const query = `
SELECT id, clinic_id, uploaded_by_user_id, original_filename, mime_type, storage_key, status, created_at
FROM uploads
WHERE id = $1
LIMIT 1`
	var upload Upload
	err := r.q.QueryRowContext(ctx, query, uploadID).Scan(
		&upload.ID,
		&upload.ClinicID,
		&upload.UploadedByUserID,
		&upload.OriginalFilename,
		&upload.MimeType,
		&upload.StorageKey,
		&upload.Status,
		&upload.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Upload{}, ErrUploadNotFound
		}
		return Upload{}, err
	}
	return upload, nil
}

// ListByClinic lists a clinic's uploads newest-first with the uploader
// projection joined in.
func (r *PGRepo) ListByClinic(ctx context.Context, clinicID string) ([]ClinicUpload, error) {
	const query = `
SELECT up.id, up.original_filename, up.status, up.created_at, u.id, u.email, u.role
FROM uploads up
JOIN users u ON u.id = up.uploaded_by_user_id
WHERE up.clinic_id = $1
ORDER BY up.created_at DESC`

	rows, err := r.q.QueryContext(ctx, query, clinicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ClinicUpload{}
	for rows.Next() {
		var item ClinicUpload
		if err := rows.Scan(
			&item.ID,
			&item.OriginalFilename,
			&item.Status,
			&item.CreatedAt,
			&item.UploadedBy.ID,
			&item.UploadedBy.Email,
			&item.UploadedBy.Role,
		); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// TransitionStatus performs a conditional status swap.
func (r *PGRepo) TransitionStatus(ctx context.Context, uploadID string, from, to Status) (bool, error) {
	const query = `
UPDATE uploads
SET status = $1
WHERE id = $2 AND status = $3`
	res, err := r.q.ExecContext(ctx, query, string(to), uploadID, string(from))
	if err != nil {
		return false, err
	}
	updated, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return updated > 0, nil
}

var _ Repo = (*PGRepo)(nil)
