package users

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	storagedb "clinic-intake-backend/internal/shared/storage/db"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB storagedb.Querier
}

// UpsertByEmail inserts the user keyed by email. An existing row wins; the
// no-op conflict update only exists so RETURNING yields the stored row.
func (r *PGRepo) UpsertByEmail(ctx context.Context, user User) (User, error) {
	const query = `
INSERT INTO users (id, clinic_id, email, role, created_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
RETURNING id, clinic_id, email, role, created_at`

	id := user.ID
	if id == "" {
		id = uuid.NewString()
	}

	var out User
	err := r.DB.QueryRowContext(ctx, query, id, user.ClinicID, user.Email, string(user.Role)).Scan(
		&out.ID,
		&out.ClinicID,
		&out.Email,
		&out.Role,
		&out.CreatedAt,
	)
	if err != nil {
		return User{}, err
	}
	return out, nil
}

// GetByID fetches a user by ID.
func (r *PGRepo) GetByID(ctx context.Context, userID string) (User, error) {
	const query = `
SELECT id, clinic_id, email, role, created_at
FROM users
WHERE id = $1
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID))
}

// FindInClinic fetches a user matching both the user ID and the clinic ID.
func (r *PGRepo) FindInClinic(ctx context.Context, userID, clinicID string) (User, error) {
	const query = `
SELECT id, clinic_id, email, role, created_at
FROM users
WHERE id = $1 AND clinic_id = $2
LIMIT 1`
	return r.scanOne(r.DB.QueryRowContext(ctx, query, userID, clinicID))
}

func (r *PGRepo) scanOne(row *sql.Row) (User, error) {
	var user User
	err := row.Scan(
		&user.ID,
		&user.ClinicID,
		&user.Email,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return user, nil
}

var _ Repo = (*PGRepo)(nil)
