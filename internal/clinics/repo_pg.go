package clinics

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"

	storagedb "clinic-intake-backend/internal/shared/storage/db"
	"clinic-intake-backend/internal/users"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB storagedb.Querier
}

// UpsertByName inserts the clinic keyed by name. An existing row wins; the
// no-op conflict update only exists so RETURNING yields the stored row.
func (r *PGRepo) UpsertByName(ctx context.Context, name string) (Clinic, error) {
	const query = `
INSERT INTO clinics (id, name, created_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id, name, created_at`

	var clinic Clinic
	err := r.DB.QueryRowContext(ctx, query, uuid.NewString(), name).Scan(
		&clinic.ID,
		&clinic.Name,
		&clinic.CreatedAt,
	)
	if err != nil {
		return Clinic{}, err
	}
	return clinic, nil
}

// Exists reports whether a clinic row exists.
func (r *PGRepo) Exists(ctx context.Context, clinicID string) (bool, error) {
	const query = `SELECT 1 FROM clinics WHERE id = $1 LIMIT 1`
	var one int
	err := r.DB.QueryRowContext(ctx, query, clinicID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ListWithUsers returns all clinics with their users eagerly loaded.
func (r *PGRepo) ListWithUsers(ctx context.Context) ([]ClinicWithUsers, error) {
	const clinicQuery = `
SELECT id, name, created_at
FROM clinics
ORDER BY created_at`

	rows, err := r.DB.QueryContext(ctx, clinicQuery)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ClinicWithUsers{}
	index := map[string]int{}
	for rows.Next() {
		var clinic Clinic
		if err := rows.Scan(&clinic.ID, &clinic.Name, &clinic.CreatedAt); err != nil {
			return nil, err
		}
		index[clinic.ID] = len(out)
		out = append(out, ClinicWithUsers{Clinic: clinic, Users: []users.User{}})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	const userQuery = `
SELECT id, clinic_id, email, role, created_at
FROM users
ORDER BY created_at`

	userRows, err := r.DB.QueryContext(ctx, userQuery)
	if err != nil {
		return nil, err
	}
	defer userRows.Close()

	for userRows.Next() {
		var user users.User
		if err := userRows.Scan(&user.ID, &user.ClinicID, &user.Email, &user.Role, &user.CreatedAt); err != nil {
			return nil, err
		}
		if i, ok := index[user.ClinicID]; ok {
			out[i].Users = append(out[i].Users, user)
		}
	}
	return out, userRows.Err()
}

var _ Repo = (*PGRepo)(nil)
