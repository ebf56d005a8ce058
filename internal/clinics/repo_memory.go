package clinics

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"clinic-intake-backend/internal/users"
)

// MemoryUserLister exposes the in-memory users needed for eager loading.
type MemoryUserLister interface {
	ListByClinic(ctx context.Context, clinicID string) ([]users.User, error)
}

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu    sync.RWMutex
	data  map[string]Clinic
	users MemoryUserLister
}

// NewMemoryRepo constructs a MemoryRepo. userLister may be nil when eager
// loading is not needed.
func NewMemoryRepo(userLister MemoryUserLister) *MemoryRepo {
	return &MemoryRepo{
		data:  make(map[string]Clinic),
		users: userLister,
	}
}

// UpsertByName stores the clinic keyed by name; an existing row is returned untouched.
func (r *MemoryRepo) UpsertByName(ctx context.Context, name string) (Clinic, error) {
	if err := ctx.Err(); err != nil {
		return Clinic{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.data {
		if existing.Name == name {
			return existing, nil
		}
	}
	clinic := Clinic{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	r.data[clinic.ID] = clinic
	return clinic, nil
}

// Exists reports whether a clinic exists.
func (r *MemoryRepo) Exists(ctx context.Context, clinicID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.data[clinicID]
	return ok, nil
}

// ListWithUsers returns all clinics with their users eagerly loaded.
func (r *MemoryRepo) ListWithUsers(ctx context.Context) ([]ClinicWithUsers, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	clinicList := make([]Clinic, 0, len(r.data))
	for _, clinic := range r.data {
		clinicList = append(clinicList, clinic)
	}
	r.mu.RUnlock()

	sort.Slice(clinicList, func(i, j int) bool {
		return clinicList[i].CreatedAt.Before(clinicList[j].CreatedAt)
	})

	out := make([]ClinicWithUsers, 0, len(clinicList))
	for _, clinic := range clinicList {
		item := ClinicWithUsers{Clinic: clinic, Users: []users.User{}}
		if r.users != nil {
			members, err := r.users.ListByClinic(ctx, clinic.ID)
			if err != nil {
				return nil, err
			}
			item.Users = members
		}
		out = append(out, item)
	}
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
