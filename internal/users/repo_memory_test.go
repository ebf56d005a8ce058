package users

import (
	"context"
	"errors"
	"testing"
)

func TestUpsertByEmailIsIdempotent(t *testing.T) {
	repo := NewMemoryRepo()

	first, err := repo.UpsertByEmail(context.Background(), User{
		ClinicID: "clinic-1",
		Email:    "andres@careconnect.care",
		Role:     RoleStaff,
	})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.UpsertByEmail(context.Background(), User{
		ClinicID: "clinic-1",
		Email:    "andres@careconnect.care",
		Role:     RoleStaff,
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same row back, got %q and %q", first.ID, second.ID)
	}
}

func TestFindInClinicScopesByTenant(t *testing.T) {
	repo := NewMemoryRepo()

	staff, err := repo.UpsertByEmail(context.Background(), User{
		ClinicID: "clinic-1",
		Email:    "staff@clinic.test",
		Role:     RoleStaff,
	})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}

	if _, err := repo.FindInClinic(context.Background(), staff.ID, "clinic-1"); err != nil {
		t.Fatalf("expected match in own clinic: %v", err)
	}
	_, err = repo.FindInClinic(context.Background(), staff.ID, "clinic-other")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for other clinic, got %v", err)
	}
}
