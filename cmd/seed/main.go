package main

// Seed a demo clinic and staff user:
//   go run ./cmd/seed
//
// Re-running is safe; both upserts are keyed on their unique columns.

import (
	"context"
	"log"
	"os"

	"clinic-intake-backend/internal/clinics"
	"clinic-intake-backend/internal/shared/config"
	"clinic-intake-backend/internal/shared/storage/db"
	"clinic-intake-backend/internal/users"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	clinicName := getEnv("SEED_CLINIC_NAME", "CareConnect Mobile")
	staffEmail := getEnv("SEED_STAFF_EMAIL", "andres@careconnect.care")

	opts := db.OptionsFromEnv(db.DefaultMigrateOptions())
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		log.Printf("seed failed: %v", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Printf("seed failed: %v", err)
		os.Exit(1)
	}

	clinicRepo := &clinics.PGRepo{DB: sqlDB}
	userRepo := &users.PGRepo{DB: sqlDB}

	clinic, err := clinicRepo.UpsertByName(ctx, clinicName)
	if err != nil {
		log.Printf("seed failed: %v", err)
		os.Exit(1)
	}

	staff, err := userRepo.UpsertByEmail(ctx, users.User{
		ClinicID: clinic.ID,
		Email:    staffEmail,
		Role:     users.RoleStaff,
	})
	if err != nil {
		log.Printf("seed failed: %v", err)
		os.Exit(1)
	}

	log.Printf("seeded clinic %q (%s) with staff %q (%s)", clinic.Name, clinic.ID, staff.Email, staff.ID)
}

func getEnv(key, def string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return def
}
