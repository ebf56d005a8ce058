package clinics

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertByNameReturnsExistingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	createdAt := time.Now().UTC().Add(-24 * time.Hour)

	// The conflict path hands back the row that already carried the name.
	mock.ExpectQuery("INSERT INTO clinics").
		WithArgs(sqlmock.AnyArg(), "CareConnect Mobile").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow("clinic-existing", "CareConnect Mobile", createdAt))

	clinic, err := repo.UpsertByName(context.Background(), "CareConnect Mobile")
	if err != nil {
		t.Fatalf("UpsertByName: %v", err)
	}
	if clinic.ID != "clinic-existing" {
		t.Fatalf("expected existing clinic ID, got %q", clinic.ID)
	}
	if !clinic.CreatedAt.Equal(createdAt) {
		t.Fatalf("expected original createdAt, got %v", clinic.CreatedAt)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoExists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}

	mock.ExpectQuery("SELECT 1 FROM clinics").
		WithArgs("clinic-1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.Exists(context.Background(), "clinic-1")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("expected clinic to exist")
	}

	mock.ExpectQuery("SELECT 1 FROM clinics").
		WithArgs("clinic-missing").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}))

	exists, err = repo.Exists(context.Background(), "clinic-missing")
	if err != nil {
		t.Fatalf("Exists missing: %v", err)
	}
	if exists {
		t.Fatalf("expected clinic to be absent")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
