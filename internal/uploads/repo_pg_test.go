package uploads

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)
	upload := Upload{
		ID:               "upload-1",
		ClinicID:         "clinic-1",
		UploadedByUserID: "user-1",
		OriginalFilename: "intake.pdf",
		MimeType:         "application/pdf",
		StorageKey:       "placeholder/1_intake.pdf",
		Status:           StatusReceived,
		CreatedAt:        time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO uploads").
		WithArgs(
			upload.ID,
			upload.ClinicID,
			upload.UploadedByUserID,
			upload.OriginalFilename,
			upload.MimeType,
			upload.StorageKey,
			string(StatusReceived),
			upload.CreatedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), upload); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoTransitionStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)

	mock.ExpectExec("UPDATE uploads").
		WithArgs(string(StatusQueued), "upload-1", string(StatusReceived)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	swapped, err := repo.TransitionStatus(context.Background(), "upload-1", StatusReceived, StatusQueued)
	if err != nil {
		t.Fatalf("TransitionStatus: %v", err)
	}
	if !swapped {
		t.Fatalf("expected swap to happen")
	}

	mock.ExpectExec("UPDATE uploads").
		WithArgs(string(StatusQueued), "upload-1", string(StatusReceived)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	swapped, err = repo.TransitionStatus(context.Background(), "upload-1", StatusReceived, StatusQueued)
	if err != nil {
		t.Fatalf("TransitionStatus second: %v", err)
	}
	if swapped {
		t.Fatalf("expected lost swap when status already moved")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByClinicScansUploaderProjection(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "original_filename", "status", "created_at", "id", "email", "role"}).
		AddRow("upload-2", "later.pdf", "RECEIVED", now, "user-1", "staff@clinic.test", "STAFF").
		AddRow("upload-1", "earlier.pdf", "QUEUED", now.Add(-time.Hour), "user-1", "staff@clinic.test", "STAFF")

	mock.ExpectQuery("SELECT up.id, up.original_filename").
		WithArgs("clinic-1").
		WillReturnRows(rows)

	listed, err := repo.ListByClinic(context.Background(), "clinic-1")
	if err != nil {
		t.Fatalf("ListByClinic: %v", err)
	}
	if len(listed) != 2 {
		t.Fatalf("expected 2 uploads, got %d", len(listed))
	}
	if listed[0].ID != "upload-2" {
		t.Fatalf("expected newest upload first, got %q", listed[0].ID)
	}
	if listed[0].UploadedBy.Email != "staff@clinic.test" {
		t.Fatalf("expected uploader email, got %q", listed[0].UploadedBy.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoInTxCommitsOnSuccess(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT 1 FROM clinics").
		WithArgs("clinic-1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectCommit()

	err = repo.InTx(context.Background(), func(txRepo Repo) error {
		exists, err := txRepo.ClinicExists(context.Background(), "clinic-1")
		if err != nil {
			return err
		}
		if !exists {
			return ErrClinicNotFound
		}
		return nil
	})
	if err != nil {
		t.Fatalf("InTx: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoInTxRollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := NewPGRepo(db)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err = repo.InTx(context.Background(), func(Repo) error {
		return ErrClinicNotFound
	})
	if !errors.Is(err, ErrClinicNotFound) {
		t.Fatalf("expected fn error to surface, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
