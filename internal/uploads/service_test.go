package uploads

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"clinic-intake-backend/internal/shared/storage/object/placeholder"
	"clinic-intake-backend/internal/users"
)

type clinicDirStub struct {
	ids map[string]bool
}

func (s clinicDirStub) Exists(ctx context.Context, clinicID string) (bool, error) {
	return s.ids[clinicID], nil
}

func setupService(t *testing.T) (*Service, *users.MemoryRepo) {
	t.Helper()
	userRepo := users.NewMemoryRepo()
	repo := NewMemoryRepo(clinicDirStub{ids: map[string]bool{"clinic-1": true}}, userRepo)
	svc := &Service{Repo: repo, Store: placeholder.New()}
	return svc, userRepo
}

func seedStaff(t *testing.T, userRepo *users.MemoryRepo, clinicID, email string) users.User {
	t.Helper()
	user, err := userRepo.UpsertByEmail(context.Background(), users.User{
		ClinicID: clinicID,
		Email:    email,
		Role:     users.RoleStaff,
	})
	if err != nil {
		t.Fatalf("seed staff: %v", err)
	}
	return user
}

func TestCreateMissingFields(t *testing.T) {
	svc, _ := setupService(t)

	cases := []CreateParams{
		{UploadedByUserID: "u", OriginalFilename: "f.pdf", MimeType: "application/pdf"},
		{ClinicID: "clinic-1", OriginalFilename: "f.pdf", MimeType: "application/pdf"},
		{ClinicID: "clinic-1", UploadedByUserID: "u", MimeType: "application/pdf"},
		{ClinicID: "clinic-1", UploadedByUserID: "u", OriginalFilename: "f.pdf"},
	}
	for _, p := range cases {
		_, err := svc.Create(context.Background(), p)
		var missing *MissingFieldsError
		if !errors.As(err, &missing) {
			t.Fatalf("expected MissingFieldsError for %+v, got %v", p, err)
		}
		want := []string{"clinicId", "uploadedByUserId", "originalFilename", "mimeType"}
		if len(missing.Required) != len(want) {
			t.Fatalf("expected %d required fields, got %v", len(want), missing.Required)
		}
		for i, field := range want {
			if missing.Required[i] != field {
				t.Fatalf("expected required[%d]=%q, got %q", i, field, missing.Required[i])
			}
		}
	}
}

func TestCreateRejectsDisallowedMimeType(t *testing.T) {
	svc, userRepo := setupService(t)
	staff := seedStaff(t, userRepo, "clinic-1", "staff@clinic.test")

	_, err := svc.Create(context.Background(), CreateParams{
		ClinicID:         "clinic-1",
		UploadedByUserID: staff.ID,
		OriginalFilename: "intake.gif",
		MimeType:         "image/gif",
	})
	var badMime *InvalidMimeTypeError
	if !errors.As(err, &badMime) {
		t.Fatalf("expected InvalidMimeTypeError, got %v", err)
	}
	if badMime.Received != "image/gif" {
		t.Fatalf("expected received image/gif, got %q", badMime.Received)
	}
	if len(badMime.Allowed) != 3 {
		t.Fatalf("expected 3 allowed mime types, got %v", badMime.Allowed)
	}
}

func TestCreateUnknownClinic(t *testing.T) {
	svc, userRepo := setupService(t)
	staff := seedStaff(t, userRepo, "clinic-1", "staff@clinic.test")

	_, err := svc.Create(context.Background(), CreateParams{
		ClinicID:         "clinic-missing",
		UploadedByUserID: staff.ID,
		OriginalFilename: "intake.pdf",
		MimeType:         "application/pdf",
	})
	if !errors.Is(err, ErrClinicNotFound) {
		t.Fatalf("expected ErrClinicNotFound, got %v", err)
	}
}

func TestCreateUnknownUploader(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Create(context.Background(), CreateParams{
		ClinicID:         "clinic-1",
		UploadedByUserID: "user-missing",
		OriginalFilename: "intake.pdf",
		MimeType:         "application/pdf",
	})
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestCreateCrossTenantUploader(t *testing.T) {
	svc, userRepo := setupService(t)
	outsider := seedStaff(t, userRepo, "clinic-other", "other@clinic.test")

	_, err := svc.Create(context.Background(), CreateParams{
		ClinicID:         "clinic-1",
		UploadedByUserID: outsider.ID,
		OriginalFilename: "intake.pdf",
		MimeType:         "application/pdf",
	})
	if !errors.Is(err, ErrWrongClinic) {
		t.Fatalf("expected ErrWrongClinic, got %v", err)
	}
}

func TestCreateNonStaffForbidden(t *testing.T) {
	svc, userRepo := setupService(t)
	frontDesk, err := userRepo.UpsertByEmail(context.Background(), users.User{
		ClinicID: "clinic-1",
		Email:    "desk@clinic.test",
		Role:     users.RoleFrontDesk,
	})
	if err != nil {
		t.Fatalf("seed front desk: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateParams{
		ClinicID:         "clinic-1",
		UploadedByUserID: frontDesk.ID,
		OriginalFilename: "intake.pdf",
		MimeType:         "application/pdf",
	})
	if !errors.Is(err, ErrRoleForbidden) {
		t.Fatalf("expected ErrRoleForbidden, got %v", err)
	}
}

func TestCreateSuccess(t *testing.T) {
	svc, userRepo := setupService(t)
	staff := seedStaff(t, userRepo, "clinic-1", "staff@clinic.test")

	upload, err := svc.Create(context.Background(), CreateParams{
		ClinicID:         "clinic-1",
		UploadedByUserID: staff.ID,
		OriginalFilename: "intake.pdf",
		MimeType:         "application/pdf",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if upload.Status != StatusReceived {
		t.Fatalf("expected status RECEIVED, got %q", upload.Status)
	}
	if upload.ClinicID != "clinic-1" || upload.UploadedByUserID != staff.ID {
		t.Fatalf("expected request IDs echoed back, got %+v", upload)
	}
	if !strings.HasPrefix(upload.StorageKey, "placeholder/") || !strings.HasSuffix(upload.StorageKey, "_intake.pdf") {
		t.Fatalf("unexpected storage key %q", upload.StorageKey)
	}
	if upload.ID == "" {
		t.Fatalf("expected generated upload ID")
	}

	stored, err := svc.Repo.GetByID(context.Background(), upload.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.CreatedAt.IsZero() || time.Since(stored.CreatedAt) > time.Minute {
		t.Fatalf("unexpected createdAt %v", stored.CreatedAt)
	}
}

func TestCreateFailureCreatesNoRecord(t *testing.T) {
	svc, userRepo := setupService(t)
	outsider := seedStaff(t, userRepo, "clinic-other", "other@clinic.test")

	_, err := svc.Create(context.Background(), CreateParams{
		ClinicID:         "clinic-1",
		UploadedByUserID: outsider.ID,
		OriginalFilename: "intake.pdf",
		MimeType:         "application/pdf",
	})
	if err == nil {
		t.Fatalf("expected error")
	}

	listed, err := svc.Repo.ListByClinic(context.Background(), "clinic-1")
	if err != nil {
		t.Fatalf("ListByClinic: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no uploads persisted, got %d", len(listed))
	}
}
