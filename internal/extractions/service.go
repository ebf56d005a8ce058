package extractions

import (
	"context"
	"errors"
	"time"

	"clinic-intake-backend/internal/queue"
	"clinic-intake-backend/internal/shared/telemetry"
	"clinic-intake-backend/internal/uploads"
	"clinic-intake-backend/internal/users"
)

var requiredFields = []string{"clinicId", "userId", "uploadId"}

const jobVersion = 1

// Service validates extraction requests and queues the job. Queue may be nil
// in dev, in which case the status transition still happens but no message
// is sent.
type Service struct {
	Uploads uploads.Repo
	Users   users.Repo
	Queue   queue.Client
}

// StartParams are the caller-supplied fields for starting an extraction.
type StartParams struct {
	UploadID  string
	ClinicID  string
	UserID    string
	RequestID string
}

// Extraction is the accepted-extraction view returned to the caller.
type Extraction struct {
	UploadID string         `json:"uploadId"`
	Status   uploads.Status `json:"status"`
}

// Start validates the request in a fixed order, flips the upload
// RECEIVED -> QUEUED with a conditional swap, and enqueues the job. A lost
// swap means another request queued the upload first.
func (s *Service) Start(ctx context.Context, p StartParams) (Extraction, error) {
	if p.UploadID == "" || p.ClinicID == "" || p.UserID == "" {
		return Extraction{}, &MissingFieldsError{Required: requiredFields}
	}

	upload, err := s.Uploads.GetByID(ctx, p.UploadID)
	if err != nil {
		if errors.Is(err, uploads.ErrUploadNotFound) {
			return Extraction{}, ErrUploadNotFound
		}
		return Extraction{}, err
	}
	if upload.ClinicID != p.ClinicID {
		return Extraction{}, ErrWrongClinic
	}

	user, err := s.Users.FindInClinic(ctx, p.UserID, p.ClinicID)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			return Extraction{}, ErrUserNotFound
		}
		return Extraction{}, err
	}
	if !user.Role.CanManageIntake() {
		return Extraction{}, ErrRoleForbidden
	}

	swapped, err := s.Uploads.TransitionStatus(ctx, p.UploadID, uploads.StatusReceived, uploads.StatusQueued)
	if err != nil {
		return Extraction{}, err
	}
	if !swapped {
		return Extraction{}, ErrAlreadyStarted
	}

	if s.Queue != nil {
		msg := queue.Message{
			UploadID:   p.UploadID,
			ClinicID:   p.ClinicID,
			RequestID:  p.RequestID,
			EnqueuedAt: time.Now().UTC().Format(time.RFC3339),
			Version:    jobVersion,
		}
		if err := s.Queue.Send(ctx, msg); err != nil {
			// Undo the transition so a retry can queue the upload again.
			if _, revertErr := s.Uploads.TransitionStatus(ctx, p.UploadID, uploads.StatusQueued, uploads.StatusReceived); revertErr != nil {
				telemetry.Error("extraction.revert_failed", map[string]any{
					"upload_id": p.UploadID,
					"error":     revertErr.Error(),
				})
			}
			return Extraction{}, err
		}
	}

	return Extraction{UploadID: p.UploadID, Status: uploads.StatusQueued}, nil
}
