package uploads

import (
	"time"

	"clinic-intake-backend/internal/users"
)

// Status is the upload lifecycle state. Only RECEIVED -> QUEUED transitions
// happen today; the remaining states are owned by the extraction worker.
type Status string

const (
	StatusReceived  Status = "RECEIVED"
	StatusQueued    Status = "QUEUED"
	StatusExtracted Status = "EXTRACTED"
	StatusFailed    Status = "FAILED"
)

// Upload is an intake document record. Bytes are not modeled; StorageKey is
// an opaque reference minted by the object store. Immutable after creation
// except Status.
type Upload struct {
	ID               string    `json:"id"`
	ClinicID         string    `json:"clinicId"`
	UploadedByUserID string    `json:"uploadedByUserId"`
	OriginalFilename string    `json:"originalFilename"`
	MimeType         string    `json:"mimeType"`
	StorageKey       string    `json:"storageKey"`
	Status           Status    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// UploaderRef is the uploader projection embedded in clinic upload listings.
type UploaderRef struct {
	ID    string     `json:"id"`
	Email string     `json:"email"`
	Role  users.Role `json:"role"`
}

// ClinicUpload is the listing view of an upload. StorageKey and MimeType are
// deliberately absent from this projection.
type ClinicUpload struct {
	ID               string      `json:"id"`
	OriginalFilename string      `json:"originalFilename"`
	Status           Status      `json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
	UploadedBy       UploaderRef `json:"uploadedBy"`
}
