package clinics

import (
	"context"

	"clinic-intake-backend/internal/uploads"
)

// UploadLister provides the clinic upload projection; satisfied by uploads.Repo.
type UploadLister interface {
	ListByClinic(ctx context.Context, clinicID string) ([]uploads.ClinicUpload, error)
}

// Service contains clinic listing logic.
type Service struct {
	Repo    Repo
	Uploads UploadLister
}

// NewService constructs a Service.
func NewService(repo Repo, uploadLister UploadLister) *Service {
	return &Service{Repo: repo, Uploads: uploadLister}
}

// List returns all clinics with their users. No filtering, no pagination.
func (s *Service) List(ctx context.Context) ([]ClinicWithUsers, error) {
	return s.Repo.ListWithUsers(ctx)
}

// ListUploads returns a clinic's uploads newest-first, or ErrNotFound if the
// clinic does not exist.
func (s *Service) ListUploads(ctx context.Context, clinicID string) ([]uploads.ClinicUpload, error) {
	exists, err := s.Repo.Exists(ctx, clinicID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrNotFound
	}
	return s.Uploads.ListByClinic(ctx, clinicID)
}
