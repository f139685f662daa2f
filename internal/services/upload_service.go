package services

import (
	"context"
	"time"

	"devfolio_backend/internal/logger"
	"devfolio_backend/internal/models"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/storage"
	"devfolio_backend/pkg/apperrors"
)

type UploadService interface {
	SignUpload(ctx context.Context, ownerID string, req *dto.SignUploadRequest) (*dto.SignUploadResponse, error)
}

type uploadService struct {
	blobs   storage.BlobStore
	signTTL time.Duration
}

func NewUploadService(blobs storage.BlobStore, signTTL time.Duration) UploadService {
	return &uploadService{blobs: blobs, signTTL: signTTL}
}

// SignUpload mints an upload credential scoped to the caller's own
// folder. The folder is derived from the authenticated identity, so one
// tenant cannot obtain a credential for another's namespace.
func (s *uploadService) SignUpload(ctx context.Context, ownerID string, req *dto.SignUploadRequest) (*dto.SignUploadResponse, error) {
	kind, ok := models.KindForFileType(models.FileType(req.FileType))
	if !ok {
		return nil, apperrors.ErrInvalidOperation("upload", "link attachments do not use the blob store")
	}

	folder := "portfolio/" + ownerID
	signed, err := s.blobs.SignUpload(ctx, folder, kind, s.signTTL)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError,
			"upload", "Failed to sign upload", 502)
	}

	logger.CtxInfo(ctx, "upload signed", "folder", folder, "kind", kind)
	return &dto.SignUploadResponse{
		UploadURL:    signed.UploadURL,
		Key:          signed.Key,
		Folder:       signed.Folder,
		ResourceType: string(kind),
		ExpiresAt:    signed.ExpiresAt,
	}, nil
}
