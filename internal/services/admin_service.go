package services

import (
	"context"

	"gorm.io/gorm"

	"devfolio_backend/internal/logger"
	"devfolio_backend/internal/models"
	"devfolio_backend/internal/repositories"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/storage"
	"devfolio_backend/pkg/apperrors"
)

type AdminService interface {
	ListUsers(ctx context.Context, db *gorm.DB, page, perPage int) (*dto.AdminUserListResponse, error)
	DeleteUser(ctx context.Context, db *gorm.DB, targetID string) (*dto.AdminDeleteResponse, error)
}

type adminService struct {
	users repositories.UserRepository
	items repositories.PortfolioRepository
	blobs storage.BlobStore
}

func NewAdminService(users repositories.UserRepository, items repositories.PortfolioRepository, blobs storage.BlobStore) AdminService {
	return &adminService{users: users, items: items, blobs: blobs}
}

func (s *adminService) ListUsers(ctx context.Context, db *gorm.DB, page, perPage int) (*dto.AdminUserListResponse, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 20
	}

	entries, total, err := s.users.List(db, (page-1)*perPage, perPage)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	users := make([]dto.AdminUserResponse, 0, len(entries))
	for i := range entries {
		users = append(users, dto.AdminUserResponse{
			ProfileResponse: dto.NewProfileResponse(&entries[i].User),
			IsSuperAdmin:    entries[i].IsSuperAdmin,
			ItemCount:       entries[i].ItemCount,
		})
	}

	return &dto.AdminUserListResponse{
		Users:   users,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	}, nil
}

// DeleteUser removes an account and everything it owns. Blob objects are
// released first, best effort; the database cascade then runs in one
// transaction. A store failure leaves orphaned objects behind but never
// blocks the account removal.
func (s *adminService) DeleteUser(ctx context.Context, db *gorm.DB, targetID string) (*dto.AdminDeleteResponse, error) {
	target, err := s.users.FindByID(db, targetID)
	if err != nil {
		return nil, mapUserError(err)
	}
	if target.IsSuperAdmin {
		return nil, apperrors.ErrProtectedAccount
	}

	items, err := s.items.FindByOwner(db, targetID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var blobAttachments []models.Attachment
	for i := range items {
		blobAttachments = append(blobAttachments, items[i].BlobAttachments()...)
	}
	released := releaseBlobs(ctx, s.blobs, blobAttachments)

	removed, err := s.users.DeleteWithItems(db, targetID)
	if err != nil {
		return nil, mapUserError(err)
	}

	logger.CtxInfo(ctx, "user account deleted",
		"target_id", targetID, "items", removed, "blobs", released)
	return &dto.AdminDeleteResponse{
		DeletedItems: removed,
		DeletedBlobs: released,
	}, nil
}
