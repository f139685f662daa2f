package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"devfolio_backend/internal/logger"
	"devfolio_backend/internal/models"
	"devfolio_backend/internal/repositories"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/storage"
	"devfolio_backend/pkg/apperrors"
)

type PortfolioService interface {
	ListItems(ctx context.Context, db *gorm.DB, ownerID string) ([]models.PortfolioItem, error)
	GetItem(ctx context.Context, db *gorm.DB, ownerID, itemID string) (*models.PortfolioItem, error)
	CreateItem(ctx context.Context, db *gorm.DB, ownerID string, req *dto.CreatePortfolioRequest) (*models.PortfolioItem, error)
	UpdateItem(ctx context.Context, db *gorm.DB, ownerID, itemID string, req *dto.UpdatePortfolioRequest) (*models.PortfolioItem, error)
	DeleteItem(ctx context.Context, db *gorm.DB, ownerID, itemID string) error
	Reorder(ctx context.Context, db *gorm.DB, ownerID string, req *dto.ReorderRequest) ([]models.PortfolioItem, error)
}

type portfolioService struct {
	items repositories.PortfolioRepository
	blobs storage.BlobStore
}

func NewPortfolioService(items repositories.PortfolioRepository, blobs storage.BlobStore) PortfolioService {
	return &portfolioService{items: items, blobs: blobs}
}

func (s *portfolioService) ListItems(ctx context.Context, db *gorm.DB, ownerID string) ([]models.PortfolioItem, error) {
	items, err := s.items.FindByOwner(db, ownerID)
	if err != nil {
		return nil, mapPortfolioError(err)
	}
	return items, nil
}

func (s *portfolioService) GetItem(ctx context.Context, db *gorm.DB, ownerID, itemID string) (*models.PortfolioItem, error) {
	item, err := s.items.FindByID(db, ownerID, itemID)
	if err != nil {
		return nil, mapPortfolioError(err)
	}
	return item, nil
}

// CreateItem stores a new item for the owner. The order index is
// assigned inside the repository transaction; ownership comes from the
// authenticated caller, never from the payload.
func (s *portfolioService) CreateItem(ctx context.Context, db *gorm.DB, ownerID string, req *dto.CreatePortfolioRequest) (*models.PortfolioItem, error) {
	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	item := &models.PortfolioItem{
		UserID:       ownerID,
		Title:        req.Title,
		Description:  req.Description,
		Descriptions: datatypes.JSONSlice[string](req.Descriptions),
		Category:     models.Category(req.Category),
		Attachments:  datatypes.JSONSlice[models.Attachment](dto.ToAttachments(req.Attachments)),
		TechStack:    datatypes.JSONSlice[string](req.TechStack),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		IsVisible:    visible,
	}

	if err := s.items.Create(db, item); err != nil {
		return nil, mapPortfolioError(err)
	}

	logger.CtxInfo(ctx, "portfolio item created",
		"item_id", item.ID, "category", item.Category, "order", item.OrderIndex)
	return item, nil
}

// UpdateItem applies the present fields of the request to an owned item.
// When the attachment list changes, blobs dropped from it are released
// from the store after the database update commits.
func (s *portfolioService) UpdateItem(ctx context.Context, db *gorm.DB, ownerID, itemID string, req *dto.UpdatePortfolioRequest) (*models.PortfolioItem, error) {
	item, err := s.items.FindByID(db, ownerID, itemID)
	if err != nil {
		return nil, mapPortfolioError(err)
	}

	var dropped []models.Attachment
	if req.Attachments != nil {
		next := dto.ToAttachments(*req.Attachments)
		dropped = droppedBlobs(item.Attachments, next)
		item.Attachments = datatypes.JSONSlice[models.Attachment](next)
	}

	if req.Title != nil {
		item.Title = *req.Title
	}
	if req.Order != nil {
		item.OrderIndex = *req.Order
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.Descriptions != nil {
		item.Descriptions = datatypes.JSONSlice[string](*req.Descriptions)
	}
	if req.Category != nil {
		item.Category = models.Category(*req.Category)
	}
	if req.TechStack != nil {
		item.TechStack = datatypes.JSONSlice[string](*req.TechStack)
	}
	if req.StartDate != nil {
		item.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		item.EndDate = req.EndDate
	}
	if req.IsVisible != nil {
		item.IsVisible = *req.IsVisible
	}

	if err := s.items.Update(db, item); err != nil {
		return nil, mapPortfolioError(err)
	}

	if len(dropped) > 0 {
		releaseBlobs(ctx, s.blobs, dropped)
	}

	logger.CtxInfo(ctx, "portfolio item updated", "item_id", item.ID)
	return item, nil
}

// DeleteItem removes an owned item, then releases its blobs. Store
// failures are logged but do not undo the delete: the item record wins
// and any stragglers are orphaned objects, not dangling references.
func (s *portfolioService) DeleteItem(ctx context.Context, db *gorm.DB, ownerID, itemID string) error {
	item, err := s.items.Delete(db, ownerID, itemID)
	if err != nil {
		return mapPortfolioError(err)
	}

	releaseBlobs(ctx, s.blobs, item.BlobAttachments())

	logger.CtxInfo(ctx, "portfolio item deleted", "item_id", itemID)
	return nil
}

// Reorder rewrites the owner's ordering to the requested ID sequence and
// returns the resulting list.
func (s *portfolioService) Reorder(ctx context.Context, db *gorm.DB, ownerID string, req *dto.ReorderRequest) ([]models.PortfolioItem, error) {
	if err := s.items.Reorder(db, ownerID, req.ItemIDs); err != nil {
		return nil, mapPortfolioError(err)
	}
	items, err := s.items.FindByOwner(db, ownerID)
	if err != nil {
		return nil, mapPortfolioError(err)
	}
	return items, nil
}

// droppedBlobs returns the blob-backed attachments present in old but
// absent from next, keyed by external ID.
func droppedBlobs(old, next []models.Attachment) []models.Attachment {
	kept := make(map[string]bool, len(next))
	for _, a := range next {
		if a.ExternalID != "" {
			kept[a.ExternalID] = true
		}
	}
	var dropped []models.Attachment
	for _, a := range old {
		if a.ExternalID != "" && !kept[a.ExternalID] {
			dropped = append(dropped, a)
		}
	}
	return dropped
}

// releaseBlobs deletes attachments from the store, grouped per resource
// kind. Records created before the kind was stored fall back to the
// file-type mapping. Failures are logged and swallowed.
func releaseBlobs(ctx context.Context, blobs storage.BlobStore, attachments []models.Attachment) int {
	byKind := make(map[models.ResourceKind][]string)
	for _, a := range attachments {
		kind := a.ResourceType
		if kind == "" {
			mapped, ok := models.KindForFileType(a.FileType)
			if !ok {
				continue
			}
			kind = mapped
		}
		byKind[kind] = append(byKind[kind], a.ExternalID)
	}

	released := 0
	for kind, ids := range byKind {
		if err := blobs.DeleteMany(ctx, ids, kind); err != nil {
			logger.CtxWarn(ctx, "blob cleanup failed",
				"kind", kind, "count", len(ids), "error", err)
			continue
		}
		released += len(ids)
	}
	return released
}

func mapPortfolioError(err error) error {
	if errors.Is(err, repositories.ErrItemNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
