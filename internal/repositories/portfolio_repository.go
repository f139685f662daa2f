package repositories

import (
	"errors"

	"gorm.io/gorm"

	"devfolio_backend/internal/models"
)

var ErrItemNotFound = errors.New("portfolio item not found")

// PortfolioRepository handles portfolio item persistence. Every query
// that takes an ownerID is tenant-scoped: items belonging to someone
// else are indistinguishable from items that do not exist.
type PortfolioRepository interface {
	Create(db *gorm.DB, item *models.PortfolioItem) error
	FindByID(db *gorm.DB, ownerID, id string) (*models.PortfolioItem, error)
	FindByOwner(db *gorm.DB, ownerID string) ([]models.PortfolioItem, error)
	FindVisibleByOwner(db *gorm.DB, ownerID string) ([]models.PortfolioItem, error)
	Update(db *gorm.DB, item *models.PortfolioItem) error
	Delete(db *gorm.DB, ownerID, id string) (*models.PortfolioItem, error)
	Reorder(db *gorm.DB, ownerID string, itemIDs []string) error
	CountByOwner(db *gorm.DB, ownerID string) (int64, error)
}

type portfolioRepositoryImpl struct{}

func NewPortfolioRepository() PortfolioRepository {
	return &portfolioRepositoryImpl{}
}

// Create inserts the item with the next order index for its owner. The
// MAX read is not serialized by the transaction alone under read
// committed, so a per-owner advisory lock is held for the transaction to
// keep two concurrent creates from claiming the same position. The first
// item gets index 0.
func (r *portfolioRepositoryImpl) Create(db *gorm.DB, item *models.PortfolioItem) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("SELECT pg_advisory_xact_lock(hashtext(?))", item.UserID).Error; err != nil {
			return err
		}
		var next int
		if err := tx.Model(&models.PortfolioItem{}).
			Where("user_id = ?", item.UserID).
			Select("COALESCE(MAX(order_index), -1) + 1").
			Scan(&next).Error; err != nil {
			return err
		}
		item.OrderIndex = next
		return tx.Create(item).Error
	})
}

func (r *portfolioRepositoryImpl) FindByID(db *gorm.DB, ownerID, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.First(&item, "id = ? AND user_id = ?", id, ownerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *portfolioRepositoryImpl) FindByOwner(db *gorm.DB, ownerID string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("user_id = ?", ownerID).
		Order("order_index ASC, created_at DESC").
		Find(&items).Error
	return items, err
}

func (r *portfolioRepositoryImpl) FindVisibleByOwner(db *gorm.DB, ownerID string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := db.Where("user_id = ? AND is_visible = ?", ownerID, true).
		Order("order_index ASC, created_at DESC").
		Find(&items).Error
	return items, err
}

// Update persists the mutable columns of an already-loaded item. The
// owner guard is kept in the WHERE clause even though callers load the
// item scoped, so a stale or forged ID cannot cross tenants.
func (r *portfolioRepositoryImpl) Update(db *gorm.DB, item *models.PortfolioItem) error {
	result := db.Model(&models.PortfolioItem{}).
		Where("id = ? AND user_id = ?", item.ID, item.UserID).
		Updates(map[string]interface{}{
			"title":        item.Title,
			"order_index":  item.OrderIndex,
			"description":  item.Description,
			"descriptions": item.Descriptions,
			"category":     item.Category,
			"attachments":  item.Attachments,
			"tech_stack":   item.TechStack,
			"start_date":   item.StartDate,
			"end_date":     item.EndDate,
			"is_visible":   item.IsVisible,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// Delete removes one item and compacts the order indexes above it, in a
// single transaction. The removed item is returned so callers can
// release its blob attachments.
func (r *portfolioRepositoryImpl) Delete(db *gorm.DB, ownerID, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&item, "id = ? AND user_id = ?", id, ownerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrItemNotFound
			}
			return err
		}
		if err := tx.Delete(&item).Error; err != nil {
			return err
		}
		return tx.Model(&models.PortfolioItem{}).
			Where("user_id = ? AND order_index > ?", ownerID, item.OrderIndex).
			Update("order_index", gorm.Expr("order_index - ?", 1)).Error
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Reorder rewrites the order indexes to match the given ID sequence.
// IDs not owned by ownerID are skipped by the owner guard, so a forged
// list cannot touch another tenant's rows.
func (r *portfolioRepositoryImpl) Reorder(db *gorm.DB, ownerID string, itemIDs []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for position, itemID := range itemIDs {
			if err := tx.Model(&models.PortfolioItem{}).
				Where("id = ? AND user_id = ?", itemID, ownerID).
				Update("order_index", position).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *portfolioRepositoryImpl) CountByOwner(db *gorm.DB, ownerID string) (int64, error) {
	var count int64
	err := db.Model(&models.PortfolioItem{}).Where("user_id = ?", ownerID).Count(&count).Error
	return count, err
}
