package repositories

import (
	"errors"

	"gorm.io/gorm"

	"devfolio_backend/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

// UserWithItemCount is the admin listing row: a user plus how many
// portfolio items they own.
type UserWithItemCount struct {
	models.User
	ItemCount int64 `json:"itemCount"`
}

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByUsername(db *gorm.DB, username string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	UpdateProfile(db *gorm.DB, user *models.User) error
	List(db *gorm.DB, offset, limit int) ([]UserWithItemCount, int64, error)
	DeleteWithItems(db *gorm.DB, userID string) (int64, error)
}

type userRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &userRepositoryImpl{}
}

func (r *userRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *userRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindByUsername(db *gorm.DB, username string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "username = ?", username).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateProfile persists the user-editable profile columns. Credentials
// and the admin flag are deliberately not in this list.
func (r *userRepositoryImpl) UpdateProfile(db *gorm.DB, user *models.User) error {
	result := db.Model(&models.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]interface{}{
			"full_name":      user.FullName,
			"title":          user.Title,
			"bio":            user.Bio,
			"selected_theme": user.SelectedTheme,
			"avatar_url":     user.AvatarURL,
			"social_links":   user.SocialLinks,
			"phone":          user.Phone,
			"location":       user.Location,
			"skills":         user.Skills,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// List returns a page of users with their item counts, newest first,
// plus the total user count for pagination.
func (r *userRepositoryImpl) List(db *gorm.DB, offset, limit int) ([]UserWithItemCount, int64, error) {
	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []UserWithItemCount
	err := db.Model(&models.User{}).
		Select("users.*, COUNT(portfolio_items.id) AS item_count").
		Joins("LEFT JOIN portfolio_items ON portfolio_items.user_id = users.id").
		Group("users.id").
		Order("users.created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// DeleteWithItems removes a user and all their portfolio items in one
// transaction, returning how many items went with them. Blob cleanup is
// the caller's job and happens before this runs.
func (r *userRepositoryImpl) DeleteWithItems(db *gorm.DB, userID string) (int64, error) {
	var removed int64
	err := db.Transaction(func(tx *gorm.DB) error {
		result := tx.Where("user_id = ?", userID).Delete(&models.PortfolioItem{})
		if result.Error != nil {
			return result.Error
		}
		removed = result.RowsAffected

		userResult := tx.Where("id = ?", userID).Delete(&models.User{})
		if userResult.Error != nil {
			return userResult.Error
		}
		if userResult.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
