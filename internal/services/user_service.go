package services

import (
	"context"
	"errors"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"devfolio_backend/internal/logger"
	"devfolio_backend/internal/repositories"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/themes"
	"devfolio_backend/pkg/apperrors"
)

type UserService interface {
	GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
}

type userService struct {
	users    repositories.UserRepository
	registry *themes.Registry
}

func NewUserService(users repositories.UserRepository, registry *themes.Registry) UserService {
	return &userService{users: users, registry: registry}
}

func (s *userService) GetProfile(ctx context.Context, db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.users.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}
	return dto.NewProfileResponse(user), nil
}

// UpdateProfile applies the request's present fields. Theme selection is
// checked against the registry so a profile can never point at a theme
// this deployment does not carry.
func (s *userService) UpdateProfile(ctx context.Context, db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.users.FindByID(db, userID)
	if err != nil {
		return nil, mapUserError(err)
	}

	if req.SelectedTheme != nil {
		if !s.registry.Has(*req.SelectedTheme) {
			return nil, apperrors.ErrInvalidOperation("profile", "unknown theme: "+*req.SelectedTheme)
		}
		user.SelectedTheme = *req.SelectedTheme
	}
	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Title != nil {
		user.Title = *req.Title
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.SocialLinks != nil {
		user.SocialLinks = datatypes.NewJSONType(*req.SocialLinks)
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Location != nil {
		user.Location = *req.Location
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}

	if err := s.users.UpdateProfile(db, user); err != nil {
		return nil, mapUserError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "user_id", userID)
	return dto.NewProfileResponse(user), nil
}

func mapUserError(err error) error {
	if errors.Is(err, repositories.ErrUserNotFound) {
		return apperrors.ErrNotFound(err)
	}
	if _, ok := apperrors.AsAppError(err); ok {
		return err
	}
	return apperrors.InternalError(err)
}
