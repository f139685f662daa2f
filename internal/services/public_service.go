package services

import (
	"context"

	"gorm.io/gorm"

	"devfolio_backend/internal/models"
	"devfolio_backend/internal/repositories"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/themes"
)

type PublicService interface {
	GetProfile(ctx context.Context, db *gorm.DB, username string) (*dto.ProfileResponse, []models.PortfolioItem, error)
	GetPage(ctx context.Context, db *gorm.DB, username string) (*dto.PublicPageResponse, error)
	ListThemes() []themes.Meta
}

type publicService struct {
	users    repositories.UserRepository
	items    repositories.PortfolioRepository
	registry *themes.Registry
}

func NewPublicService(users repositories.UserRepository, items repositories.PortfolioRepository, registry *themes.Registry) PublicService {
	return &publicService{users: users, items: items, registry: registry}
}

// GetProfile aggregates the visitor-safe profile with the owner's
// visible items, sorted for display. Hidden items never leave this
// method.
func (s *publicService) GetProfile(ctx context.Context, db *gorm.DB, username string) (*dto.ProfileResponse, []models.PortfolioItem, error) {
	user, err := s.users.FindByUsername(db, username)
	if err != nil {
		return nil, nil, mapUserError(err)
	}

	items, err := s.items.FindVisibleByOwner(db, user.ID)
	if err != nil {
		return nil, nil, mapPortfolioError(err)
	}

	return dto.NewPublicProfileResponse(user), themes.SortItems(items), nil
}

// GetPage renders the owner's public page with their selected theme. A
// selection the registry does not know resolves to the default theme
// instead of failing.
func (s *publicService) GetPage(ctx context.Context, db *gorm.DB, username string) (*dto.PublicPageResponse, error) {
	user, err := s.users.FindByUsername(db, username)
	if err != nil {
		return nil, mapUserError(err)
	}

	items, err := s.items.FindVisibleByOwner(db, user.ID)
	if err != nil {
		return nil, mapPortfolioError(err)
	}

	theme := s.registry.Get(user.SelectedTheme)
	profile := publicThemeProfile(user)
	return &dto.PublicPageResponse{
		Profile: profile,
		Theme:   theme.Meta.Key,
		Page:    theme.Renderer.Render(profile, items),
	}, nil
}

func (s *publicService) ListThemes() []themes.Meta {
	all := s.registry.All()
	metas := make([]themes.Meta, 0, len(all))
	for _, t := range all {
		metas = append(metas, t.Meta)
	}
	return metas
}

// publicThemeProfile maps a user to the renderer input. Credentials and
// the admin flag are not representable in the target type.
func publicThemeProfile(u *models.User) *themes.Profile {
	return &themes.Profile{
		Username:      u.Username,
		FullName:      u.FullName,
		Title:         u.Title,
		Bio:           u.Bio,
		AvatarURL:     u.AvatarURL,
		Location:      u.Location,
		Phone:         u.Phone,
		SelectedTheme: u.SelectedTheme,
		SocialLinks:   u.SocialLinks.Data(),
		Skills:        u.Skills,
	}
}
