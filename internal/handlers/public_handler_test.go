package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"devfolio_backend/internal/middleware"
	"devfolio_backend/internal/models"
	"devfolio_backend/internal/services"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/themes"
	"devfolio_backend/internal/validator"
	"devfolio_backend/pkg/apperrors"
)

type fakePublicService struct {
	registry *themes.Registry
	profiles map[string]*themes.Profile
	items    map[string][]models.PortfolioItem
}

func newFakePublicService() *fakePublicService {
	return &fakePublicService{
		registry: themes.DefaultRegistry(),
		profiles: make(map[string]*themes.Profile),
		items:    make(map[string][]models.PortfolioItem),
	}
}

func (f *fakePublicService) GetProfile(ctx context.Context, db *gorm.DB, username string) (*dto.ProfileResponse, []models.PortfolioItem, error) {
	p, ok := f.profiles[username]
	if !ok {
		return nil, nil, apperrors.ErrNotFound(nil)
	}
	return &dto.ProfileResponse{Username: p.Username, FullName: p.FullName}, f.items[username], nil
}

func (f *fakePublicService) GetPage(ctx context.Context, db *gorm.DB, username string) (*dto.PublicPageResponse, error) {
	p, ok := f.profiles[username]
	if !ok {
		return nil, apperrors.ErrNotFound(nil)
	}
	theme := f.registry.Get(p.SelectedTheme)
	return &dto.PublicPageResponse{
		Profile: p,
		Theme:   theme.Meta.Key,
		Page:    theme.Renderer.Render(p, f.items[username]),
	}, nil
}

func (f *fakePublicService) ListThemes() []themes.Meta {
	all := f.registry.All()
	metas := make([]themes.Meta, 0, len(all))
	for _, t := range all {
		metas = append(metas, t.Meta)
	}
	return metas
}

func newPublicTestRouter(svc services.PublicService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.DBMiddleware(nil))

	base := NewBaseHandler(validator.New())
	api := router.Group("/api/v1")
	NewPublicHandler(base, svc).RegisterRoutes(api)
	return router
}

func TestPublicPageEndpoint(t *testing.T) {
	svc := newFakePublicService()
	svc.profiles["alice"] = &themes.Profile{Username: "alice", FullName: "Alice", SelectedTheme: "corporate"}
	svc.items["alice"] = []models.PortfolioItem{
		{Title: "Visible thing", Category: models.CategoryProject, IsVisible: true},
	}
	router := newPublicTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/alice/page", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.PublicPageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "corporate", resp.Theme)
	require.NotNil(t, resp.Page)
	assert.Equal(t, "corporate", resp.Page.Attrs["data-theme"])
}

func TestPublicPageUnknownUserIs404(t *testing.T) {
	router := newPublicTestRouter(newFakePublicService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/public/ghost/page", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var body apperrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	assert.Equal(t, apperrors.CodeNotFound, body.Error.Code)
}

func TestThemesEndpointListsAll(t *testing.T) {
	router := newPublicTestRouter(newFakePublicService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/themes", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Themes []themes.Meta `json:"themes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Themes, 10)
	assert.Equal(t, "minimalist", resp.Themes[0].Key)
}
