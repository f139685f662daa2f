package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio_backend/internal/models"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/themes"
	"devfolio_backend/pkg/apperrors"
)

func newPublicFixture() (*fakeUserRepo, *fakePortfolioRepo, PublicService) {
	users := newFakeUserRepo()
	items := newFakePortfolioRepo()
	return users, items, NewPublicService(users, items, themes.DefaultRegistry())
}

func TestGetProfileHidesEmailAndHiddenItems(t *testing.T) {
	users, items, svc := newPublicFixture()

	owner := users.add(models.User{
		Username:      "alice",
		Email:         "alice@example.com",
		SelectedTheme: "minimalist",
	})
	require.NoError(t, items.Create(nil, &models.PortfolioItem{
		UserID: owner.ID, Title: "Visible", Category: models.CategoryProject, IsVisible: true,
	}))
	require.NoError(t, items.Create(nil, &models.PortfolioItem{
		UserID: owner.ID, Title: "Hidden", Category: models.CategoryProject, IsVisible: false,
	}))

	profile, visible, err := svc.GetProfile(context.Background(), nil, "alice")
	require.NoError(t, err)

	assert.Empty(t, profile.Email)
	require.Len(t, visible, 1)
	assert.Equal(t, "Visible", visible[0].Title)
}

func TestGetProfileUnknownUserIsNotFound(t *testing.T) {
	_, _, svc := newPublicFixture()

	_, _, err := svc.GetProfile(context.Background(), nil, "nobody")
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeNotFound, appErr.Code)
}

func TestGetPageRendersSelectedTheme(t *testing.T) {
	users, items, svc := newPublicFixture()

	owner := users.add(models.User{
		Username:      "alice",
		SelectedTheme: "cyberpunk",
	})
	require.NoError(t, items.Create(nil, &models.PortfolioItem{
		UserID: owner.ID, Title: "Neon", Category: models.CategoryProject, IsVisible: true,
	}))

	page, err := svc.GetPage(context.Background(), nil, "alice")
	require.NoError(t, err)

	assert.Equal(t, "cyberpunk", page.Theme)
	require.NotNil(t, page.Page)
	assert.Equal(t, "cyberpunk", page.Page.Attrs["data-theme"])
}

func TestGetPageFallsBackToDefaultTheme(t *testing.T) {
	users, _, svc := newPublicFixture()

	users.add(models.User{
		Username:      "bob",
		SelectedTheme: "retired-theme",
	})

	page, err := svc.GetPage(context.Background(), nil, "bob")
	require.NoError(t, err)
	assert.Equal(t, "minimalist", page.Theme)
}

func TestListThemesExposesAllMetadata(t *testing.T) {
	_, _, svc := newPublicFixture()

	metas := svc.ListThemes()
	require.Len(t, metas, 10)

	keys := make(map[string]bool, len(metas))
	for _, m := range metas {
		keys[m.Key] = true
		assert.NotEmpty(t, m.DisplayName)
		assert.NotEmpty(t, m.Colors.Primary)
	}
	assert.True(t, keys["minimalist"])
	assert.True(t, keys["luxury"])
}

func TestUploadSignScopesFolderToOwner(t *testing.T) {
	blobs := newFakeBlobStore()
	svc := NewUploadService(blobs, 0)

	resp, err := svc.SignUpload(context.Background(), "alice", &dto.SignUploadRequest{FileType: "IMAGE"})
	require.NoError(t, err)

	assert.Equal(t, "portfolio/alice", resp.Folder)
	assert.Equal(t, "image", resp.ResourceType)
	assert.Contains(t, resp.Key, "portfolio/alice/")
}

func TestUploadSignRejectsLinks(t *testing.T) {
	svc := NewUploadService(newFakeBlobStore(), 0)

	_, err := svc.SignUpload(context.Background(), "alice", &dto.SignUploadRequest{FileType: "LINK"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)
}
