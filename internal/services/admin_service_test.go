package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio_backend/internal/models"
	"devfolio_backend/pkg/apperrors"
)

func TestAdminDeleteUserCascades(t *testing.T) {
	users := newFakeUserRepo()
	items := newFakePortfolioRepo()
	blobs := newFakeBlobStore()
	svc := NewAdminService(users, items, blobs)

	target := users.add(models.User{Username: "doomed"})
	require.NoError(t, items.Create(nil, &models.PortfolioItem{
		UserID:   target.ID,
		Title:    "With blob",
		Category: models.CategoryProject,
		Attachments: []models.Attachment{
			{FileType: models.FileTypeImage, URL: "u", ExternalID: "img-1", ResourceType: models.ResourceImage},
			{FileType: models.FileTypePDF, URL: "u", ExternalID: "raw-1", ResourceType: models.ResourceRaw},
		},
	}))
	users.itemsPerUser[target.ID] = 1

	resp, err := svc.DeleteUser(context.Background(), nil, target.ID)
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.DeletedItems)
	assert.Equal(t, 2, resp.DeletedBlobs)
	assert.Equal(t, []string{"img-1"}, blobs.deleted[models.ResourceImage])
	assert.Equal(t, []string{"raw-1"}, blobs.deleted[models.ResourceRaw])

	_, err = users.FindByID(nil, target.ID)
	assert.Error(t, err)
}

func TestAdminDeleteSurvivesBlobFailure(t *testing.T) {
	users := newFakeUserRepo()
	items := newFakePortfolioRepo()
	blobs := newFakeBlobStore()
	blobs.failAll = true
	svc := NewAdminService(users, items, blobs)

	target := users.add(models.User{Username: "doomed"})
	require.NoError(t, items.Create(nil, &models.PortfolioItem{
		UserID: target.ID, Title: "x", Category: models.CategoryProject,
		Attachments: []models.Attachment{
			{FileType: models.FileTypeImage, URL: "u", ExternalID: "img-1", ResourceType: models.ResourceImage},
		},
	}))

	resp, err := svc.DeleteUser(context.Background(), nil, target.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, resp.DeletedBlobs)

	_, err = users.FindByID(nil, target.ID)
	assert.Error(t, err)
}

func TestAdminCannotDeleteSuperAdmin(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAdminService(users, newFakePortfolioRepo(), newFakeBlobStore())

	boss := users.add(models.User{Username: "root", IsSuperAdmin: true})

	_, err := svc.DeleteUser(context.Background(), nil, boss.ID)
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeForbidden, appErr.Code)

	_, err = users.FindByID(nil, boss.ID)
	assert.NoError(t, err)
}

func TestAdminListUsersPaginates(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewAdminService(users, newFakePortfolioRepo(), newFakeBlobStore())

	for i := 0; i < 5; i++ {
		u := users.add(models.User{Username: string(rune('a' + i))})
		users.itemsPerUser[u.ID] = int64(i)
	}

	resp, err := svc.ListUsers(context.Background(), nil, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Total)
	assert.Len(t, resp.Users, 3)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 3, resp.PerPage)
}
