package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devfolio_backend/internal/auth"
	"devfolio_backend/internal/models"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/internal/themes"
	"devfolio_backend/pkg/apperrors"
)

func newAuthFixture() (*fakeUserRepo, AuthService) {
	users := newFakeUserRepo()
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return users, NewAuthService(users, tokens)
}

func TestRegisterAndLogin(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	resp, err := svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "minimalist", resp.User.SelectedTheme)

	login, err := svc.Login(ctx, nil, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter2hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, login.User.ID)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "alice", Email: "other@example.com", Password: "hunter2hunter2",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)

	_, err = svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "alice2", Email: "alice@example.com", Password: "hunter2hunter2",
	})
	require.Error(t, err)
	appErr, ok = apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeAlreadyExists, appErr.Code)
}

func TestLoginWrongPasswordIsInvalidCredentials(t *testing.T) {
	_, svc := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, nil, &dto.RegisterRequest{
		Username: "alice", Email: "alice@example.com", Password: "hunter2hunter2",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, nil, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong-password"})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidCredentials, appErr.Code)

	// Missing account yields the same error as a wrong password.
	_, err = svc.Login(ctx, nil, &dto.LoginRequest{Email: "ghost@example.com", Password: "whatever"})
	appErr2, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, appErr.Code, appErr2.Code)
}

func TestUpdateProfileValidatesTheme(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, themes.DefaultRegistry())
	ctx := context.Background()

	u := users.add(models.User{Username: "alice", SelectedTheme: "minimalist"})

	bad := "vaporwave"
	_, err := svc.UpdateProfile(ctx, nil, u.ID, &dto.UpdateProfileRequest{SelectedTheme: &bad})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.CodeInvalidOperation, appErr.Code)

	good := "luxury"
	profile, err := svc.UpdateProfile(ctx, nil, u.ID, &dto.UpdateProfileRequest{SelectedTheme: &good})
	require.NoError(t, err)
	assert.Equal(t, "luxury", profile.SelectedTheme)
}

func TestUpdateProfileLeavesAbsentFieldsAlone(t *testing.T) {
	users := newFakeUserRepo()
	svc := NewUserService(users, themes.DefaultRegistry())
	ctx := context.Background()

	u := users.add(models.User{Username: "alice", SelectedTheme: "minimalist"})
	bio := "Building things"
	_, err := svc.UpdateProfile(ctx, nil, u.ID, &dto.UpdateProfileRequest{Bio: &bio})
	require.NoError(t, err)

	title := "Engineer"
	profile, err := svc.UpdateProfile(ctx, nil, u.ID, &dto.UpdateProfileRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Building things", profile.Bio)
	assert.Equal(t, "Engineer", profile.Title)
}
