package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"devfolio_backend/internal/auth"
	"devfolio_backend/internal/logger"
	"devfolio_backend/internal/models"
	"devfolio_backend/internal/repositories"
	"devfolio_backend/internal/services/dto"
	"devfolio_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	users  repositories.UserRepository
	tokens *auth.TokenManager
}

func NewAuthService(users repositories.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{users: users, tokens: tokens}
}

func (s *authService) Register(ctx context.Context, db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if _, err := s.users.FindByUsername(db, req.Username); err == nil {
		return nil, apperrors.ErrAlreadyExists(errors.New("username already taken"))
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}
	if _, err := s.users.FindByEmail(db, req.Email); err == nil {
		return nil, apperrors.ErrAlreadyExists(errors.New("email already registered"))
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:      req.Username,
		Email:         req.Email,
		PasswordHash:  hash,
		FullName:      req.FullName,
		SelectedTheme: "minimalist",
	}
	if err := s.users.Create(db, user); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "user registered", "username", user.Username)
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	logger.CtxInfo(ctx, "user logged in", "username", user.Username)
	return s.issueToken(user)
}

func (s *authService) issueToken(user *models.User) (*dto.AuthResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Username, user.IsSuperAdmin)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.AuthResponse{
		Token: token,
		User:  dto.NewProfileResponse(user),
	}, nil
}
