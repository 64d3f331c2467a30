package services

import (
	"errors"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	appErrors "jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(req dto.LoginRequest) (*dto.AuthResponse, error)
	GetCurrentUser(userID models.UserID) (*dto.MeResponse, error)
}

type AuthServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

func (s *AuthServiceImpl) Register(req dto.RegisterRequest) (*dto.AuthResponse, error) {
	if !req.Role.Valid() {
		return nil, appErrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, appErrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, appErrors.ErrEmailAlreadyExists
		}
		return nil, appErrors.InternalError(err)
	}

	token, err := auth.GenerateToken(string(user.ID), string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token}, nil
}

// Login returns the same error for an unknown email and a wrong password.
func (s *AuthServiceImpl) Login(req dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, appErrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(string(user.ID), string(user.Role))
	if err != nil {
		return nil, appErrors.InternalError(err)
	}
	return &dto.AuthResponse{Token: token}, nil
}

func (s *AuthServiceImpl) GetCurrentUser(userID models.UserID) (*dto.MeResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, appErrors.NewNotFoundError("User not found")
		}
		return nil, appErrors.InternalError(err)
	}

	return &dto.MeResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}
