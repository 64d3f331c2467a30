package dto

import "jobboard_backend/internal/models"

type RegisterRequest struct {
	Name     string          `json:"name" validate:"required"`
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=6"`
	Role     models.UserRole `json:"role" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the opaque session token the client sends back as a
// bearer credential.
type AuthResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	ID    models.UserID   `json:"id"`
	Name  string          `json:"name"`
	Email string          `json:"email"`
	Role  models.UserRole `json:"role"`
}
