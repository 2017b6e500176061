package dto

import (
	"time"

	"tradejournal/internal/domain"
)

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	FullName string `json:"full_name" validate:"required"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents the register/login response
type AuthResponse struct {
	Token string     `json:"token"`
	User  UserOutput `json:"user"`
}

// UserOutput represents user data in API responses. The password hash
// never appears here.
type UserOutput struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	CreatedAt string `json:"created_at"`
}

// FromUser converts a domain user to its API shape
func FromUser(user *domain.User) UserOutput {
	return UserOutput{
		ID:        user.ID.String(),
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
