package dtos

import (
	"time"

	"github.com/gestorai/gestorai/internal/domain"
)

// UserResponseDTO defines what fields to expose in user API responses.
// The password hash never leaves the service.
type UserResponseDTO struct {
	ID        uint   `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// RegisterRequestDTO is the sign-up payload.
type RegisterRequestDTO struct {
	Name            string `json:"name" validate:"required,max=100"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=6,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// LoginRequestDTO is the sign-in payload.
type LoginRequestDTO struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func ToUserResponse(user *domain.User) UserResponseDTO {
	return UserResponseDTO{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
