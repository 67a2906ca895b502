package dto

import (
	"time"

	"wealthcoach_backend/internal/models"
)

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	DisplayName string `json:"display_name" binding:"required"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role,omitempty" binding:"omitempty,is-role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" binding:"required"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}

type UpdateProfileRequest struct {
	DisplayName *string `json:"display_name,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	AccessToken string  `json:"access_token"`
	ExpiresIn   int64   `json:"expires_in"` // seconds until the token expires
	User        UserDTO `json:"user"`
}

type UserDTO struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"display_name"`
	PhoneNumber   string    `json:"phone_number,omitempty"`
	Role          string    `json:"role"`
	EmailVerified bool      `json:"email_verified"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewUserDTO(user *models.User) UserDTO {
	return UserDTO{
		ID:            user.ID,
		Email:         user.Email,
		DisplayName:   user.DisplayName,
		PhoneNumber:   user.PhoneNumber,
		Role:          user.RoleName(),
		EmailVerified: user.EmailVerified,
		CreatedAt:     user.CreatedAt,
	}
}
