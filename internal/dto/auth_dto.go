package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jobsync-app/jobsync-backend/internal/models"
)

type SignupRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Email       string `json:"email" validate:"omitempty,email"`
	PhoneNumber string `json:"phoneNumber" validate:"omitempty,max=50"`
	Username    string `json:"username" validate:"required,min=3,max=100"`
	Password    string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	EmailOrUsername string `json:"emailOrUsername" validate:"required"`
	Password        string `json:"password" validate:"required"`
}

// AuthResponse carries the token and a redacted user view.
type AuthResponse struct {
	AccessToken string       `json:"accessToken"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name"`
	Email       *string     `json:"email"`
	PhoneNumber *string     `json:"phone_number"`
	Username    string      `json:"username"`
	Role        models.Role `json:"role"`
	CreatedAt   time.Time   `json:"created_at"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		Username:    u.Username,
		Role:        u.Role,
		CreatedAt:   u.CreatedAt,
	}
}
