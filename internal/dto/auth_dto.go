package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/models"
)

type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	ResetToken      string `json:"reset_token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// SessionCookie describes the cookie the boundary layer must set (or clear,
// when MaxAge is negative). The core never writes cookies itself.
type SessionCookie struct {
	Name     string        `json:"-"`
	Value    string        `json:"-"`
	MaxAge   time.Duration `json:"-"`
	HTTPOnly bool          `json:"-"`
}

type AuthResponse struct {
	Token  string        `json:"token"`
	Cookie SessionCookie `json:"-"`
	User   UserResponse  `json:"user"`
}

type SignoutResponse struct {
	Message string        `json:"message"`
	Cookie  SessionCookie `json:"-"`
}

type ResetRequestResponse struct {
	Message string `json:"message"`
}

type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Permissions []models.Permission `json:"permissions"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Permissions: u.Permissions,
	}
}

type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	DB        string `json:"db"`
}
