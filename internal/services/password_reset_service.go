package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/shopcore/backend/internal/config"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/mail"
	"github.com/shopcore/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// resetTokenBytes is the entropy of a reset token before hex encoding.
const resetTokenBytes = 20

type PasswordResetService struct {
	db     *gorm.DB
	cfg    *config.Config
	mailer mail.Mailer
}

func NewPasswordResetService(db *gorm.DB, cfg *config.Config, mailer mail.Mailer) *PasswordResetService {
	return &PasswordResetService{db: db, cfg: cfg, mailer: mailer}
}

// RequestReset stores a fresh single-use token on the user and mails them a
// reset link. The acknowledgement is generic; it never echoes the token.
func (s *PasswordResetService) RequestReset(email string) (*dto.ResetRequestResponse, error) {
	email = normalizeEmail(email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("no such user found for email %s: %w", email, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	raw := make([]byte, resetTokenBytes)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}
	token := hex.EncodeToString(raw)
	expiry := time.Now().Add(s.cfg.ResetTokenExpiry)

	updates := map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to store reset token: %w", err)
	}

	resetURL := fmt.Sprintf("%s/reset?resetToken=%s", s.cfg.FrontendURL, token)
	if err := s.mailer.SendPasswordReset(user.Email, resetURL); err != nil {
		return nil, fmt.Errorf("failed to send reset mail: %w", err)
	}

	return &dto.ResetRequestResponse{Message: "Thanks!"}, nil
}

// ResetPassword consumes a reset token: it verifies the confirmation, finds
// the one user holding an unexpired matching token, and replaces password,
// token and expiry in a single store mutation so no stale-token window
// remains. A fresh session is issued on success.
func (s *PasswordResetService) ResetPassword(req *dto.ResetPasswordRequest) (*dto.AuthResponse, error) {
	if req.Password != req.ConfirmPassword {
		return nil, fmt.Errorf("%w: your passwords don't match", ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: a password is required", ErrValidation)
	}

	// Tokens issued more than one hour ago count as expired even if the
	// store still holds them.
	var user models.User
	err := s.db.
		Where("reset_token = ? AND reset_token_expiry >= ?", req.ResetToken, time.Now().Add(-time.Hour)).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to look up reset token: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	updates := map[string]interface{}{
		"password":           string(hash),
		"reset_token":        nil,
		"reset_token_expiry": nil,
	}
	if err := s.db.Model(&user).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update credentials: %w", err)
	}
	user.Password = string(hash)
	user.ResetToken = nil
	user.ResetTokenExpiry = nil

	token, err := signSessionToken(s.cfg, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &dto.AuthResponse{
		Token:  token,
		Cookie: sessionCookie(s.cfg, token),
		User:   dto.NewUserResponse(&user),
	}, nil
}
