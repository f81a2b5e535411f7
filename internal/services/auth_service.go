package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/config"
	"github.com/shopcore/backend/internal/dto"
	"github.com/shopcore/backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// bcryptCost is tuned for interactive latency.
const bcryptCost = 10

type AuthService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewAuthService(db *gorm.DB, cfg *config.Config) *AuthService {
	return &AuthService{db: db, cfg: cfg}
}

// Signup creates a user with the default permission set and signs them in.
func (s *AuthService) Signup(req *dto.SignupRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: a valid email is required", ErrValidation)
	}
	if req.Password == "" {
		return nil, fmt.Errorf("%w: a password is required", ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		ID:          uuid.New(),
		Name:        req.Name,
		Email:       email,
		Password:    string(hash),
		Permissions: datatypes.NewJSONSlice([]models.Permission{models.PermissionUser}),
	}

	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, withMessage(ErrValidation, "an account already exists for email %s", email)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.startSession(&user)
}

// Signin verifies credentials and issues a session identical to signup's.
func (s *AuthService) Signin(req *dto.SigninRequest) (*dto.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, withMessage(ErrNotFound, "No such user found for email %s", email)
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.startSession(&user)
}

// Signout only clears the session cookie. It touches no state and cannot fail.
func (s *AuthService) Signout() *dto.SignoutResponse {
	return &dto.SignoutResponse{
		Message: "Goodbye!",
		Cookie:  clearedSessionCookie(),
	}
}

// Me resolves the authenticated user's own record.
func (s *AuthService) Me(userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, ErrAuthRequired
	}

	var user models.User
	if err := s.db.First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

func (s *AuthService) startSession(user *models.User) (*dto.AuthResponse, error) {
	token, err := signSessionToken(s.cfg, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &dto.AuthResponse{
		Token:  token,
		Cookie: sessionCookie(s.cfg, token),
		User:   dto.NewUserResponse(user),
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
