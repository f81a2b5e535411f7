package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopcore/backend/internal/config"
	"github.com/shopcore/backend/internal/dto"
)

// SessionCookieName is the cookie the boundary layer sets on auth-producing
// operations and clears on signout.
const SessionCookieName = "token"

// signSessionToken issues the session credential: a signed claim of the user
// identity, verifiable without a store round trip.
func signSessionToken(cfg *config.Config, userID uuid.UUID) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"userId": userID.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(cfg.SessionExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

func sessionCookie(cfg *config.Config, token string) dto.SessionCookie {
	return dto.SessionCookie{
		Name:     SessionCookieName,
		Value:    token,
		MaxAge:   cfg.SessionExpiry,
		HTTPOnly: true,
	}
}

func clearedSessionCookie() dto.SessionCookie {
	return dto.SessionCookie{
		Name:     SessionCookieName,
		MaxAge:   -1,
		HTTPOnly: true,
	}
}
