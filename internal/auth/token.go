// Package auth implements issuing and verifying signed identity tokens.
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"recipebox/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	// Issuer and Audience identify tokens minted by this API.
	Issuer   = "recipebox-api"
	Audience = "recipebox-client"

	// DefaultTokenLifetime is how long an issued token stays valid.
	DefaultTokenLifetime = 7 * 24 * time.Hour
)

// TokenService issues and verifies HS256-signed identity tokens embedding a
// user ID and expiry.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService returns a TokenService with the default 7-day lifetime.
func NewTokenService(secret string) *TokenService {
	return NewTokenServiceWithLifetime(secret, DefaultTokenLifetime)
}

// NewTokenServiceWithLifetime returns a TokenService with a custom lifetime.
// Tests use short or negative lifetimes to exercise expiry handling.
func NewTokenServiceWithLifetime(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Issue produces a signed token embedding the user identifier and an expiry.
func (s *TokenService) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("JWT secret not configured")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iss": Issuer,
		"aud": Audience,
		"exp": now.Add(s.lifetime).Unix(),
		"iat": now.Unix(),
		"nbf": now.Unix(),
		"jti": generateJTI(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user ID.
// An expired token yields the TokenExpired variant; any other defect
// (bad signature, malformed structure, wrong issuer/audience) yields
// InvalidToken.
func (s *TokenService) Verify(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(Issuer),
		jwt.WithAudience(Audience),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, models.NewTokenExpiredError()
		}
		return 0, models.NewInvalidTokenError()
	}
	if !token.Valid {
		return 0, models.NewInvalidTokenError()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, models.NewInvalidTokenError()
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return 0, models.NewInvalidTokenError()
	}

	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil || userID == 0 {
		return 0, models.NewInvalidTokenError()
	}

	return uint(userID), nil
}

// generateJTI creates a unique JWT ID to prevent replay attacks.
func generateJTI() string {
	return fmt.Sprintf("%d-%s", time.Now().Unix(), uuid.New().String()[:8])
}
