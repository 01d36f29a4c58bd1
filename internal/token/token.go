// Package token issues and verifies the signed session tokens that carry a
// user's identity and role claims.
package token

import (
	"strconv"
	"time"

	"inkwell/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "inkwell-api"

// Claims is the identity and role payload embedded in a session token.
type Claims struct {
	UserID  uint
	IsAdmin bool
}

// Service signs and verifies session tokens with a shared HMAC secret.
// Tokens are stateless; validity is signature plus expiry.
type Service struct {
	secret []byte
	ttl    time.Duration
}

// NewService creates a token Service. ttl bounds the lifetime of every
// issued token.
func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue signs the claim set and returns the compact token string.
func (s *Service) Issue(claims Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":     strconv.FormatUint(uint64(claims.UserID), 10),
		"isAdmin": claims.IsAdmin,
		"iss":     issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(s.ttl).Unix(),
		"jti":     uuid.NewString(),
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string and returns the embedded
// claims. Any failure (missing, malformed, tampered, expired, wrong signing
// method) yields an Unauthorized error.
func (s *Service) Verify(tokenString string) (Claims, error) {
	if tokenString == "" {
		return Claims{}, models.NewUnauthorizedError("Unauthorized")
	}

	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, models.NewUnauthorizedError("Unauthorized")
		}
		return s.secret, nil
	}, jwt.WithIssuer(issuer), jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return Claims{}, models.NewUnauthorizedError("Unauthorized")
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, models.NewUnauthorizedError("Unauthorized")
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return Claims{}, models.NewUnauthorizedError("Unauthorized")
	}
	userID, err := strconv.ParseUint(sub, 10, 32)
	if err != nil {
		return Claims{}, models.NewUnauthorizedError("Unauthorized")
	}

	isAdmin, _ := mapClaims["isAdmin"].(bool)

	return Claims{UserID: uint(userID), IsAdmin: isAdmin}, nil
}
