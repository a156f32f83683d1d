// Package token issues and verifies the signed access/refresh tokens
// carried by both principal types.
package token

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Principal type tags carried in the "typ" claim. Middleware rejects a
// token presented to the wrong principal's routes based on this tag.
const (
	TypeUser     = "user"
	TypeEmployee = "employee"
)

const (
	defaultAccessTTL  = 24 * time.Hour
	defaultRefreshTTL = 7 * 24 * time.Hour
)

type Claims struct {
	SubjectID string
	Type      string
}

type Service interface {
	IssueAccessToken(claims Claims) (string, error)
	IssueRefreshToken(claims Claims) (string, error)
	// Verify checks signature and expiry. It returns (nil, false) on any
	// failure so callers can uniformly respond 401; it never panics.
	Verify(tokenString string) (*Claims, bool)
}

type service struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewService(secret string, accessTTL, refreshTTL time.Duration) Service {
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}
	return &service{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// NewServiceFromEnv reads JWT_SECRET, JWT_EXPIRES_IN and
// JWT_REFRESH_EXPIRES_IN (Go duration strings, e.g. "24h").
func NewServiceFromEnv() Service {
	accessTTL, _ := time.ParseDuration(os.Getenv("JWT_EXPIRES_IN"))
	refreshTTL, _ := time.ParseDuration(os.Getenv("JWT_REFRESH_EXPIRES_IN"))
	return NewService(os.Getenv("JWT_SECRET"), accessTTL, refreshTTL)
}

func (s *service) IssueAccessToken(claims Claims) (string, error) {
	return s.sign(claims, s.accessTTL)
}

func (s *service) IssueRefreshToken(claims Claims) (string, error) {
	return s.sign(claims, s.refreshTTL)
}

func (s *service) sign(claims Claims, ttl time.Duration) (string, error) {
	typ := claims.Type
	if typ == "" {
		typ = TypeUser
	}

	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": claims.SubjectID,
		"typ": typ,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

func (s *service) Verify(tokenString string) (*Claims, bool) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, false
	}

	sub, ok := mapClaims["sub"].(string)
	if !ok || sub == "" {
		return nil, false
	}

	typ, _ := mapClaims["typ"].(string)
	if typ == "" {
		typ = TypeUser
	}

	return &Claims{SubjectID: sub, Type: typ}, true
}
