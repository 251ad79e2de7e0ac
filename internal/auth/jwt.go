// File: internal/auth/jwt.go
package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrEmptySecret  = errors.New("jwt secret cannot be empty")
)

// Identity is what a verified bearer token proves about its holder.
type Identity struct {
	UserID  uint
	Name    string
	Email   string
	Service bool // minted server-side for webhook adapters
}

type claims struct {
	UserID  uint   `json:"uid"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Service bool   `json:"svc,omitempty"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 bearer tokens.
type TokenManager struct {
	secret []byte
	now    func() time.Time
}

func NewTokenManager(secret string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenManager{secret: []byte(secret), now: time.Now}, nil
}

// Issue signs a token for identity that expires after ttl.
func (m *TokenManager) Issue(identity Identity, ttl time.Duration) (string, error) {
	if identity.UserID == 0 {
		return "", errors.New("user ID cannot be zero")
	}
	if ttl <= 0 {
		return "", errors.New("token ttl must be positive")
	}

	now := m.now()
	c := claims{
		UserID:  identity.UserID,
		Name:    identity.Name,
		Email:   identity.Email,
		Service: identity.Service,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(identity.UserID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return token.SignedString(m.secret)
}

// Verify returns the identity embedded in tokenString. Every failure
// (malformed, bad signature, wrong algorithm, expired) wraps ErrUnauthorized.
func (m *TokenManager) Verify(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Identity{}, fmt.Errorf("%w: empty token", ErrUnauthorized)
	}

	var c claims
	token, err := jwt.ParseWithClaims(tokenString, &c, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	if !token.Valid || c.UserID == 0 {
		return Identity{}, fmt.Errorf("%w: invalid claims", ErrUnauthorized)
	}

	return Identity{
		UserID:  c.UserID,
		Name:    c.Name,
		Email:   c.Email,
		Service: c.Service,
	}, nil
}
