package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is how long issued tokens stay valid
const DefaultTTL = 24 * time.Hour

// Claims is the identity carried by a bearer token
type Claims struct {
	UserID   string
	Username string
}

// Manager issues and validates HS256 bearer tokens
type Manager struct {
	secret []byte
	ttl    time.Duration
}

// NewManager creates a token manager. A ttl of 0 uses DefaultTTL.
func NewManager(secret string, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Manager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue mints a signed token for the user
func (m *Manager) Issue(userID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":      userID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(m.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Validate parses and verifies a token, returning the identity it carries
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	userID, _ := mapClaims["sub"].(string)
	username, _ := mapClaims["username"].(string)
	if userID == "" || username == "" {
		return nil, errors.New("token missing identity claims")
	}

	return &Claims{UserID: userID, Username: username}, nil
}
