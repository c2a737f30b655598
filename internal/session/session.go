package session

import (
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"gamenight-backend/internal/schedule"
)

var (
	// ErrAuthFailure is deliberately generic: it never discloses whether the
	// name or the password was the mismatched part.
	ErrAuthFailure = errors.New("invalid name or password")
	// ErrTokenInvalid flags a missing, malformed, or expired session token.
	ErrTokenInvalid = errors.New("session token invalid")
)

// claims carries the authenticated display name inside a signed token.
type claims struct {
	Name string `json:"name"`
	jwtv5.RegisteredClaims
}

// Manager is the access gate. The group secret is shared and global: anyone
// who knows it may assume any non-empty name, and concurrent sessions under
// the same name merge their writes under one key.
type Manager struct {
	password   string
	signingKey []byte
	ttl        time.Duration
}

// NewManager creates the gate with the resolved group password. When no
// signing key is configured a random one is generated, which invalidates
// outstanding tokens on restart.
func NewManager(password string, signingKey []byte, ttl time.Duration) (*Manager, error) {
	if len(signingKey) == 0 {
		signingKey = make([]byte, 32)
		if _, err := rand.Read(signingKey); err != nil {
			return nil, fmt.Errorf("failed to generate signing key: %w", err)
		}
	}
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &Manager{password: password, signingKey: signingKey, ttl: ttl}, nil
}

// Authenticate checks the submitted credentials and returns the trimmed name
// on success. The password comparison is exact; any non-empty name passes.
func (m *Manager) Authenticate(name, password string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty name", schedule.ErrInvalidInput)
	}
	if subtle.ConstantTimeCompare([]byte(password), []byte(m.password)) != 1 {
		return "", ErrAuthFailure
	}
	return trimmed, nil
}

// Issue signs a session token binding the authenticated name.
func (m *Manager) Issue(name string) (string, error) {
	now := time.Now()
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims{
		Name: name,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
		},
	})

	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, nil
}

// Parse validates a session token and returns the name it binds.
func (m *Manager) Parse(tokenString string) (string, error) {
	var c claims
	token, err := jwtv5.ParseWithClaims(tokenString, &c, func(t *jwtv5.Token) (any, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.signingKey, nil
	})
	if err != nil || !token.Valid || c.Name == "" {
		return "", ErrTokenInvalid
	}
	return c.Name, nil
}
