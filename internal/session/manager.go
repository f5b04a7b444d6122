package session

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid session token")

// tokenClaims carries the session id inside the signed cookie value.
type tokenClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Manager signs session ids into cookie tokens and resolves tokens back to
// sessions. A tampered cookie fails signature verification before any store
// lookup happens.
type Manager struct {
	store  Store
	secret []byte
	ttl    time.Duration
}

// NewManager creates a new Manager
func NewManager(store Store, secret string, ttl time.Duration) *Manager {
	return &Manager{
		store:  store,
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue creates a session for the user and returns the signed cookie value.
func (m *Manager) Issue(ctx context.Context, sess Session) (string, error) {
	id, err := m.store.Create(ctx, sess)
	if err != nil {
		return "", err
	}

	claims := &tokenClaims{
		SessionID: id,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "workout-tracker",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", err
	}
	return signed, nil
}

// Resolve verifies a cookie token and loads the session it references.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	id, err := m.verify(token)
	if err != nil {
		return nil, err
	}
	return m.store.Get(ctx, id)
}

// Destroy deletes the session referenced by the token. An invalid token is
// not an error: there is nothing left to destroy either way.
func (m *Manager) Destroy(ctx context.Context, token string) error {
	id, err := m.verify(token)
	if err != nil {
		return nil
	}
	return m.store.Delete(ctx, id)
}

func (m *Manager) verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &tokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}

	claims, ok := parsed.Claims.(*tokenClaims)
	if !ok || !parsed.Valid || claims.SessionID == "" {
		return "", ErrInvalidToken
	}
	return claims.SessionID, nil
}
