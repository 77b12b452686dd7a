package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrSessionNotFound = errors.New("session not found")

// Session is the explicit per-login state. It is created on login, loaded on
// every authenticated request and removed on logout.
type Session struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Role      Role      `json:"role"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewSession(userID, username string, role Role, ttl time.Duration, now time.Time) *Session {
	return &Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		IssuedAt:  now,
		ExpiresAt: now.Add(ttl),
	}
}

func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

func (s *Session) Can(capability Capability) bool {
	return s != nil && Can(s.Role, capability)
}

// SessionStore persists sessions between requests. Implementations must
// return ErrSessionNotFound for unknown or expired ids.
type SessionStore interface {
	SaveSession(ctx context.Context, s *Session, ttl time.Duration) error
	LoadSession(ctx context.Context, id string) (*Session, error)
	DeleteSession(ctx context.Context, id string) error
}
