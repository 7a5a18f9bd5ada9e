package auth

import (
	"context"
	"time"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

// Session is one live login, tracked server-side so logout can revoke
// tokens before they expire
type Session struct {
	ID        string        `json:"id"`
	UserID    kernel.UserID `json:"user_id"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// SessionStore persists live sessions
type SessionStore interface {
	// Save stores the session for at most ttl
	Save(ctx context.Context, session *Session, ttl time.Duration) error

	// Get retrieves a live session by id
	Get(ctx context.Context, id string) (*Session, error)

	// Delete revokes a session. Deleting a missing session is a no-op.
	Delete(ctx context.Context, id string) error
}

// PasswordService hashes and verifies account passwords
type PasswordService interface {
	Hash(plain string) (string, error)
	Compare(hash, plain string) error
}

// TokenClaims is the verified content of a session token
type TokenClaims struct {
	UserID    kernel.UserID
	Email     kernel.Email
	SessionID string
	ExpiresAt time.Time
}

// TokenService signs and verifies session tokens
type TokenService interface {
	// GenerateSessionToken issues a signed token bound to a session
	GenerateSessionToken(userID kernel.UserID, email kernel.Email, sessionID string, ttl time.Duration) (string, error)

	// ValidateSessionToken verifies signature and expiry
	ValidateSessionToken(token string) (*TokenClaims, error)
}
