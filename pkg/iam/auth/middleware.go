package auth

import (
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// AuthContext is the resolved identity of the requesting user
type AuthContext struct {
	UserID    kernel.UserID
	Email     kernel.Email
	SessionID string
}

// SessionMiddleware resolves the session cookie into an AuthContext.
// Any failure (missing cookie, bad signature, revoked session, store
// unreachable) ends the request with 401; handlers never see a partial
// identity.
type SessionMiddleware struct {
	tokens     TokenService
	sessions   SessionStore
	cookieName string
}

// NewSessionMiddleware creates the session middleware
func NewSessionMiddleware(tokens TokenService, sessions SessionStore, cookieName string) *SessionMiddleware {
	return &SessionMiddleware{
		tokens:     tokens,
		sessions:   sessions,
		cookieName: cookieName,
	}
}

// Authenticate returns the Fiber handler enforcing a live session
func (m *SessionMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies(m.cookieName)
		if token == "" {
			return ErrUnauthorized().WithDetail("reason", "missing session cookie")
		}

		claims, err := m.tokens.ValidateSessionToken(token)
		if err != nil {
			return ErrUnauthorized()
		}

		// The token may outlive the session (logout); the store is
		// authoritative. Store errors fail closed.
		session, err := m.sessions.Get(c.Context(), claims.SessionID)
		if err != nil {
			return ErrUnauthorized()
		}
		if session.UserID != claims.UserID {
			return ErrUnauthorized()
		}

		c.Locals(authContextKey, AuthContext{
			UserID:    claims.UserID,
			Email:     claims.Email,
			SessionID: claims.SessionID,
		})

		return c.Next()
	}
}

// GetAuthContext extracts the resolved identity from the request
func GetAuthContext(c *fiber.Ctx) (AuthContext, bool) {
	authContext, ok := c.Locals(authContextKey).(AuthContext)
	return authContext, ok
}
