package auth

import (
	"time"

	"github.com/Abraxas-365/chamba/pkg/errx"
	"github.com/Abraxas-365/chamba/pkg/iam/user"
	"github.com/Abraxas-365/chamba/pkg/kernel"
	"github.com/Abraxas-365/chamba/pkg/validatex"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// AuthHandlers provides the account/session HTTP surface
type AuthHandlers struct {
	users     user.UserRepository
	passwords PasswordService
	tokens    TokenService
	sessions  SessionStore
	cfg       Config
}

// NewAuthHandlers creates the auth handlers
func NewAuthHandlers(
	users user.UserRepository,
	passwords PasswordService,
	tokens TokenService,
	sessions SessionStore,
	cfg Config,
) *AuthHandlers {
	return &AuthHandlers{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		sessions:  sessions,
		cfg:       cfg,
	}
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type IdentityResponse struct {
	ID    kernel.UserID `json:"id"`
	Email kernel.Email  `json:"email"`
	Name  string        `json:"name"`
}

// Register creates a new account
// POST /auth/register
func (h *AuthHandlers) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrRegistry.New(validatex.CodeInvalidPayload).WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return err
	}

	hash, err := h.passwords.Hash(req.Password)
	if err != nil {
		return errx.Wrap(err, "failed to hash password", errx.TypeInternal)
	}

	now := time.Now()
	newUser := &user.User{
		ID:           kernel.NewUserID(uuid.NewString()),
		Email:        kernel.Email(req.Email),
		Name:         req.Name,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := h.users.Create(c.Context(), newUser); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(IdentityResponse{
		ID:    newUser.ID,
		Email: newUser.Email,
		Name:  newUser.Name,
	})
}

// Login verifies credentials, opens a session and sets the cookie
// POST /auth/login
func (h *AuthHandlers) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return validatex.ErrRegistry.New(validatex.CodeInvalidPayload).WithDetail("parse_error", err.Error())
	}
	if err := validatex.Struct(req); err != nil {
		return err
	}

	// Lookup failures and bad passwords share one response so the
	// endpoint cannot be used to probe registered emails
	account, err := h.users.FindByEmail(c.Context(), kernel.Email(req.Email))
	if err != nil {
		return ErrInvalidCredentials()
	}
	if err := h.passwords.Compare(account.PasswordHash, req.Password); err != nil {
		return ErrInvalidCredentials()
	}

	now := time.Now()
	session := &Session{
		ID:        uuid.NewString(),
		UserID:    account.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(h.cfg.JWT.SessionTTL),
	}
	if err := h.sessions.Save(c.Context(), session, h.cfg.JWT.SessionTTL); err != nil {
		return errx.Wrap(err, "failed to store session", errx.TypeInternal)
	}

	token, err := h.tokens.GenerateSessionToken(account.ID, account.Email, session.ID, h.cfg.JWT.SessionTTL)
	if err != nil {
		return err
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    token,
		Expires:  session.ExpiresAt,
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: h.cfg.Cookie.HTTPOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.JSON(IdentityResponse{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
	})
}

// Logout revokes the current session and clears the cookie
// POST /auth/logout
func (h *AuthHandlers) Logout(c *fiber.Ctx) error {
	if authContext, ok := GetAuthContext(c); ok {
		if err := h.sessions.Delete(c.Context(), authContext.SessionID); err != nil {
			return errx.Wrap(err, "failed to revoke session", errx.TypeInternal)
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.Cookie.Name,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		Secure:   h.cfg.Cookie.Secure,
		HTTPOnly: h.cfg.Cookie.HTTPOnly,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return c.SendStatus(fiber.StatusNoContent)
}

// Me returns the authenticated identity
// GET /auth/me
func (h *AuthHandlers) Me(c *fiber.Ctx) error {
	authContext, ok := GetAuthContext(c)
	if !ok {
		return ErrUnauthorized()
	}

	account, err := h.users.FindByID(c.Context(), authContext.UserID)
	if err != nil {
		return err
	}

	return c.JSON(IdentityResponse{
		ID:    account.ID,
		Email: account.Email,
		Name:  account.Name,
	})
}

// RegisterRoutes registers the auth routes
func RegisterRoutes(app *fiber.App, handlers *AuthHandlers, middleware *SessionMiddleware) {
	api := app.Group("/auth")

	api.Post("/register", handlers.Register)
	api.Post("/login", handlers.Login)
	api.Post("/logout", middleware.Authenticate(), handlers.Logout)
	api.Get("/me", middleware.Authenticate(), handlers.Me)
}
