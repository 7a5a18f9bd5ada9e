package user

import (
	"context"

	"github.com/Abraxas-365/chamba/pkg/kernel"
)

type UserRepository interface {
	// Create creates a new user account
	Create(ctx context.Context, user *User) error

	// FindByID retrieves a user by ID
	FindByID(ctx context.Context, id kernel.UserID) (*User, error)

	// FindByEmail retrieves a user by email
	FindByEmail(ctx context.Context, email kernel.Email) (*User, error)
}
