package ports

import (
	"context"

	"fastex/internal/core/domain/model/user"
)

// UserRepository defines the persistence contract for registered customers.
type UserRepository interface {
	// Add persists a new user. Returns user.ErrUsernameTaken when the username
	// is already registered.
	Add(ctx context.Context, aggregate *user.User) error

	// GetByUsername returns an errs.ObjectNotFoundError for unknown usernames.
	GetByUsername(ctx context.Context, username string) (*user.User, error)
}
