package store

import (
	"context"

	"github.com/claydesk/flowtest-api/internal/domain"
)

// UserStore defines the interface for user data access.
type UserStore interface {
	// Create assigns the next user ID, stamps the creation time, and saves
	// the user. Returns ErrUsernameExists if the username is already taken;
	// the uniqueness check and the insert are atomic with respect to
	// concurrent Create calls.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// List returns all users in insertion order as copies.
	List(ctx context.Context) ([]domain.User, error)

	// GetByUsername retrieves a user by username.
	// Returns ErrUserNotFound if the user does not exist.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// Count reports the number of registered users.
	Count(ctx context.Context) (int, error)
}
