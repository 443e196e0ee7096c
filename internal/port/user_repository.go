package port

import (
	"context"

	"github.com/controlhs/datacore/internal/core/domain"
)

type UserRepository interface {
	// GetUserByUsername retrieves a user by login name, nil when absent
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// CreateUser persists a new user
	CreateUser(ctx context.Context, user domain.User) error

	// UpdatePassword replaces the stored password hash for a user
	UpdatePassword(ctx context.Context, userID, passwordHash string) error
}
