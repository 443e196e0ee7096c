package port

import (
	"context"

	"github.com/controlhs/datacore/internal/core/domain"
)

type SessionStore interface {
	// SaveSession stores a session record until its expiry
	SaveSession(ctx context.Context, session domain.Session) error

	// GetSession retrieves the session for a token, nil when absent or expired
	GetSession(ctx context.Context, token string) (*domain.Session, error)

	// DeleteSession revokes a session
	DeleteSession(ctx context.Context, token string) error
}
