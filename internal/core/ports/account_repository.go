package ports

import (
	"context"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// AccountRepository is the read side of the accounts collection used for
// session liveness checks. Implementations must honour ctx cancellation.
type AccountRepository interface {
	// FindActiveByEmail returns the non-deleted account registered under email,
	// compared case-insensitively, or domain.ErrAccountNotFound.
	FindActiveByEmail(ctx context.Context, email string) (*domain.Account, error)
}
