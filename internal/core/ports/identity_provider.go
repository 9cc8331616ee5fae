package ports

import (
	"context"
	"net/http"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// IdentityProvider extracts the session claim carried by a request. It
// returns domain.ErrNoSession when there is none or it cannot be trusted.
type IdentityProvider interface {
	CurrentSession(r *http.Request) (*domain.SessionClaim, error)
}

// SessionRevoker invalidates an issued session before it expires.
type SessionRevoker interface {
	Revoke(ctx context.Context, claim *domain.SessionClaim) error
}
