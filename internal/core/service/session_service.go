package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/99minutos/logistics-portal/internal/core/domain"
	"github.com/99minutos/logistics-portal/internal/core/ports"
)

// SessionService reconciles the session claim of a request with the live
// account it names.
type SessionService struct {
	identity ports.IdentityProvider
	accounts ports.AccountRepository
	log      zerolog.Logger
}

// NewSessionService returns a SessionService.
func NewSessionService(identity ports.IdentityProvider, accounts ports.AccountRepository, log zerolog.Logger) *SessionService {
	return &SessionService{identity: identity, accounts: accounts, log: log}
}

// ValidateSession runs the two gates in order: the identity provider must
// vouch for a claim, then exactly one account lookup must find it live.
// The lookup runs under ctx and is never retried; cancellation is reported
// as a validation failure.
func (s *SessionService) ValidateSession(ctx context.Context, r *http.Request) domain.SessionResult {
	claim, err := s.identity.CurrentSession(r)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return domain.DeniedSession(err)
		}
		s.log.Debug().Err(err).Msg("session claim rejected")
		return domain.DeniedSession(domain.ErrNoSession)
	}
	if claim == nil || claim.Email == "" {
		return domain.DeniedSession(domain.ErrNoSession)
	}

	account, err := s.accounts.FindActiveByEmail(ctx, claim.Email)
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return domain.StaleSession(claim, domain.ErrAccountNotFound)
	case err != nil:
		return domain.DeniedSession(fmt.Errorf("%w: %w", domain.ErrValidation, err))
	case account == nil:
		return domain.StaleSession(claim, domain.ErrAccountNotFound)
	case account.Suspended():
		return domain.StaleSession(claim, domain.ErrAccountSuspended)
	}

	return domain.AuthorizedSession(domain.NewPrincipal(account))
}
