package middleware

import (
	"errors"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/99minutos/logistics-portal/internal/api/httperr"
	"github.com/99minutos/logistics-portal/internal/api/metrics"
	"github.com/99minutos/logistics-portal/internal/core/domain"
	"github.com/99minutos/logistics-portal/internal/core/ports"
)

const principalKey = "principal"

// Guard gates privileged routes. Every call validates the session and
// resolves the requirement from scratch; nothing is cached between requests
// because roles and account status can change at any time.
type Guard struct {
	sessions ports.SessionValidator
	authz    ports.Authorizer
	log      zerolog.Logger
}

// NewGuard returns a Guard.
func NewGuard(sessions ports.SessionValidator, authz ports.Authorizer, log zerolog.Logger) *Guard {
	return &Guard{sessions: sessions, authz: authz, log: log}
}

// Authorize validates the session behind c and checks req against the
// resulting principal. The principal is returned whenever an identity was
// established, even if the request is denied afterwards.
func (g *Guard) Authorize(c echo.Context, req Requirement) (*domain.Principal, error) {
	ctx := c.Request().Context()

	start := time.Now()
	res := g.sessions.ValidateSession(ctx, c.Request())
	metrics.SessionValidationDuration.
		WithLabelValues(outcome(res.Err)).
		Observe(time.Since(start).Seconds())

	if !res.Authorized {
		err := res.Err
		if err == nil {
			err = domain.ErrNoSession
			if res.Principal != nil {
				err = domain.ErrAccountNotFound
			}
		}
		return res.Principal, err
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
	}
	if res.Principal == nil {
		return nil, fmt.Errorf("%w: authorized session without principal", domain.ErrValidation)
	}

	if !req.satisfiedBy(g.authz, res.Principal.Roles) {
		return res.Principal, domain.ErrPermissionDenied
	}
	return res.Principal, nil
}

// Allow runs Authorize and, on denial, writes the error response itself.
// Callers must return without writing anything when ok is false.
func (g *Guard) Allow(c echo.Context, req Requirement) (*domain.Principal, bool) {
	p, err := g.Authorize(c, req)
	metrics.AuthzDecisionsTotal.WithLabelValues(outcome(err), httperr.Reason(err)).Inc()

	if err != nil {
		g.logDenial(c, p, err)
		if werr := httperr.Write(c, err); werr != nil {
			g.log.Error().Err(werr).Msg("write denial response")
		}
		return p, false
	}
	return p, true
}

// Require returns middleware enforcing req. On success the principal is
// available to later handlers through PrincipalFrom.
func (g *Guard) Require(req Requirement) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			p, ok := g.Allow(c, req)
			if !ok {
				return nil
			}
			SetPrincipal(c, p)
			return next(c)
		}
	}
}

// RequireSession enforces a live session without any permission check.
func (g *Guard) RequireSession() echo.MiddlewareFunc {
	return g.Require(Session())
}

// RequirePermission enforces a single permission.
func (g *Guard) RequirePermission(p domain.Permission) echo.MiddlewareFunc {
	return g.Require(Permission(p))
}

// RequireAnyPermission enforces at least one of ps.
func (g *Guard) RequireAnyPermission(ps ...domain.Permission) echo.MiddlewareFunc {
	return g.Require(AnyPermission(ps...))
}

// RequireRoles enforces role membership in an allow-list.
func (g *Guard) RequireRoles(rs ...domain.Role) echo.MiddlewareFunc {
	return g.Require(Roles(rs...))
}

// SetPrincipal stores p for PrincipalFrom.
func SetPrincipal(c echo.Context, p *domain.Principal) {
	c.Set(principalKey, p)
}

// PrincipalFrom returns the principal stored by a Guard middleware.
func PrincipalFrom(c echo.Context) (*domain.Principal, bool) {
	p, ok := c.Get(principalKey).(*domain.Principal)
	return p, ok && p != nil
}

// logDenial logs infrastructure failures as errors with the request line.
// Ordinary denials are expected traffic and only show up at debug level.
// Credentials are never logged.
func (g *Guard) logDenial(c echo.Context, p *domain.Principal, err error) {
	req := c.Request()
	if errors.Is(err, domain.ErrValidation) {
		g.log.Error().
			Err(err).
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("session validation failed")
		return
	}

	ev := g.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Str("reason", httperr.Reason(err))
	if p != nil {
		ev = ev.Str("principal_id", p.ID)
	}
	ev.Msg("request denied")
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeGranted
	case errors.Is(err, domain.ErrValidation):
		return metrics.OutcomeError
	default:
		return metrics.OutcomeDenied
	}
}
