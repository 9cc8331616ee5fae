// Package session adapts the portal's signed session tokens to the
// ports.IdentityProvider contract. Tokens are issued elsewhere; this package
// only verifies them.
package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// DefaultCookieName is the cookie the portal front-end stores its token in.
const DefaultCookieName = "session"

// RevocationChecker reports sessions that were signed out early.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// Claims is the payload of a portal session token.
type Claims struct {
	Email string   `json:"email"`
	Role  string   `json:"role,omitempty"`
	Roles []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider reads an HS256 session token from the session cookie or, for
// API clients, from a bearer Authorization header.
type JWTProvider struct {
	secret     []byte
	cookieName string
	revoked    RevocationChecker
	parser     *jwt.Parser
}

// NewJWTProvider returns a provider verifying tokens with secret. revoked may
// be nil, in which case sign-outs are not honoured before expiry.
func NewJWTProvider(secret, cookieName string, revoked RevocationChecker) *JWTProvider {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &JWTProvider{
		secret:     []byte(secret),
		cookieName: cookieName,
		revoked:    revoked,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}
}

// CurrentSession implements ports.IdentityProvider.
func (p *JWTProvider) CurrentSession(r *http.Request) (*domain.SessionClaim, error) {
	raw := p.token(r)
	if raw == "" {
		return nil, domain.ErrNoSession
	}

	var claims Claims
	tkn, err := p.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrNoSession, err)
	}
	if strings.TrimSpace(claims.Email) == "" {
		return nil, fmt.Errorf("%w: token carries no email", domain.ErrNoSession)
	}

	if p.revoked != nil && claims.ID != "" {
		revoked, err := p.revoked.IsRevoked(r.Context(), claims.ID)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", domain.ErrValidation, err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: session signed out", domain.ErrNoSession)
		}
	}

	claim := &domain.SessionClaim{
		SessionID: claims.ID,
		Subject:   claims.Subject,
		Email:     claims.Email,
		Role:      claims.Role,
		Roles:     claims.Roles,
	}
	if claims.ExpiresAt != nil {
		claim.ExpiresAt = claims.ExpiresAt.Time
	}
	return claim, nil
}

// token prefers the cookie; the header is only consulted when no cookie is set.
func (p *JWTProvider) token(r *http.Request) string {
	if c, err := r.Cookie(p.cookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
