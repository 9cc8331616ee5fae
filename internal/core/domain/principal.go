package domain

import (
	"strings"
	"time"
)

// SessionClaim is what the identity provider vouches for: a session that was
// issued to an email at some point. It says nothing about whether the account
// still exists.
type SessionClaim struct {
	SessionID string
	Subject   string
	Email     string
	Role      string
	Roles     []string
	ExpiresAt time.Time
}

// Principal is the authorization subject of a single request. It is rebuilt
// from the stored account on every request and never mutated.
type Principal struct {
	ID            string        `json:"id"`
	Email         string        `json:"email"`
	PrimaryRole   Role          `json:"primary_role"`
	Roles         []Role        `json:"roles"`
	AccountStatus AccountStatus `json:"account_status,omitempty"`
}

// HasRole reports whether r is among the principal's roles.
func (p *Principal) HasRole(r Role) bool {
	for _, have := range p.Roles {
		if have == r {
			return true
		}
	}
	return false
}

// NewPrincipal projects a stored account into a Principal.
func NewPrincipal(a *Account) *Principal {
	roles := NormalizeRoles(a.Roles, a.Role)
	status := a.Status
	if status == "" {
		status = AccountActive
	}
	return &Principal{
		ID:            a.ID,
		Email:         a.Email,
		PrimaryRole:   roles[0],
		Roles:         roles,
		AccountStatus: status,
	}
}

// unconfirmedPrincipal carries the identity a claim asserts before the
// account behind it has been found.
func unconfirmedPrincipal(c *SessionClaim) *Principal {
	roles := NormalizeRoles(c.Roles, c.Role)
	return &Principal{
		ID:          c.Subject,
		Email:       c.Email,
		PrimaryRole: roles[0],
		Roles:       roles,
	}
}

// NormalizeRoles collapses the array and singular storage shapes into one
// non-empty role list. The array wins when it has any usable entry, then the
// singular field, then DefaultRole. Blank entries and duplicates are dropped
// and the first-seen order is kept.
func NormalizeRoles(roles []string, role string) []Role {
	out := make([]Role, 0, len(roles)+1)
	seen := make(map[Role]struct{}, len(roles)+1)
	add := func(raw string) {
		r := Role(strings.TrimSpace(raw))
		if r == "" {
			return
		}
		if _, dup := seen[r]; dup {
			return
		}
		seen[r] = struct{}{}
		out = append(out, r)
	}

	for _, r := range roles {
		add(r)
	}
	if len(out) == 0 {
		add(role)
	}
	if len(out) == 0 {
		out = append(out, DefaultRole)
	}
	return out
}

// SessionResult is the outcome of validating the session behind a request.
//
// Principal is nil when validation failed before any identity was
// established (no session, infrastructure fault) and non-nil when the failure
// happened afterwards (account gone). Callers use that to choose 401 or 403.
type SessionResult struct {
	Authorized bool
	Principal  *Principal
	Err        error
}

// AuthorizedSession returns a successful result for p.
func AuthorizedSession(p *Principal) SessionResult {
	return SessionResult{Authorized: true, Principal: p}
}

// DeniedSession returns a failed result with no established identity.
func DeniedSession(err error) SessionResult {
	return SessionResult{Err: err}
}

// StaleSession returns a failed result for a claim whose account is not live.
func StaleSession(c *SessionClaim, err error) SessionResult {
	return SessionResult{Principal: unconfirmedPrincipal(c), Err: err}
}
