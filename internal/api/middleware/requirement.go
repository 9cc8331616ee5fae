package middleware

import (
	"github.com/99minutos/logistics-portal/internal/core/domain"
	"github.com/99minutos/logistics-portal/internal/core/ports"
)

type requirementKind int

// The zero value is invalid so an unset Requirement is never satisfied.
const (
	kindInvalid requirementKind = iota
	kindSession
	kindPermission
	kindAnyPermission
	kindRoles
)

// Requirement describes what a route needs beyond a live session. Build one
// with Session, Permission, AnyPermission or Roles; the zero value denies.
type Requirement struct {
	kind        requirementKind
	permissions []domain.Permission
	roles       []domain.Role
}

// Session requires only a validated, live session.
func Session() Requirement {
	return Requirement{kind: kindSession}
}

// Permission requires p. An empty p is never satisfied.
func Permission(p domain.Permission) Requirement {
	return Requirement{kind: kindPermission, permissions: []domain.Permission{p}}
}

// AnyPermission requires at least one of ps.
func AnyPermission(ps ...domain.Permission) Requirement {
	return Requirement{kind: kindAnyPermission, permissions: ps}
}

// Roles is the allow-list form used by older routes: the principal must hold
// one of rs. The role-permission table is not consulted, so admin passes
// only when listed.
func Roles(rs ...domain.Role) Requirement {
	return Requirement{kind: kindRoles, roles: rs}
}

func (r Requirement) satisfiedBy(authz ports.Authorizer, roles []domain.Role) bool {
	switch r.kind {
	case kindSession:
		return true
	case kindPermission, kindAnyPermission:
		for _, p := range r.permissions {
			if authz.HasPermission(roles, p) {
				return true
			}
		}
		return false
	case kindRoles:
		return authz.HasAnyRole(roles, r.roles)
	}
	return false
}
