package ports

import (
	"context"
	"net/http"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

// RoleSummary is the introspection view of a registered role.
type RoleSummary struct {
	ID              domain.Role `json:"id"`
	DisplayName     string      `json:"display_name"`
	PermissionCount int         `json:"permission_count"`
}

// PermissionGroup lists the permissions of one resource domain.
type PermissionGroup struct {
	Domain      domain.PermissionDomain `json:"domain"`
	Permissions []domain.Permission     `json:"permissions"`
}

// Authorizer decides whether a set of roles grants a permission.
type Authorizer interface {
	HasPermission(roles []domain.Role, permission domain.Permission) bool
	HasAnyRole(roles []domain.Role, allowed []domain.Role) bool
	EffectivePermissions(roles []domain.Role) []domain.Permission
	ListPermissionsByDomain() []PermissionGroup
	ListRoles() []RoleSummary
}

// SessionValidator turns an inbound request into a validated principal.
type SessionValidator interface {
	ValidateSession(ctx context.Context, r *http.Request) domain.SessionResult
}
