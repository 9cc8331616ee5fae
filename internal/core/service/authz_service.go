package service

import (
	"github.com/99minutos/logistics-portal/internal/core/domain"
	"github.com/99minutos/logistics-portal/internal/core/ports"
)

// AuthzService resolves role sets against a role-permission table.
// The table is read-only after construction, so one instance is shared by
// all requests without locking.
type AuthzService struct {
	table domain.RolePermissionMap
}

// NewAuthzService wraps table. A nil table falls back to the compiled-in default.
func NewAuthzService(table domain.RolePermissionMap) *AuthzService {
	if table == nil {
		table = domain.DefaultRolePermissions()
	}
	return &AuthzService{table: table}
}

// HasPermission reports whether any of roles grants permission.
//
// Evaluation order:
//  1. empty roles or permission deny;
//  2. admin grants everything, whatever its table entry says;
//  3. a permission id stored verbatim in the role list grants that permission;
//  4. any role whose table entry contains permission grants;
//  5. everything else denies, unknown roles included.
func (s *AuthzService) HasPermission(roles []domain.Role, permission domain.Permission) bool {
	if len(roles) == 0 || permission == "" {
		return false
	}

	for _, r := range roles {
		if r == domain.RoleAdmin {
			return true
		}
	}

	// Some accounts carry ad-hoc grants in the role slot.
	for _, r := range roles {
		if string(r) == string(permission) {
			return true
		}
	}

	for _, r := range roles {
		if s.table[r].Has(permission) {
			return true
		}
	}
	return false
}

// HasAnyRole reports whether roles and allowed intersect. It backs the older
// allow-list style route guards and does not consult the table.
func (s *AuthzService) HasAnyRole(roles []domain.Role, allowed []domain.Role) bool {
	for _, have := range roles {
		for _, want := range allowed {
			if have == want {
				return true
			}
		}
	}
	return false
}

// EffectivePermissions lists the registered permissions roles grant, in
// catalog order.
func (s *AuthzService) EffectivePermissions(roles []domain.Role) []domain.Permission {
	out := []domain.Permission{}
	for _, p := range domain.AllPermissions() {
		if s.HasPermission(roles, p) {
			out = append(out, p)
		}
	}
	return out
}

// ListPermissionsByDomain returns the permission registry grouped by domain.
func (s *AuthzService) ListPermissionsByDomain() []ports.PermissionGroup {
	byDomain := domain.PermissionsByDomain()
	groups := make([]ports.PermissionGroup, 0, len(byDomain))
	for _, d := range domain.PermissionDomains() {
		groups = append(groups, ports.PermissionGroup{Domain: d, Permissions: byDomain[d]})
	}
	return groups
}

// ListRoles returns every registered role with the number of registered
// permissions it grants.
func (s *AuthzService) ListRoles() []ports.RoleSummary {
	defs := domain.Roles()
	out := make([]ports.RoleSummary, 0, len(defs))
	for _, def := range defs {
		out = append(out, ports.RoleSummary{
			ID:              def.ID,
			DisplayName:     def.DisplayName,
			PermissionCount: len(s.EffectivePermissions([]domain.Role{def.ID})),
		})
	}
	return out
}
