package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/logistics-portal/internal/core/domain"
)

func roles(rs ...domain.Role) []domain.Role { return rs }

func TestHasPermission_EmptyInputDenies(t *testing.T) {
	svc := NewAuthzService(nil)

	for _, p := range domain.AllPermissions() {
		assert.False(t, svc.HasPermission(nil, p), "nil roles must deny %s", p)
		assert.False(t, svc.HasPermission(roles(), p), "empty roles must deny %s", p)
	}
	assert.False(t, svc.HasPermission(roles(domain.RoleAdmin), ""), "empty permission must deny even admin")
}

func TestHasPermission_AdminIsWildcard(t *testing.T) {
	// Admin's table entry is deliberately empty: the grant must not come from the table.
	svc := NewAuthzService(domain.RolePermissionMap{domain.RoleAdmin: domain.NewPermissionSet()})

	candidates := append(domain.AllPermissions(), "nonexistent-future-permission", "invoice-export")
	for _, p := range candidates {
		assert.True(t, svc.HasPermission(roles(domain.RoleAdmin), p), "admin must be granted %s", p)
		assert.True(t, svc.HasPermission(roles("totally-unknown-role", domain.RoleAdmin), p))
	}
}

func TestHasPermission_Monotonic(t *testing.T) {
	svc := NewAuthzService(nil)

	var all []domain.Role
	for _, def := range domain.Roles() {
		all = append(all, def.ID)
	}

	for i := range all {
		subset := all[:i+1]
		superset := append(append([]domain.Role{}, subset...), "totally-unknown-role")
		for _, p := range domain.AllPermissions() {
			if svc.HasPermission(subset, p) {
				assert.True(t, svc.HasPermission(superset, p), "adding roles revoked %s from %v", p, subset)
				assert.True(t, svc.HasPermission(all, p))
			}
		}
	}
}

func TestHasPermission_PermissionStoredAsRole(t *testing.T) {
	svc := NewAuthzService(nil)

	assert.True(t, svc.HasPermission(roles(domain.Role(domain.PermUserManagement)), domain.PermUserManagement))
	assert.True(t, svc.HasPermission(roles("invoice-export"), "invoice-export"))
	assert.False(t, svc.HasPermission(roles("invoice-export"), domain.PermOrderView))
}

func TestHasPermission_UnknownRoleIsInert(t *testing.T) {
	svc := NewAuthzService(nil)

	for _, p := range domain.AllPermissions() {
		assert.False(t, svc.HasPermission(roles("totally-unknown-role"), p))
	}
	assert.True(t, svc.HasPermission(roles("totally-unknown-role"), "totally-unknown-role"))
}

func TestHasPermission_Idempotent(t *testing.T) {
	svc := NewAuthzService(nil)
	in := roles(domain.RoleSupport, domain.RoleDriver)

	for _, p := range append(domain.AllPermissions(), "x") {
		first := svc.HasPermission(in, p)
		second := svc.HasPermission(in, p)
		assert.Equal(t, first, second, "result for %s changed between calls", p)
	}
}

func TestHasPermission_TableScenarios(t *testing.T) {
	svc := NewAuthzService(nil)

	tests := []struct {
		name  string
		roles []domain.Role
		perm  domain.Permission
		want  bool
	}{
		{"support cannot edit orders", roles(domain.RoleSupport), domain.PermOrderEdit, false},
		{"support can track orders", roles(domain.RoleSupport), domain.PermOrderTrack, true},
		{"admin gets future permissions", roles(domain.RoleAdmin), "nonexistent-future-permission", true},
		{"business customer can add orders", roles(domain.RoleCustomerBusiness), domain.PermOrderAdd, true},
		{"business customer cannot manage users", roles(domain.RoleCustomerBusiness), domain.PermUserManagement, false},
		{"driver tracks orders", roles(domain.RoleDriver), domain.PermOrderTrack, true},
		{"driver cannot delete drivers", roles(domain.RoleDriver), domain.PermDriverDelete, false},
		{"multi-role union", roles(domain.RoleDriver, domain.RoleCompany), domain.PermDriverDelete, true},
		{"customer default role", roles(domain.RoleCustomer), domain.PermOrderAdd, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.HasPermission(tt.roles, tt.perm))
		})
	}
}

func TestHasAnyRole(t *testing.T) {
	svc := NewAuthzService(nil)

	assert.True(t, svc.HasAnyRole(roles(domain.RoleDriver, domain.RoleEditor), roles(domain.RoleAdmin, domain.RoleEditor)))
	assert.False(t, svc.HasAnyRole(roles(domain.RoleSupport), roles(domain.RoleAdmin, domain.RoleEditor)))
	assert.False(t, svc.HasAnyRole(nil, roles(domain.RoleAdmin)))
	assert.False(t, svc.HasAnyRole(roles(domain.RoleAdmin), nil))
}

func TestDefaultTable_AdminIsSuperset(t *testing.T) {
	table := domain.DefaultRolePermissions()
	admin := table[domain.RoleAdmin]

	for role, perms := range table {
		for p := range perms {
			assert.True(t, admin.Has(p), "admin lacks %s granted to %s", p, role)
		}
	}
	for role := range table {
		assert.True(t, role.Known(), "table references unregistered role %s", role)
	}
}

func TestEffectivePermissions(t *testing.T) {
	svc := NewAuthzService(nil)

	assert.Equal(t, domain.AllPermissions(), svc.EffectivePermissions(roles(domain.RoleAdmin)))
	assert.Equal(t,
		[]domain.Permission{domain.PermOrderView, domain.PermOrderTrack},
		svc.EffectivePermissions(roles(domain.RoleDriver)))
	assert.Empty(t, svc.EffectivePermissions(nil))
}

func TestListPermissionsByDomain(t *testing.T) {
	svc := NewAuthzService(nil)

	groups := svc.ListPermissionsByDomain()
	require.Len(t, groups, len(domain.PermissionDomains()))

	total := 0
	for _, g := range groups {
		require.NotEmpty(t, g.Permissions)
		for _, p := range g.Permissions {
			assert.Equal(t, g.Domain, p.Domain())
		}
		total += len(g.Permissions)
	}
	assert.Equal(t, len(domain.AllPermissions()), total)

	// Mutating a returned listing must not leak into the registry.
	groups[0].Permissions[0] = "tampered"
	assert.NotEqual(t, domain.Permission("tampered"), svc.ListPermissionsByDomain()[0].Permissions[0])
}

func TestListRoles(t *testing.T) {
	svc := NewAuthzService(nil)

	summaries := svc.ListRoles()
	require.Len(t, summaries, len(domain.Roles()))

	counts := make(map[domain.Role]int, len(summaries))
	for _, s := range summaries {
		assert.NotEmpty(t, s.DisplayName)
		counts[s.ID] = s.PermissionCount
	}
	assert.Equal(t, len(domain.AllPermissions()), counts[domain.RoleAdmin])
	assert.Equal(t, 2, counts[domain.RoleDriver])
}
