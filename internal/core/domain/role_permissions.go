package domain

// PermissionSet is an unordered set of permissions.
type PermissionSet map[Permission]struct{}

// NewPermissionSet builds a set from the given permissions.
func NewPermissionSet(perms ...Permission) PermissionSet {
	s := make(PermissionSet, len(perms))
	for _, p := range perms {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is a member of s. A nil set has no members.
func (s PermissionSet) Has(p Permission) bool {
	_, ok := s[p]
	return ok
}

// RolePermissionMap assigns a permission set to each role. It is built once
// and never mutated afterwards.
type RolePermissionMap map[Role]PermissionSet

// DefaultRolePermissions returns the portal's compiled-in role table.
func DefaultRolePermissions() RolePermissionMap {
	return RolePermissionMap{
		RoleAdmin: NewPermissionSet(AllPermissions()...),
		RoleEditor: NewPermissionSet(
			PermCarrierView, PermCarrierAdd, PermCarrierEdit,
			PermDriverView, PermDriverAdd, PermDriverEdit,
			PermCustomerView, PermCustomerAdd, PermCustomerEdit,
			PermOrderView, PermOrderAdd, PermOrderEdit, PermOrderTrack,
			PermSettingsView,
		),
		RoleSupport: NewPermissionSet(
			PermCarrierView,
			PermDriverView,
			PermCustomerView, PermCustomerEdit,
			PermOrderView, PermOrderTrack,
		),
		RoleCustomer: NewPermissionSet(
			PermOrderView, PermOrderAdd, PermOrderTrack,
		),
		RoleCustomerIndividual: NewPermissionSet(
			PermOrderView, PermOrderAdd, PermOrderTrack,
		),
		RoleCustomerBusiness: NewPermissionSet(
			PermCustomerView,
			PermOrderView, PermOrderAdd, PermOrderEdit, PermOrderTrack,
		),
		RoleDriver: NewPermissionSet(
			PermOrderView, PermOrderTrack,
		),
		RoleCompany: NewPermissionSet(
			PermCarrierView, PermCarrierEdit,
			PermDriverView, PermDriverAdd, PermDriverEdit, PermDriverDelete,
			PermOrderView, PermOrderTrack,
		),
	}
}
