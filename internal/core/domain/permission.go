package domain

import "strings"

// Permission is a named capability to perform one action on one resource domain.
type Permission string

// PermissionDomain groups permissions by the resource they act on.
type PermissionDomain string

const (
	DomainCarrier        PermissionDomain = "carrier"
	DomainDriver         PermissionDomain = "driver"
	DomainCustomer       PermissionDomain = "customer"
	DomainOrder          PermissionDomain = "order"
	DomainSettings       PermissionDomain = "settings"
	DomainUserManagement PermissionDomain = "user-management"
)

const (
	PermCarrierView   Permission = "carrier-view"
	PermCarrierAdd    Permission = "carrier-add"
	PermCarrierEdit   Permission = "carrier-edit"
	PermCarrierDelete Permission = "carrier-delete"

	PermDriverView   Permission = "driver-view"
	PermDriverAdd    Permission = "driver-add"
	PermDriverEdit   Permission = "driver-edit"
	PermDriverDelete Permission = "driver-delete"

	PermCustomerView   Permission = "customer-view"
	PermCustomerAdd    Permission = "customer-add"
	PermCustomerEdit   Permission = "customer-edit"
	PermCustomerDelete Permission = "customer-delete"

	PermOrderView   Permission = "order-view"
	PermOrderAdd    Permission = "order-add"
	PermOrderEdit   Permission = "order-edit"
	PermOrderDelete Permission = "order-delete"
	PermOrderTrack  Permission = "order-track"

	PermSettingsView Permission = "settings-view"
	PermSettingsEdit Permission = "settings-edit"

	// PermUserManagement covers creating, editing and deleting portal accounts
	// and assigning their roles.
	PermUserManagement Permission = "user-management"
	PermUserView       Permission = "user-view"
)

// permissionCatalog is the ordered registry. Domain order is the listing order
// used by the admin UI.
var permissionCatalog = []struct {
	domain      PermissionDomain
	permissions []Permission
}{
	{DomainCarrier, []Permission{PermCarrierView, PermCarrierAdd, PermCarrierEdit, PermCarrierDelete}},
	{DomainDriver, []Permission{PermDriverView, PermDriverAdd, PermDriverEdit, PermDriverDelete}},
	{DomainCustomer, []Permission{PermCustomerView, PermCustomerAdd, PermCustomerEdit, PermCustomerDelete}},
	{DomainOrder, []Permission{PermOrderView, PermOrderAdd, PermOrderEdit, PermOrderDelete, PermOrderTrack}},
	{DomainSettings, []Permission{PermSettingsView, PermSettingsEdit}},
	{DomainUserManagement, []Permission{PermUserManagement, PermUserView}},
}

// PermissionDomains returns every domain in listing order.
func PermissionDomains() []PermissionDomain {
	out := make([]PermissionDomain, 0, len(permissionCatalog))
	for _, g := range permissionCatalog {
		out = append(out, g.domain)
	}
	return out
}

// PermissionsByDomain returns a copy of the catalog keyed by domain.
func PermissionsByDomain() map[PermissionDomain][]Permission {
	out := make(map[PermissionDomain][]Permission, len(permissionCatalog))
	for _, g := range permissionCatalog {
		out[g.domain] = append([]Permission(nil), g.permissions...)
	}
	return out
}

// AllPermissions returns every registered permission in catalog order.
func AllPermissions() []Permission {
	var out []Permission
	for _, g := range permissionCatalog {
		out = append(out, g.permissions...)
	}
	return out
}

// Known reports whether p is part of the registry.
func (p Permission) Known() bool {
	_, ok := p.lookupDomain()
	return ok
}

// Domain returns the resource domain p belongs to, or "" for unregistered ids.
func (p Permission) Domain() PermissionDomain {
	d, _ := p.lookupDomain()
	return d
}

func (p Permission) lookupDomain() (PermissionDomain, bool) {
	for _, g := range permissionCatalog {
		for _, candidate := range g.permissions {
			if candidate == p {
				return g.domain, true
			}
		}
	}
	return "", false
}

// ParsePermission trims surrounding whitespace; ids are otherwise opaque.
func ParsePermission(s string) Permission {
	return Permission(strings.TrimSpace(s))
}
