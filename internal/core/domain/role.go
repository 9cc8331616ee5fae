package domain

// Role is a named bundle of permissions assignable to an account.
type Role string

const (
	RoleAdmin              Role = "admin"
	RoleEditor             Role = "editor"
	RoleSupport            Role = "support"
	RoleCustomer           Role = "customer"
	RoleCustomerIndividual Role = "customer-individual"
	RoleCustomerBusiness   Role = "customer-business"
	RoleDriver             Role = "driver"
	// RoleCompany is held by carrier companies managing their own fleet.
	RoleCompany Role = "company"
)

// DefaultRole is assumed for accounts stored without any role field.
const DefaultRole = RoleCustomer

// RoleDefinition describes a registered role for listing purposes.
type RoleDefinition struct {
	ID          Role
	DisplayName string
}

var roleCatalog = []RoleDefinition{
	{RoleAdmin, "Administrator"},
	{RoleEditor, "Editor"},
	{RoleSupport, "Support"},
	{RoleCustomer, "Customer"},
	{RoleCustomerIndividual, "Individual Customer"},
	{RoleCustomerBusiness, "Business Customer"},
	{RoleDriver, "Driver"},
	{RoleCompany, "Carrier Company"},
}

// Roles returns the role registry in stable order.
func Roles() []RoleDefinition {
	return append([]RoleDefinition(nil), roleCatalog...)
}

// Known reports whether r is part of the registry.
func (r Role) Known() bool {
	for _, def := range roleCatalog {
		if def.ID == r {
			return true
		}
	}
	return false
}
