package domain

// Role is the caller role supplied by the external identity collaborator.
// The engine trusts it as given
type Role string

const (
	RoleCustomer Role = "customer"
	RoleManager  Role = "manager"
)

// IsManager returns true for the manager role
func (r Role) IsManager() bool {
	return r == RoleManager
}

// Valid reports whether the role carries a known value
func (r Role) Valid() bool {
	return r == RoleCustomer || r == RoleManager
}
