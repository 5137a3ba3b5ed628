package enums

// RoleName identifies the static roles seeded into the roles table.
type RoleName string

const (
	RoleAdmin    RoleName = "Admin"
	RoleMerchant RoleName = "Merchant"
	RoleDriver   RoleName = "Driver"
)

// String implements fmt.Stringer.
func (r RoleName) String() string {
	return string(r)
}

// IsValid reports whether the value is a known RoleName.
func (r RoleName) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMerchant, RoleDriver:
		return true
	}
	return false
}
