package domain

// Role is the capability tag carried by every identity
type Role string

const (
	RoleUser  Role = "user"  // Regular user, sees only owned tasks
	RoleAdmin Role = "admin" // Administrator, sees every task
)

// ParseRole maps a raw claim or column value to a Role.
// Anything other than "admin" is treated as a regular user.
func ParseRole(raw string) Role {
	switch Role(raw) {
	case RoleAdmin:
		return RoleAdmin
	default:
		return RoleUser
	}
}

// String returns the wire value of the role
func (r Role) String() string {
	return string(r)
}
