package users

type Role string

const (
	RoleManager  Role = "Manager"
	RoleEmployee Role = "Employee"
)

// Roles lists the selectable roles in display order.
var Roles = []Role{RoleManager, RoleEmployee}

func (r Role) Valid() bool {
	return r == RoleManager || r == RoleEmployee
}

func ParseRole(value string) (Role, error) {
	role := Role(value)
	if !role.Valid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
