package valueobjects

import "fmt"

type Role string

const (
	RoleAdministrator  Role = "administrator"
	RoleDepartmentHead Role = "department-head"
	RoleStaffMember    Role = "staff-member"
	RoleViewer         Role = "viewer"
)

var validRoles = map[Role]bool{
	RoleAdministrator:  true,
	RoleDepartmentHead: true,
	RoleStaffMember:    true,
	RoleViewer:         true,
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	return validRoles[r]
}

func NewRole(s string) (Role, error) {
	r := Role(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid role: %s", s)
	}
	return r, nil
}
