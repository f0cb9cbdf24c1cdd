package authorization

type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleManager    UserRole = "gestor"
	RoleConsultant UserRole = "consultor"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleConsultant:
		return true
	}
	return false
}

// ParseUserRole falls back to the least privileged role for unknown input.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleConsultant
}

// AllRoles lists every role in privilege order.
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleManager, RoleConsultant}
}
