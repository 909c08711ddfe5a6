package entity

// Role is the access level of a User
type Role string

const (
	RoleDoctor Role = "doctor"
	RoleAdmin  Role = "admin"
)

// Permission names a single guarded operation on patient records
type Permission string

const (
	PermissionPatientRead   Permission = "patient:read"
	PermissionPatientWrite  Permission = "patient:write"
	PermissionPatientImport Permission = "patient:import"
	PermissionPatientExport Permission = "patient:export"
)

var rolePermissions = map[Role]map[Permission]bool{
	RoleDoctor: {
		PermissionPatientRead:   true,
		PermissionPatientWrite:  true,
		PermissionPatientImport: true,
		PermissionPatientExport: true,
	},
	RoleAdmin: {
		PermissionPatientRead:   true,
		PermissionPatientExport: true,
	},
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := rolePermissions[r]
	return ok
}

// Can reports whether r grants p. Unknown roles grant nothing.
func (r Role) Can(p Permission) bool {
	return rolePermissions[r][p]
}

func (r Role) String() string {
	return string(r)
}
