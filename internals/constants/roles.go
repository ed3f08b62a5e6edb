package constants

import "fmt"

// Closed role enumeration. The registry row is the source of truth;
// tokens only carry a hint that is re-checked against the registry.
const (
	RoleAdmin   = "admin"
	RoleFaculty = "faculty"
	RoleStudent = "student"
)

// Departments offered by the institute.
const (
	DepartmentCSE  = "CSE"
	DepartmentIT   = "IT"
	DepartmentAIDS = "AIDS"
)

// DefaultDepartment is applied when the identity provider sends none.
const DefaultDepartment = DepartmentCSE

// Role error message template, consumed by the route-level role gate.
const ErrOnlyAdminsCanAccess = "Only admins may access %s."

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var AdminOnly = []string{
	RoleAdmin,
}

// ValidRole reports whether s is one of the closed role values.
func ValidRole(s string) bool {
	switch s {
	case RoleAdmin, RoleFaculty, RoleStudent:
		return true
	}
	return false
}

// ValidDepartment reports whether s is a known department code.
func ValidDepartment(s string) bool {
	switch s {
	case DepartmentCSE, DepartmentIT, DepartmentAIDS:
		return true
	}
	return false
}
