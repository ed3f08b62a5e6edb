// file: internals/constants/roles_test.go
package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleAdmin))
	assert.True(t, ValidRole(RoleFaculty))
	assert.True(t, ValidRole(RoleStudent))
	assert.False(t, ValidRole("registrar"))
	assert.False(t, ValidRole(""))
	assert.False(t, ValidRole("Admin")) // case-sensitive
}

func TestValidDepartment(t *testing.T) {
	assert.True(t, ValidDepartment(DepartmentCSE))
	assert.True(t, ValidDepartment(DepartmentIT))
	assert.True(t, ValidDepartment(DepartmentAIDS))
	assert.False(t, ValidDepartment("ECE"))
	assert.False(t, ValidDepartment(""))
}

func TestRoleErrorAdmin(t *testing.T) {
	assert.Equal(t, "Only admins may access the admin API.", RoleErrorAdmin("the admin API"))
}

func TestAdminOnlyGroup(t *testing.T) {
	assert.Equal(t, []string{RoleAdmin}, AdminOnly)
}
