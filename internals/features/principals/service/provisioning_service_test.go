// file: internals/features/principals/service/provisioning_service_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"labrecord_backend/internals/constants"
	dto "labrecord_backend/internals/features/principals/dto"
)

func strp(s string) *string { return &s }

func TestMaterializePrincipalDefaults(t *testing.T) {
	id := uuid.New()
	m := MaterializePrincipal(&dto.IdentityCreatedEvent{ID: id})

	assert.Equal(t, id, m.PrincipalID)
	assert.Equal(t, constants.RoleStudent, m.PrincipalRole)
	require.NotNil(t, m.PrincipalDepartment)
	assert.Equal(t, constants.DefaultDepartment, *m.PrincipalDepartment)
	assert.Empty(t, m.PrincipalFullName)
}

func TestMaterializePrincipalHonorsMetadata(t *testing.T) {
	ev := &dto.IdentityCreatedEvent{
		ID: uuid.New(),
		Metadata: dto.IdentityMetadata{
			FullName:   strp("Asha Rao"),
			Role:       strp(constants.RoleFaculty),
			Department: strp(constants.DepartmentIT),
		},
	}
	m := MaterializePrincipal(ev)

	assert.Equal(t, "Asha Rao", m.PrincipalFullName)
	assert.Equal(t, constants.RoleFaculty, m.PrincipalRole)
	require.NotNil(t, m.PrincipalDepartment)
	assert.Equal(t, constants.DepartmentIT, *m.PrincipalDepartment)
	assert.Equal(t, "Asha Rao", m.PrincipalMetadata["full_name"])
}

func TestMaterializePrincipalRejectsUnknownEnumValues(t *testing.T) {
	ev := &dto.IdentityCreatedEvent{
		ID: uuid.New(),
		Metadata: dto.IdentityMetadata{
			Role:       strp("superuser"),
			Department: strp("EEE"),
		},
	}
	m := MaterializePrincipal(ev)

	// unknown values fall back to the registry defaults
	assert.Equal(t, constants.RoleStudent, m.PrincipalRole)
	require.NotNil(t, m.PrincipalDepartment)
	assert.Equal(t, constants.DefaultDepartment, *m.PrincipalDepartment)
	// but the raw payload is still kept for audit
	assert.Equal(t, "superuser", m.PrincipalMetadata["role"])
}
