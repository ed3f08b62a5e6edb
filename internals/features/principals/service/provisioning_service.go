// file: internals/features/principals/service/provisioning_service.go
package service

import (
	"context"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"labrecord_backend/internals/constants"
	dto "labrecord_backend/internals/features/principals/dto"
	model "labrecord_backend/internals/features/principals/model"
)

// ProvisioningService materializes one Principal per identity-created event.
type ProvisioningService struct {
	DB *gorm.DB
}

func NewProvisioningService(db *gorm.DB) *ProvisioningService {
	return &ProvisioningService{DB: db}
}

// MaterializePrincipal builds the registry row from the event, applying the
// registry defaults. Pure, the DB write happens in Provision.
func MaterializePrincipal(ev *dto.IdentityCreatedEvent) model.PrincipalModel {
	m := model.PrincipalModel{
		PrincipalID:   ev.ID,
		PrincipalRole: constants.RoleStudent,
	}

	if ev.Metadata.FullName != nil {
		m.PrincipalFullName = *ev.Metadata.FullName
	}
	if ev.Metadata.Role != nil && constants.ValidRole(*ev.Metadata.Role) {
		m.PrincipalRole = *ev.Metadata.Role
	}

	dept := constants.DefaultDepartment
	if ev.Metadata.Department != nil && constants.ValidDepartment(*ev.Metadata.Department) {
		dept = *ev.Metadata.Department
	}
	m.PrincipalDepartment = &dept

	// keep the raw payload for audit
	meta := datatypes.JSONMap{}
	if ev.Metadata.FullName != nil {
		meta["full_name"] = *ev.Metadata.FullName
	}
	if ev.Metadata.Role != nil {
		meta["role"] = *ev.Metadata.Role
	}
	if ev.Metadata.Department != nil {
		meta["department"] = *ev.Metadata.Department
	}
	m.PrincipalMetadata = meta

	return m
}

// Provision consumes one event and produces exactly one Principal record.
func (s *ProvisioningService) Provision(ctx context.Context, ev *dto.IdentityCreatedEvent) (*model.PrincipalModel, error) {
	m := MaterializePrincipal(ev)
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}
