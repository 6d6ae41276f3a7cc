package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// RoleRepository implementa repositories.RoleRepository
type RoleRepository struct {
	repository[entities.Role, RoleModel]
}

// NewRoleRepository cria um novo RoleRepository
func NewRoleRepository(db *gorm.DB) repositories.RoleRepository {
	return &RoleRepository{
		repository: repository[entities.Role, RoleModel]{
			db:       db,
			toModel:  roleToModel,
			toEntity: roleToEntity,
		},
	}
}

func (r *RoleRepository) FindByName(ctx context.Context, name string) (*entities.Role, error) {
	var model RoleModel

	if err := r.getDB(ctx).Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return roleToEntity(&model)
}

// Conversores
func roleToModel(role *entities.Role) *RoleModel {
	return &RoleModel{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt.Unix(),
		UpdatedAt: role.UpdatedAt.Unix(),
	}
}

func roleToEntity(model *RoleModel) (*entities.Role, error) {
	return &entities.Role{
		ID:        model.ID,
		Name:      model.Name,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}, nil
}
