package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/domain/guard"
	"github.com/rafabene/biblioteca-backend/internal/domain/ports"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// RoleService contém a lógica de negócio para papéis
type RoleService struct {
	roles  repositories.RoleRepository
	guard  *guard.Guard
	uow    ports.UnitOfWork
	logger ports.Logger
}

// NewRoleService cria um novo RoleService
func NewRoleService(
	roles repositories.RoleRepository,
	g *guard.Guard,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *RoleService {
	return &RoleService{
		roles:  roles,
		guard:  g,
		uow:    uow,
		logger: logger,
	}
}

// CreateRoleInput representa os dados para criar um papel
type CreateRoleInput struct {
	Name string
}

// UpdateRoleInput representa os dados para atualizar um papel
// Campos nil não são alterados
type UpdateRoleInput struct {
	Name *string
}

// CreateRole cria um novo papel
func (s *RoleService) CreateRole(ctx context.Context, input CreateRoleInput) (*entities.Role, error) {
	now := time.Now()
	role := &entities.Role{
		ID:        uuid.NewString(),
		Name:      input.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.guard.UniqueName(txCtx, guard.KindRole, input.Name, ""); err != nil {
			return err
		}
		return s.roles.Create(txCtx, role)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("role created", "role_id", role.ID, "name", role.Name)
	return role, nil
}

// GetRole busca um papel por ID
func (s *RoleService) GetRole(ctx context.Context, id string) (*entities.Role, error) {
	role, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, errors.ErrRoleNotFound
	}
	return role, nil
}

// ListRoles lista papéis com paginação
func (s *RoleService) ListRoles(ctx context.Context, skip, limit int) ([]*entities.Role, error) {
	return s.roles.List(ctx, skip, limit)
}

// UpdateRole atualiza um papel existente (merge de campos parciais)
func (s *RoleService) UpdateRole(ctx context.Context, id string, input UpdateRoleInput) (*entities.Role, error) {
	var role *entities.Role

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.roles.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrRoleNotFound
		}

		if input.Name != nil {
			if err := s.guard.UniqueName(txCtx, guard.KindRole, *input.Name, id); err != nil {
				return err
			}
			existing.Name = *input.Name
		}

		existing.UpdatedAt = time.Now()
		role = existing
		return s.roles.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	return role, nil
}

// DeleteRole deleta um papel sem usuários dependentes
// Retorna o papel deletado
func (s *RoleService) DeleteRole(ctx context.Context, id string) (*entities.Role, error) {
	var role *entities.Role

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.roles.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrRoleNotFound
		}

		if err := s.guard.NoDependents(txCtx, guard.KindRole, id); err != nil {
			return err
		}

		role = existing
		return s.roles.Delete(txCtx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("role deleted", "role_id", id)
	return role, nil
}
