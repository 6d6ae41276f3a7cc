package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/domain/guard"
	"github.com/rafabene/biblioteca-backend/internal/domain/ports"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
	"github.com/rafabene/biblioteca-backend/internal/domain/valueobjects"
)

// UserService contém a lógica de negócio para usuários
type UserService struct {
	users  repositories.UserRepository
	guard  *guard.Guard
	uow    ports.UnitOfWork
	logger ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(
	users repositories.UserRepository,
	g *guard.Guard,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *UserService {
	return &UserService{
		users:  users,
		guard:  g,
		uow:    uow,
		logger: logger,
	}
}

// CreateUserInput representa os dados para criar um usuário
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	RoleID   string
}

// UpdateUserInput representa os dados para atualizar um usuário
// Campos nil não são alterados
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password *string
	RoleID   *string
}

// CreateUser cria um novo usuário
// Verificações na ordem: existência do papel → unicidade do email → escrita
// A senha é armazenada como hash bcrypt
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        email,
		PasswordHash: string(hash),
		RoleID:       input.RoleID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.guard.ReferenceExists(txCtx, guard.KindRole, input.RoleID); err != nil {
			return err
		}
		if err := s.guard.UniqueName(txCtx, guard.KindUser, email.String(), ""); err != nil {
			return err
		}
		return s.users.Create(txCtx, user)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "user_id", user.ID, "email", user.Email.String())
	return user, nil
}

// GetUser busca um usuário por ID
func (s *UserService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// GetUserByEmail busca um usuário pelo email
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*entities.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}

// ListUsers lista usuários com paginação
func (s *UserService) ListUsers(ctx context.Context, skip, limit int) ([]*entities.User, error) {
	return s.users.List(ctx, skip, limit)
}

// ListUsersByRole lista os usuários de um papel
func (s *UserService) ListUsersByRole(ctx context.Context, roleID string, skip, limit int) ([]*entities.User, error) {
	return s.users.ListByRole(ctx, roleID, skip, limit)
}

// UpdateUser atualiza um usuário existente (merge de campos parciais)
// Email novo passa pela verificação de unicidade; senha nova é re-hasheada
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.users.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrUserNotFound
		}

		if input.RoleID != nil {
			if err := s.guard.ReferenceExists(txCtx, guard.KindRole, *input.RoleID); err != nil {
				return err
			}
			existing.RoleID = *input.RoleID
		}
		if input.Email != nil {
			email, err := valueobjects.NewEmail(*input.Email)
			if err != nil {
				return err
			}
			if err := s.guard.UniqueName(txCtx, guard.KindUser, email.String(), id); err != nil {
				return err
			}
			existing.Email = email
		}
		if input.Name != nil {
			existing.Name = *input.Name
		}
		if input.Password != nil {
			hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			existing.PasswordHash = string(hash)
		}

		existing.UpdatedAt = time.Now()
		user = existing
		return s.users.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteUser deleta um usuário sem comentários nem entradas de estante
// Retorna o usuário deletado
func (s *UserService) DeleteUser(ctx context.Context, id string) (*entities.User, error) {
	var user *entities.User

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.users.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrUserNotFound
		}

		if err := s.guard.NoDependents(txCtx, guard.KindUser, id); err != nil {
			return err
		}

		user = existing
		return s.users.Delete(txCtx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("user deleted", "user_id", id)
	return user, nil
}

// Authenticate verifica as credenciais de um usuário
// Email inexistente e senha incorreta produzem o mesmo erro, para não
// revelar quais emails estão cadastrados
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*entities.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}
