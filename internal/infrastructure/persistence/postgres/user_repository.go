package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
	"github.com/rafabene/biblioteca-backend/internal/domain/valueobjects"
)

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	repository[entities.User, UserModel]
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{
		repository: repository[entities.User, UserModel]{
			db:       db,
			toModel:  userToModel,
			toEntity: userToEntity,
		},
	}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	var model UserModel

	if err := r.getDB(ctx).Where("LOWER(email) = LOWER(?)", email).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return userToEntity(&model)
}

func (r *UserRepository) ListByRole(ctx context.Context, roleID string, skip, limit int) ([]*entities.User, error) {
	var models []*UserModel

	query := r.getDB(ctx).Model(&UserModel{}).
		Where("role_id = ?", roleID).
		Order("created_at ASC, id ASC")
	query = paginate(query, skip, limit)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *UserRepository) CountByRole(ctx context.Context, roleID string) (int64, error) {
	var count int64

	err := r.getDB(ctx).Model(&UserModel{}).
		Where("role_id = ?", roleID).
		Count(&count).Error

	return count, err
}

// Conversores
func userToModel(user *entities.User) *UserModel {
	return &UserModel{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email.String(),
		PasswordHash: user.PasswordHash,
		RoleID:       user.RoleID,
		CreatedAt:    user.CreatedAt.Unix(),
		UpdatedAt:    user.UpdatedAt.Unix(),
	}
}

func userToEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        email,
		PasswordHash: model.PasswordHash,
		RoleID:       model.RoleID,
		CreatedAt:    time.Unix(model.CreatedAt, 0),
		UpdatedAt:    time.Unix(model.UpdatedAt, 0),
	}, nil
}
