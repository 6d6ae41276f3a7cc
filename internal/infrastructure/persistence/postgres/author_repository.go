package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// AuthorRepository implementa repositories.AuthorRepository
type AuthorRepository struct {
	repository[entities.Author, AuthorModel]
}

// NewAuthorRepository cria um novo AuthorRepository
func NewAuthorRepository(db *gorm.DB) repositories.AuthorRepository {
	return &AuthorRepository{
		repository: repository[entities.Author, AuthorModel]{
			db:       db,
			toModel:  authorToModel,
			toEntity: authorToEntity,
		},
	}
}

func (r *AuthorRepository) FindByName(ctx context.Context, name string) (*entities.Author, error) {
	var model AuthorModel

	if err := r.getDB(ctx).Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return authorToEntity(&model)
}

// Conversores
func authorToModel(author *entities.Author) *AuthorModel {
	var birthDate *int64
	if author.BirthDate != nil {
		ts := author.BirthDate.Unix()
		birthDate = &ts
	}

	return &AuthorModel{
		ID:        author.ID,
		Name:      author.Name,
		Biography: author.Biography,
		BirthDate: birthDate,
		Country:   author.Country,
		CreatedAt: author.CreatedAt.Unix(),
		UpdatedAt: author.UpdatedAt.Unix(),
	}
}

func authorToEntity(model *AuthorModel) (*entities.Author, error) {
	var birthDate *time.Time
	if model.BirthDate != nil {
		ts := time.Unix(*model.BirthDate, 0)
		birthDate = &ts
	}

	return &entities.Author{
		ID:        model.ID,
		Name:      model.Name,
		Biography: model.Biography,
		BirthDate: birthDate,
		Country:   model.Country,
		CreatedAt: time.Unix(model.CreatedAt, 0),
		UpdatedAt: time.Unix(model.UpdatedAt, 0),
	}, nil
}
