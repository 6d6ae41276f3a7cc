package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// GenreRepository implementa repositories.GenreRepository
type GenreRepository struct {
	repository[entities.Genre, GenreModel]
}

// NewGenreRepository cria um novo GenreRepository
func NewGenreRepository(db *gorm.DB) repositories.GenreRepository {
	return &GenreRepository{
		repository: repository[entities.Genre, GenreModel]{
			db:       db,
			toModel:  genreToModel,
			toEntity: genreToEntity,
		},
	}
}

func (r *GenreRepository) FindByName(ctx context.Context, name string) (*entities.Genre, error) {
	var model GenreModel

	if err := r.getDB(ctx).Where("LOWER(name) = LOWER(?)", name).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return genreToEntity(&model)
}

// Conversores
func genreToModel(genre *entities.Genre) *GenreModel {
	return &GenreModel{
		ID:          genre.ID,
		Name:        genre.Name,
		Description: genre.Description,
		CreatedAt:   genre.CreatedAt.Unix(),
		UpdatedAt:   genre.UpdatedAt.Unix(),
	}
}

func genreToEntity(model *GenreModel) (*entities.Genre, error) {
	return &entities.Genre{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}, nil
}
