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

// GenreService contém a lógica de negócio para gêneros
type GenreService struct {
	genres repositories.GenreRepository
	books  repositories.BookRepository
	guard  *guard.Guard
	uow    ports.UnitOfWork
	logger ports.Logger
}

// NewGenreService cria um novo GenreService
func NewGenreService(
	genres repositories.GenreRepository,
	books repositories.BookRepository,
	g *guard.Guard,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *GenreService {
	return &GenreService{
		genres: genres,
		books:  books,
		guard:  g,
		uow:    uow,
		logger: logger,
	}
}

// CreateGenreInput representa os dados para criar um gênero
type CreateGenreInput struct {
	Name        string
	Description *string
}

// UpdateGenreInput representa os dados para atualizar um gênero
// Campos nil não são alterados
type UpdateGenreInput struct {
	Name        *string
	Description *string
}

// CreateGenre cria um novo gênero
func (s *GenreService) CreateGenre(ctx context.Context, input CreateGenreInput) (*entities.Genre, error) {
	now := time.Now()
	genre := &entities.Genre{
		ID:          uuid.NewString(),
		Name:        input.Name,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.guard.UniqueName(txCtx, guard.KindGenre, input.Name, ""); err != nil {
			return err
		}
		return s.genres.Create(txCtx, genre)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("genre created", "genre_id", genre.ID, "name", genre.Name)
	return genre, nil
}

// GetGenre busca um gênero por ID
func (s *GenreService) GetGenre(ctx context.Context, id string) (*entities.Genre, error) {
	genre, err := s.genres.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, errors.ErrGenreNotFound
	}
	return genre, nil
}

// GetGenreByName busca um gênero pelo nome
func (s *GenreService) GetGenreByName(ctx context.Context, name string) (*entities.Genre, error) {
	genre, err := s.genres.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if genre == nil {
		return nil, errors.ErrGenreNotFound
	}
	return genre, nil
}

// ListGenres lista gêneros com paginação
func (s *GenreService) ListGenres(ctx context.Context, skip, limit int) ([]*entities.Genre, error) {
	return s.genres.List(ctx, skip, limit)
}

// BookCount conta os livros de um gênero (campo computado book_count)
func (s *GenreService) BookCount(ctx context.Context, genreID string) (int64, error) {
	return s.books.CountByGenre(ctx, genreID)
}

// UpdateGenre atualiza um gênero existente (merge de campos parciais)
func (s *GenreService) UpdateGenre(ctx context.Context, id string, input UpdateGenreInput) (*entities.Genre, error) {
	var genre *entities.Genre

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.genres.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrGenreNotFound
		}

		if input.Name != nil {
			if err := s.guard.UniqueName(txCtx, guard.KindGenre, *input.Name, id); err != nil {
				return err
			}
			existing.Name = *input.Name
		}
		if input.Description != nil {
			existing.Description = input.Description
		}

		existing.UpdatedAt = time.Now()
		genre = existing
		return s.genres.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	return genre, nil
}

// DeleteGenre deleta um gênero sem livros dependentes
// Retorna o gênero deletado
func (s *GenreService) DeleteGenre(ctx context.Context, id string) (*entities.Genre, error) {
	var genre *entities.Genre

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.genres.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrGenreNotFound
		}

		if err := s.guard.NoDependents(txCtx, guard.KindGenre, id); err != nil {
			return err
		}

		genre = existing
		return s.genres.Delete(txCtx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("genre deleted", "genre_id", id)
	return genre, nil
}
