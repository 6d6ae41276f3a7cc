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

// AuthorService contém a lógica de negócio para autores
type AuthorService struct {
	authors repositories.AuthorRepository
	books   repositories.BookRepository
	guard   *guard.Guard
	uow     ports.UnitOfWork
	logger  ports.Logger
}

// NewAuthorService cria um novo AuthorService
func NewAuthorService(
	authors repositories.AuthorRepository,
	books repositories.BookRepository,
	g *guard.Guard,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *AuthorService {
	return &AuthorService{
		authors: authors,
		books:   books,
		guard:   g,
		uow:     uow,
		logger:  logger,
	}
}

// CreateAuthorInput representa os dados para criar um autor
type CreateAuthorInput struct {
	Name      string
	Biography *string
	BirthDate *time.Time
	Country   *string
}

// UpdateAuthorInput representa os dados para atualizar um autor
// Campos nil não são alterados
type UpdateAuthorInput struct {
	Name      *string
	Biography *string
	BirthDate *time.Time
	Country   *string
}

// CreateAuthor cria um novo autor
func (s *AuthorService) CreateAuthor(ctx context.Context, input CreateAuthorInput) (*entities.Author, error) {
	now := time.Now()
	author := &entities.Author{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Biography: input.Biography,
		BirthDate: input.BirthDate,
		Country:   input.Country,
		CreatedAt: now,
		UpdatedAt: now,
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.guard.UniqueName(txCtx, guard.KindAuthor, input.Name, ""); err != nil {
			return err
		}
		return s.authors.Create(txCtx, author)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("author created", "author_id", author.ID, "name", author.Name)
	return author, nil
}

// GetAuthor busca um autor por ID
func (s *AuthorService) GetAuthor(ctx context.Context, id string) (*entities.Author, error) {
	author, err := s.authors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.ErrAuthorNotFound
	}
	return author, nil
}

// GetAuthorByName busca um autor pelo nome
func (s *AuthorService) GetAuthorByName(ctx context.Context, name string) (*entities.Author, error) {
	author, err := s.authors.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, errors.ErrAuthorNotFound
	}
	return author, nil
}

// ListAuthors lista autores com paginação
func (s *AuthorService) ListAuthors(ctx context.Context, skip, limit int) ([]*entities.Author, error) {
	return s.authors.List(ctx, skip, limit)
}

// BookCount conta os livros de um autor (campo computado book_count)
func (s *AuthorService) BookCount(ctx context.Context, authorID string) (int64, error) {
	return s.books.CountByAuthor(ctx, authorID)
}

// UpdateAuthor atualiza um autor existente (merge de campos parciais)
func (s *AuthorService) UpdateAuthor(ctx context.Context, id string, input UpdateAuthorInput) (*entities.Author, error) {
	var author *entities.Author

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.authors.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrAuthorNotFound
		}

		if input.Name != nil {
			if err := s.guard.UniqueName(txCtx, guard.KindAuthor, *input.Name, id); err != nil {
				return err
			}
			existing.Name = *input.Name
		}
		if input.Biography != nil {
			existing.Biography = input.Biography
		}
		if input.BirthDate != nil {
			existing.BirthDate = input.BirthDate
		}
		if input.Country != nil {
			existing.Country = input.Country
		}

		existing.UpdatedAt = time.Now()
		author = existing
		return s.authors.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	return author, nil
}

// DeleteAuthor deleta um autor sem livros dependentes
// Retorna o autor deletado
func (s *AuthorService) DeleteAuthor(ctx context.Context, id string) (*entities.Author, error) {
	var author *entities.Author

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.authors.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrAuthorNotFound
		}

		if err := s.guard.NoDependents(txCtx, guard.KindAuthor, id); err != nil {
			return err
		}

		author = existing
		return s.authors.Delete(txCtx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("author deleted", "author_id", id)
	return author, nil
}
