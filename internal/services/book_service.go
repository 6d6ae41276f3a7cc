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

// BookService contém a lógica de negócio para livros
type BookService struct {
	books  repositories.BookRepository
	guard  *guard.Guard
	uow    ports.UnitOfWork
	logger ports.Logger
}

// NewBookService cria um novo BookService
func NewBookService(
	books repositories.BookRepository,
	g *guard.Guard,
	uow ports.UnitOfWork,
	logger ports.Logger,
) *BookService {
	return &BookService{
		books:  books,
		guard:  g,
		uow:    uow,
		logger: logger,
	}
}

// CreateBookInput representa os dados para criar um livro
type CreateBookInput struct {
	Title       string
	Description *string
	Year        int
	AuthorID    string
	GenreID     string
}

// UpdateBookInput representa os dados para atualizar um livro
// Campos nil não são alterados
type UpdateBookInput struct {
	Title       *string
	Description *string
	Year        *int
	AuthorID    *string
	GenreID     *string
}

// CreateBook cria um novo livro
// Verificações na ordem: existência das referências → unicidade do título
// por autor → escrita
func (s *BookService) CreateBook(ctx context.Context, input CreateBookInput) (*entities.Book, error) {
	now := time.Now()
	book := &entities.Book{
		ID:          uuid.NewString(),
		Title:       input.Title,
		Description: input.Description,
		Year:        input.Year,
		AuthorID:    input.AuthorID,
		GenreID:     input.GenreID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.guard.ReferenceExists(txCtx, guard.KindAuthor, input.AuthorID); err != nil {
			return err
		}
		if err := s.guard.ReferenceExists(txCtx, guard.KindGenre, input.GenreID); err != nil {
			return err
		}
		if err := s.guard.UniqueBookTitle(txCtx, input.Title, input.AuthorID, ""); err != nil {
			return err
		}
		return s.books.Create(txCtx, book)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("book created", "book_id", book.ID, "title", book.Title)

	// Recarregar com autor e gênero para a resposta
	return s.GetBook(ctx, book.ID)
}

// GetBook busca um livro por ID (com autor e gênero)
func (s *BookService) GetBook(ctx context.Context, id string) (*entities.Book, error) {
	book, err := s.books.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, errors.ErrBookNotFound
	}
	return book, nil
}

// ListBooks lista livros com paginação
func (s *BookService) ListBooks(ctx context.Context, skip, limit int) ([]*entities.Book, error) {
	return s.books.List(ctx, skip, limit)
}

// ListBooksByAuthor lista livros de um autor
func (s *BookService) ListBooksByAuthor(ctx context.Context, authorID string, skip, limit int) ([]*entities.Book, error) {
	return s.books.ListByAuthor(ctx, authorID, skip, limit)
}

// ListBooksByGenre lista livros de um gênero
func (s *BookService) ListBooksByGenre(ctx context.Context, genreID string, skip, limit int) ([]*entities.Book, error) {
	return s.books.ListByGenre(ctx, genreID, skip, limit)
}

// SearchBooks busca livros por trecho do título
func (s *BookService) SearchBooks(ctx context.Context, title string, skip, limit int) ([]*entities.Book, error) {
	return s.books.SearchByTitle(ctx, title, skip, limit)
}

// UpdateBook atualiza um livro existente (merge de campos parciais)
func (s *BookService) UpdateBook(ctx context.Context, id string, input UpdateBookInput) (*entities.Book, error) {
	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.books.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrBookNotFound
		}

		if input.AuthorID != nil {
			if err := s.guard.ReferenceExists(txCtx, guard.KindAuthor, *input.AuthorID); err != nil {
				return err
			}
			existing.AuthorID = *input.AuthorID
		}
		if input.GenreID != nil {
			if err := s.guard.ReferenceExists(txCtx, guard.KindGenre, *input.GenreID); err != nil {
				return err
			}
			existing.GenreID = *input.GenreID
		}
		if input.Title != nil {
			existing.Title = *input.Title
		}

		// Título e autor efetivos após o merge não podem colidir com
		// outro livro
		if input.Title != nil || input.AuthorID != nil {
			if err := s.guard.UniqueBookTitle(txCtx, existing.Title, existing.AuthorID, id); err != nil {
				return err
			}
		}

		if input.Description != nil {
			existing.Description = input.Description
		}
		if input.Year != nil {
			existing.Year = *input.Year
		}

		existing.UpdatedAt = time.Now()
		return s.books.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	return s.GetBook(ctx, id)
}

// DeleteBook deleta um livro sem comentários nem entradas de estante
// Retorna o livro deletado
func (s *BookService) DeleteBook(ctx context.Context, id string) (*entities.Book, error) {
	var book *entities.Book

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.books.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrBookNotFound
		}

		if err := s.guard.NoDependents(txCtx, guard.KindBook, id); err != nil {
			return err
		}

		book = existing
		return s.books.Delete(txCtx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("book deleted", "book_id", id)
	return book, nil
}
