package repositories

import (
	"context"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// BookRepository define a interface para persistência de livros
type BookRepository interface {
	Repository[entities.Book]

	ListByAuthor(ctx context.Context, authorID string, skip, limit int) ([]*entities.Book, error)
	ListByGenre(ctx context.Context, genreID string, skip, limit int) ([]*entities.Book, error)

	// SearchByTitle busca livros cujo título contém o termo (case-insensitive)
	SearchByTitle(ctx context.Context, title string, skip, limit int) ([]*entities.Book, error)

	// FindByTitleAndAuthor busca um livro pelo título exato (case-insensitive)
	// de um mesmo autor — base da regra de duplicidade de livros
	FindByTitleAndAuthor(ctx context.Context, title, authorID string) (*entities.Book, error)

	// Contagens de dependentes (verificações do Integrity Guard e
	// campos computados book_count)
	CountByAuthor(ctx context.Context, authorID string) (int64, error)
	CountByGenre(ctx context.Context, genreID string) (int64, error)
}
