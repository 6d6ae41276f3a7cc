package repositories

import (
	"context"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// ShelfRepository define a interface para persistência de entradas da estante
type ShelfRepository interface {
	Repository[entities.ShelfEntry]

	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.ShelfEntry, error)
	ListByBook(ctx context.Context, bookID string, skip, limit int) ([]*entities.ShelfEntry, error)

	// ListReadByUser lista as entradas já lidas de um usuário
	ListReadByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.ShelfEntry, error)

	// FindByUserAndBook busca a entrada de um par (usuário, livro)
	// — base da regra de duplicidade da estante
	FindByUserAndBook(ctx context.Context, userID, bookID string) (*entities.ShelfEntry, error)

	// Contagens de dependentes e de capacidade (Integrity Guard)
	CountByUser(ctx context.Context, userID string) (int64, error)
	CountByBook(ctx context.Context, bookID string) (int64, error)
}
