package repositories

import (
	"context"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// CommentRepository define a interface para persistência de comentários
type CommentRepository interface {
	Repository[entities.Comment]

	ListByBook(ctx context.Context, bookID string, skip, limit int) ([]*entities.Comment, error)
	ListByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.Comment, error)

	// Contagens de dependentes (verificações do Integrity Guard)
	CountByBook(ctx context.Context, bookID string) (int64, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
}
