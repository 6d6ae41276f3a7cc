package repositories

import (
	"context"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários
type UserRepository interface {
	Repository[entities.User]

	// FindByEmail busca um usuário pelo email (comparação case-insensitive)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	ListByRole(ctx context.Context, roleID string, skip, limit int) ([]*entities.User, error)

	// CountByRole conta usuários que referenciam um papel
	// (verificação de dependentes do Integrity Guard)
	CountByRole(ctx context.Context, roleID string) (int64, error)
}
