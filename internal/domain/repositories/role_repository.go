package repositories

import (
	"context"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// RoleRepository define a interface para persistência de papéis
type RoleRepository interface {
	Repository[entities.Role]

	// FindByName busca um papel pelo nome (comparação case-insensitive)
	FindByName(ctx context.Context, name string) (*entities.Role, error)
}
