package repositories

import (
	"context"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// AuthorRepository define a interface para persistência de autores
type AuthorRepository interface {
	Repository[entities.Author]

	// FindByName busca um autor pelo nome (comparação case-insensitive)
	FindByName(ctx context.Context, name string) (*entities.Author, error)
}
