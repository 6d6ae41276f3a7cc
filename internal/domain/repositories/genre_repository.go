package repositories

import (
	"context"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// GenreRepository define a interface para persistência de gêneros
type GenreRepository interface {
	Repository[entities.Genre]

	// FindByName busca um gênero pelo nome (comparação case-insensitive)
	FindByName(ctx context.Context, name string) (*entities.Genre, error)
}
