package dto

import (
	"time"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// CreateGenreRequest representa a requisição de criação de gênero
type CreateGenreRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=50"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// UpdateGenreRequest representa a requisição de atualização de gênero
type UpdateGenreRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}

// GenreResponse representa um gênero na resposta da API
// BookCount é um campo computado na leitura
type GenreResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	BookCount   int64     `json:"book_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToGenreResponse converte a entidade para o DTO de resposta
func ToGenreResponse(genre *entities.Genre, bookCount int64) GenreResponse {
	return GenreResponse{
		ID:          genre.ID,
		Name:        genre.Name,
		Description: genre.Description,
		BookCount:   bookCount,
		CreatedAt:   genre.CreatedAt,
		UpdatedAt:   genre.UpdatedAt,
	}
}
