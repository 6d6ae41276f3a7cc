package dto

import (
	"time"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// CreateAuthorRequest representa a requisição de criação de autor
type CreateAuthorRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=50"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Country   *string    `json:"country,omitempty" binding:"omitempty,max=50"`
}

// UpdateAuthorRequest representa a requisição de atualização de autor
type UpdateAuthorRequest struct {
	Name      *string    `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Country   *string    `json:"country,omitempty" binding:"omitempty,max=50"`
}

// AuthorResponse representa um autor na resposta da API
// BookCount e Age são campos computados na leitura
type AuthorResponse struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Biography *string    `json:"biography,omitempty"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	Country   *string    `json:"country,omitempty"`
	Age       *int       `json:"age,omitempty"`
	BookCount int64      `json:"book_count"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// ToAuthorResponse converte a entidade para o DTO de resposta
func ToAuthorResponse(author *entities.Author, bookCount int64) AuthorResponse {
	return AuthorResponse{
		ID:        author.ID,
		Name:      author.Name,
		Biography: author.Biography,
		BirthDate: author.BirthDate,
		Country:   author.Country,
		Age:       author.Age(),
		BookCount: bookCount,
		CreatedAt: author.CreatedAt,
		UpdatedAt: author.UpdatedAt,
	}
}
