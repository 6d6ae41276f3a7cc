package dto

import (
	"time"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// CreateBookRequest representa a requisição de criação de livro
type CreateBookRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Year        int     `json:"year" binding:"required,min=1,max=2100"`
	AuthorID    string  `json:"author_id" binding:"required,uuid"`
	GenreID     string  `json:"genre_id" binding:"required,uuid"`
}

// UpdateBookRequest representa a requisição de atualização de livro
type UpdateBookRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	Year        *int    `json:"year,omitempty" binding:"omitempty,min=1,max=2100"`
	AuthorID    *string `json:"author_id,omitempty" binding:"omitempty,uuid"`
	GenreID     *string `json:"genre_id,omitempty" binding:"omitempty,uuid"`
}

// BookResponse representa um livro na resposta da API
// AuthorName e GenreName vêm das associações carregadas na leitura
type BookResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Year        int       `json:"year"`
	AuthorID    string    `json:"author_id"`
	GenreID     string    `json:"genre_id"`
	AuthorName  string    `json:"author_name,omitempty"`
	GenreName   string    `json:"genre_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToBookResponse converte a entidade para o DTO de resposta
func ToBookResponse(book *entities.Book) BookResponse {
	response := BookResponse{
		ID:          book.ID,
		Title:       book.Title,
		Description: book.Description,
		Year:        book.Year,
		AuthorID:    book.AuthorID,
		GenreID:     book.GenreID,
		CreatedAt:   book.CreatedAt,
		UpdatedAt:   book.UpdatedAt,
	}

	if book.Author != nil {
		response.AuthorName = book.Author.Name
	}
	if book.Genre != nil {
		response.GenreName = book.Genre.Name
	}

	return response
}

// ToBookResponses converte uma lista de entidades
func ToBookResponses(books []*entities.Book) []BookResponse {
	responses := make([]BookResponse, 0, len(books))
	for _, book := range books {
		responses = append(responses, ToBookResponse(book))
	}
	return responses
}
