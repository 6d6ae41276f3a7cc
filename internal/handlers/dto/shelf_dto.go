package dto

import (
	"time"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// AddToShelfRequest representa a requisição de adição de livro à estante
type AddToShelfRequest struct {
	BookID     string `json:"book_id" binding:"required,uuid"`
	UserID     string `json:"user_id" binding:"required,uuid"`
	StatusRead bool   `json:"status_read"`
}

// UpdateShelfEntryRequest representa a requisição de atualização de entrada
type UpdateShelfEntryRequest struct {
	StatusRead *bool `json:"status_read,omitempty"`
}

// ShelfEntryResponse representa uma entrada de estante na resposta da API
type ShelfEntryResponse struct {
	ID         string    `json:"id"`
	BookID     string    `json:"book_id"`
	UserID     string    `json:"user_id"`
	StatusRead bool      `json:"status_read"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ToShelfEntryResponse converte a entidade para o DTO de resposta
func ToShelfEntryResponse(entry *entities.ShelfEntry) ShelfEntryResponse {
	return ShelfEntryResponse{
		ID:         entry.ID,
		BookID:     entry.BookID,
		UserID:     entry.UserID,
		StatusRead: entry.StatusRead,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}

// ToShelfEntryResponses converte uma lista de entidades
func ToShelfEntryResponses(entries []*entities.ShelfEntry) []ShelfEntryResponse {
	responses := make([]ShelfEntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, ToShelfEntryResponse(entry))
	}
	return responses
}
