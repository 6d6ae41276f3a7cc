package dto

import (
	"time"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// CreateCommentRequest representa a requisição de criação de comentário
// O limite de tamanho do texto é verificado na camada de serviço, pois o
// valor máximo vem de configuração
type CreateCommentRequest struct {
	BookID string `json:"book_id" binding:"required,uuid"`
	UserID string `json:"user_id" binding:"required,uuid"`
	Text   string `json:"comment_text" binding:"required,min=1"`
}

// UpdateCommentRequest representa a requisição de atualização de comentário
type UpdateCommentRequest struct {
	Text *string `json:"comment_text,omitempty" binding:"omitempty,min=1"`
}

// CommentResponse representa um comentário na resposta da API
type CommentResponse struct {
	ID        string    `json:"id"`
	BookID    string    `json:"book_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"comment_text"`
	CreatedAt time.Time `json:"created_at"`
}

// ToCommentResponse converte a entidade para o DTO de resposta
func ToCommentResponse(comment *entities.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID,
		BookID:    comment.BookID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}

// ToCommentResponses converte uma lista de entidades
func ToCommentResponses(comments []*entities.Comment) []CommentResponse {
	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, ToCommentResponse(comment))
	}
	return responses
}
