package entities

import (
	"errors"
	"time"
)

// Comment representa um comentário de um usuário sobre um livro
// O limite de tamanho do texto é verificado pelo Integrity Guard,
// pois o valor máximo vem de configuração
type Comment struct {
	ID        string
	BookID    string
	UserID    string
	Text      string
	CreatedAt time.Time
}

// Validate valida regras de negócio da entidade Comment
func (c *Comment) Validate() error {
	if c.BookID == "" {
		return errors.New("book is required")
	}

	if c.UserID == "" {
		return errors.New("user is required")
	}

	if c.Text == "" {
		return errors.New("comment text is required")
	}

	return nil
}
