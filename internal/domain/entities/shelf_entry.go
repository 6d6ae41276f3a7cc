package entities

import (
	"errors"
	"time"
)

// ShelfEntry representa um livro na estante de leitura de um usuário
// O par (UserID, BookID) é único entre todas as entradas
type ShelfEntry struct {
	ID         string
	BookID     string
	UserID     string
	StatusRead bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MarkAsRead marca o livro como lido
func (s *ShelfEntry) MarkAsRead() {
	s.StatusRead = true
}

// Validate valida regras de negócio da entidade ShelfEntry
func (s *ShelfEntry) Validate() error {
	if s.BookID == "" {
		return errors.New("book is required")
	}

	if s.UserID == "" {
		return errors.New("user is required")
	}

	return nil
}
