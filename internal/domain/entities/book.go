package entities

import (
	"errors"
	"time"
)

// Book representa um livro do catálogo
// Author e Genre são carregados opcionalmente pela camada de persistência
// para montagem de respostas (author_name, genre_name)
type Book struct {
	ID          string
	Title       string
	Description *string
	Year        int
	AuthorID    string
	GenreID     string
	Author      *Author
	Genre       *Genre
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Book
func (b *Book) Validate() error {
	if b.Title == "" {
		return errors.New("title is required")
	}

	if len(b.Title) > 100 {
		return errors.New("title must be at most 100 characters")
	}

	if b.AuthorID == "" {
		return errors.New("author is required")
	}

	if b.GenreID == "" {
		return errors.New("genre is required")
	}

	if b.Year == 0 {
		return errors.New("year is required")
	}

	return nil
}
