package entities

import (
	"errors"
	"time"
)

// Author representa um autor de livros
type Author struct {
	ID        string
	Name      string
	Biography *string
	BirthDate *time.Time
	Country   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age calcula a idade do autor a partir da data de nascimento
// Retorna nil quando a data de nascimento não é conhecida
func (a *Author) Age() *int {
	if a.BirthDate == nil {
		return nil
	}

	now := time.Now()
	age := now.Year() - a.BirthDate.Year()

	// Ajustar se o aniversário ainda não ocorreu este ano
	if now.Month() < a.BirthDate.Month() ||
		(now.Month() == a.BirthDate.Month() && now.Day() < a.BirthDate.Day()) {
		age--
	}

	return &age
}

// Validate valida regras de negócio da entidade Author
func (a *Author) Validate() error {
	if a.Name == "" {
		return errors.New("name is required")
	}

	if len(a.Name) > 50 {
		return errors.New("name must be at most 50 characters")
	}

	return nil
}
