package entities

import (
	"errors"
	"time"
)

// Genre representa um gênero literário
type Genre struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate valida regras de negócio da entidade Genre
func (g *Genre) Validate() error {
	if g.Name == "" {
		return errors.New("name is required")
	}

	if len(g.Name) > 50 {
		return errors.New("name must be at most 50 characters")
	}

	return nil
}
