package entities

import (
	"errors"
	"time"
)

// Role representa um papel de usuário no sistema (ex: admin, reader)
type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate valida regras de negócio da entidade Role
func (r *Role) Validate() error {
	if r.Name == "" {
		return errors.New("name is required")
	}

	if len(r.Name) > 50 {
		return errors.New("name must be at most 50 characters")
	}

	return nil
}
