package entities

import (
	"errors"
	"time"

	"github.com/rafabene/biblioteca-backend/internal/domain/valueobjects"
)

// User representa um usuário do sistema
type User struct {
	ID           string
	Name         string
	Email        valueobjects.Email
	PasswordHash string
	RoleID       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Name == "" {
		return errors.New("name is required")
	}

	if len(u.Name) < 2 {
		return errors.New("name must be at least 2 characters")
	}

	if u.RoleID == "" {
		return errors.New("role is required")
	}

	return nil
}
