package dto

import (
	"time"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
)

// CreateRoleRequest representa a requisição de criação de papel
type CreateRoleRequest struct {
	Name string `json:"name" binding:"required,min=2,max=50"`
}

// UpdateRoleRequest representa a requisição de atualização de papel
type UpdateRoleRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=2,max=50"`
}

// RoleResponse representa um papel na resposta da API
type RoleResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToRoleResponse converte a entidade para o DTO de resposta
func ToRoleResponse(role *entities.Role) RoleResponse {
	return RoleResponse{
		ID:        role.ID,
		Name:      role.Name,
		CreatedAt: role.CreatedAt,
		UpdatedAt: role.UpdatedAt,
	}
}

// ToRoleResponses converte uma lista de entidades
func ToRoleResponses(roles []*entities.Role) []RoleResponse {
	responses := make([]RoleResponse, 0, len(roles))
	for _, role := range roles {
		responses = append(responses, ToRoleResponse(role))
	}
	return responses
}
