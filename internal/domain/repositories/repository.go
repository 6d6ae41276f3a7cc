package repositories

import "context"

// Repository define a interface genérica de persistência por tipo de entidade
// Cada entidade possui uma interface própria que estende esta com consultas
// específicas (buscas por nome, contagens de dependentes, etc.)
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id string) (*T, error)
	Update(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, skip, limit int) ([]*T, error)
}
