package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// repository é a base genérica dos repositórios GORM: implementa as
// operações comuns de repositories.Repository[E] convertendo entre
// entidade de domínio (E) e model de persistência (M).
// Cada repositório concreto embute esta base e adiciona suas consultas
// específicas.
type repository[E any, M any] struct {
	db       *gorm.DB
	toModel  func(*E) *M
	toEntity func(*M) (*E, error)
}

// getDB extrai a transação do contexto quando presente (unit of work)
func (r *repository[E, M]) getDB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return r.db
}

func (r *repository[E, M]) Create(ctx context.Context, entity *E) error {
	model := r.toModel(entity)
	return r.getDB(ctx).Create(model).Error
}

func (r *repository[E, M]) FindByID(ctx context.Context, id string) (*E, error) {
	var model M

	if err := r.getDB(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.toEntity(&model)
}

func (r *repository[E, M]) Update(ctx context.Context, entity *E) error {
	model := r.toModel(entity)
	return r.getDB(ctx).Save(model).Error
}

func (r *repository[E, M]) Delete(ctx context.Context, id string) error {
	return r.getDB(ctx).Delete(new(M), "id = ?", id).Error
}

func (r *repository[E, M]) List(ctx context.Context, skip, limit int) ([]*E, error) {
	var models []*M

	query := r.getDB(ctx).Model(new(M)).Order("created_at ASC, id ASC")
	query = paginate(query, skip, limit)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *repository[E, M]) toEntities(models []*M) ([]*E, error) {
	result := make([]*E, 0, len(models))

	for _, model := range models {
		entity, err := r.toEntity(model)
		if err != nil {
			return nil, err
		}
		result = append(result, entity)
	}

	return result, nil
}

// paginate aplica skip/limit com os padrões do catálogo
func paginate(query *gorm.DB, skip, limit int) *gorm.DB {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}
	return query.Offset(skip).Limit(limit)
}
