package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// ShelfRepository implementa repositories.ShelfRepository
type ShelfRepository struct {
	repository[entities.ShelfEntry, ShelfModel]
}

// NewShelfRepository cria um novo ShelfRepository
func NewShelfRepository(db *gorm.DB) repositories.ShelfRepository {
	return &ShelfRepository{
		repository: repository[entities.ShelfEntry, ShelfModel]{
			db:       db,
			toModel:  shelfToModel,
			toEntity: shelfToEntity,
		},
	}
}

func (r *ShelfRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.ShelfEntry, error) {
	return r.listWhere(ctx, skip, limit, "user_id = ?", userID)
}

func (r *ShelfRepository) ListByBook(ctx context.Context, bookID string, skip, limit int) ([]*entities.ShelfEntry, error) {
	return r.listWhere(ctx, skip, limit, "book_id = ?", bookID)
}

func (r *ShelfRepository) ListReadByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.ShelfEntry, error) {
	var models []*ShelfModel

	query := r.getDB(ctx).Model(&ShelfModel{}).
		Where("user_id = ? AND status_read = ?", userID, true).
		Order("created_at ASC, id ASC")
	query = paginate(query, skip, limit)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

func (r *ShelfRepository) FindByUserAndBook(ctx context.Context, userID, bookID string) (*entities.ShelfEntry, error) {
	var model ShelfModel

	err := r.getDB(ctx).
		Where("user_id = ? AND book_id = ?", userID, bookID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return shelfToEntity(&model)
}

func (r *ShelfRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.getDB(ctx).Model(&ShelfModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}

func (r *ShelfRepository) CountByBook(ctx context.Context, bookID string) (int64, error) {
	var count int64

	err := r.getDB(ctx).Model(&ShelfModel{}).
		Where("book_id = ?", bookID).
		Count(&count).Error

	return count, err
}

func (r *ShelfRepository) listWhere(ctx context.Context, skip, limit int, cond string, arg any) ([]*entities.ShelfEntry, error) {
	var models []*ShelfModel

	query := r.getDB(ctx).Model(&ShelfModel{}).
		Where(cond, arg).
		Order("created_at ASC, id ASC")
	query = paginate(query, skip, limit)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func shelfToModel(entry *entities.ShelfEntry) *ShelfModel {
	return &ShelfModel{
		ID:         entry.ID,
		BookID:     entry.BookID,
		UserID:     entry.UserID,
		StatusRead: entry.StatusRead,
		CreatedAt:  entry.CreatedAt.Unix(),
		UpdatedAt:  entry.UpdatedAt.Unix(),
	}
}

func shelfToEntity(model *ShelfModel) (*entities.ShelfEntry, error) {
	return &entities.ShelfEntry{
		ID:         model.ID,
		BookID:     model.BookID,
		UserID:     model.UserID,
		StatusRead: model.StatusRead,
		CreatedAt:  time.Unix(model.CreatedAt, 0),
		UpdatedAt:  time.Unix(model.UpdatedAt, 0),
	}, nil
}
