package postgres

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// CommentRepository implementa repositories.CommentRepository
type CommentRepository struct {
	repository[entities.Comment, CommentModel]
}

// NewCommentRepository cria um novo CommentRepository
func NewCommentRepository(db *gorm.DB) repositories.CommentRepository {
	return &CommentRepository{
		repository: repository[entities.Comment, CommentModel]{
			db:       db,
			toModel:  commentToModel,
			toEntity: commentToEntity,
		},
	}
}

func (r *CommentRepository) ListByBook(ctx context.Context, bookID string, skip, limit int) ([]*entities.Comment, error) {
	return r.listWhere(ctx, skip, limit, "book_id = ?", bookID)
}

func (r *CommentRepository) ListByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.Comment, error) {
	return r.listWhere(ctx, skip, limit, "user_id = ?", userID)
}

func (r *CommentRepository) CountByBook(ctx context.Context, bookID string) (int64, error) {
	var count int64

	err := r.getDB(ctx).Model(&CommentModel{}).
		Where("book_id = ?", bookID).
		Count(&count).Error

	return count, err
}

func (r *CommentRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	var count int64

	err := r.getDB(ctx).Model(&CommentModel{}).
		Where("user_id = ?", userID).
		Count(&count).Error

	return count, err
}

func (r *CommentRepository) listWhere(ctx context.Context, skip, limit int, cond string, arg any) ([]*entities.Comment, error) {
	var models []*CommentModel

	query := r.getDB(ctx).Model(&CommentModel{}).
		Where(cond, arg).
		Order("created_at ASC, id ASC")
	query = paginate(query, skip, limit)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func commentToModel(comment *entities.Comment) *CommentModel {
	return &CommentModel{
		ID:        comment.ID,
		BookID:    comment.BookID,
		UserID:    comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt.Unix(),
	}
}

func commentToEntity(model *CommentModel) (*entities.Comment, error) {
	return &entities.Comment{
		ID:        model.ID,
		BookID:    model.BookID,
		UserID:    model.UserID,
		Text:      model.Text,
		CreatedAt: time.Unix(model.CreatedAt, 0),
	}, nil
}
