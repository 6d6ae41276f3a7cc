package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// BookRepository implementa repositories.BookRepository
// Leituras pré-carregam Author e Genre para montagem de respostas
type BookRepository struct {
	repository[entities.Book, BookModel]
}

// NewBookRepository cria um novo BookRepository
func NewBookRepository(db *gorm.DB) repositories.BookRepository {
	return &BookRepository{
		repository: repository[entities.Book, BookModel]{
			db:       db,
			toModel:  bookToModel,
			toEntity: bookToEntity,
		},
	}
}

func (r *BookRepository) FindByID(ctx context.Context, id string) (*entities.Book, error) {
	var model BookModel

	err := r.getDB(ctx).
		Preload("Author").
		Preload("Genre").
		Where("id = ?", id).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return bookToEntity(&model)
}

func (r *BookRepository) List(ctx context.Context, skip, limit int) ([]*entities.Book, error) {
	return r.listWhere(ctx, skip, limit, nil)
}

func (r *BookRepository) ListByAuthor(ctx context.Context, authorID string, skip, limit int) ([]*entities.Book, error) {
	return r.listWhere(ctx, skip, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("author_id = ?", authorID)
	})
}

func (r *BookRepository) ListByGenre(ctx context.Context, genreID string, skip, limit int) ([]*entities.Book, error) {
	return r.listWhere(ctx, skip, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("genre_id = ?", genreID)
	})
}

func (r *BookRepository) SearchByTitle(ctx context.Context, title string, skip, limit int) ([]*entities.Book, error) {
	return r.listWhere(ctx, skip, limit, func(q *gorm.DB) *gorm.DB {
		return q.Where("LOWER(title) LIKE LOWER(?)", "%"+title+"%")
	})
}

func (r *BookRepository) FindByTitleAndAuthor(ctx context.Context, title, authorID string) (*entities.Book, error) {
	var model BookModel

	err := r.getDB(ctx).
		Where("LOWER(title) = LOWER(?) AND author_id = ?", title, authorID).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return bookToEntity(&model)
}

func (r *BookRepository) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	var count int64

	err := r.getDB(ctx).Model(&BookModel{}).
		Where("author_id = ?", authorID).
		Count(&count).Error

	return count, err
}

func (r *BookRepository) CountByGenre(ctx context.Context, genreID string) (int64, error) {
	var count int64

	err := r.getDB(ctx).Model(&BookModel{}).
		Where("genre_id = ?", genreID).
		Count(&count).Error

	return count, err
}

func (r *BookRepository) listWhere(ctx context.Context, skip, limit int, where func(*gorm.DB) *gorm.DB) ([]*entities.Book, error) {
	var models []*BookModel

	query := r.getDB(ctx).Model(&BookModel{}).
		Preload("Author").
		Preload("Genre").
		Order("created_at ASC, id ASC")
	if where != nil {
		query = where(query)
	}
	query = paginate(query, skip, limit)

	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}

	return r.toEntities(models)
}

// Conversores
func bookToModel(book *entities.Book) *BookModel {
	return &BookModel{
		ID:          book.ID,
		Title:       book.Title,
		Description: book.Description,
		Year:        book.Year,
		AuthorID:    book.AuthorID,
		GenreID:     book.GenreID,
		CreatedAt:   book.CreatedAt.Unix(),
		UpdatedAt:   book.UpdatedAt.Unix(),
	}
}

func bookToEntity(model *BookModel) (*entities.Book, error) {
	book := &entities.Book{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		Year:        model.Year,
		AuthorID:    model.AuthorID,
		GenreID:     model.GenreID,
		CreatedAt:   time.Unix(model.CreatedAt, 0),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0),
	}

	if model.Author != nil {
		author, err := authorToEntity(model.Author)
		if err != nil {
			return nil, err
		}
		book.Author = author
	}

	if model.Genre != nil {
		genre, err := genreToEntity(model.Genre)
		if err != nil {
			return nil, err
		}
		book.Genre = genre
	}

	return book, nil
}
