package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/domain/guard"
	"github.com/rafabene/biblioteca-backend/internal/domain/ports"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// CommentService contém a lógica de negócio para comentários de livros
type CommentService struct {
	comments repositories.CommentRepository
	guard    *guard.Guard
	uow      ports.UnitOfWork
	notifier ports.Notifier
	logger   ports.Logger
}

// NewCommentService cria um novo CommentService
func NewCommentService(
	comments repositories.CommentRepository,
	g *guard.Guard,
	uow ports.UnitOfWork,
	notifier ports.Notifier,
	logger ports.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		guard:    g,
		uow:      uow,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateCommentInput representa os dados para criar um comentário
type CreateCommentInput struct {
	BookID string
	UserID string
	Text   string
}

// UpdateCommentInput representa os dados para atualizar um comentário
// Campos nil não são alterados
type UpdateCommentInput struct {
	Text *string
}

// CreateComment cria um novo comentário
// Verificações na ordem: existência do livro e do usuário → tamanho do
// texto → escrita
func (s *CommentService) CreateComment(ctx context.Context, input CreateCommentInput) (*entities.Comment, error) {
	comment := &entities.Comment{
		ID:        uuid.NewString(),
		BookID:    input.BookID,
		UserID:    input.UserID,
		Text:      input.Text,
		CreatedAt: time.Now(),
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.guard.ReferenceExists(txCtx, guard.KindBook, input.BookID); err != nil {
			return err
		}
		if err := s.guard.ReferenceExists(txCtx, guard.KindUser, input.UserID); err != nil {
			return err
		}
		if err := s.guard.CommentLength(input.Text); err != nil {
			return err
		}
		return s.comments.Create(txCtx, comment)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment created", "comment_id", comment.ID, "book_id", comment.BookID)
	s.notifier.Publish(ports.Event{Type: "created", Resource: "comment", ID: comment.ID})
	return comment, nil
}

// GetComment busca um comentário por ID
func (s *CommentService) GetComment(ctx context.Context, id string) (*entities.Comment, error) {
	comment, err := s.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, errors.ErrCommentNotFound
	}
	return comment, nil
}

// ListComments lista comentários com paginação
func (s *CommentService) ListComments(ctx context.Context, skip, limit int) ([]*entities.Comment, error) {
	return s.comments.List(ctx, skip, limit)
}

// ListCommentsByBook lista os comentários de um livro
func (s *CommentService) ListCommentsByBook(ctx context.Context, bookID string, skip, limit int) ([]*entities.Comment, error) {
	return s.comments.ListByBook(ctx, bookID, skip, limit)
}

// ListCommentsByUser lista os comentários de um usuário
func (s *CommentService) ListCommentsByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.Comment, error) {
	return s.comments.ListByUser(ctx, userID, skip, limit)
}

// UpdateComment atualiza o texto de um comentário existente
// O texto novo passa pela mesma verificação de tamanho da criação
func (s *CommentService) UpdateComment(ctx context.Context, id string, input UpdateCommentInput) (*entities.Comment, error) {
	var comment *entities.Comment

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.comments.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrCommentNotFound
		}

		if input.Text != nil {
			if err := s.guard.CommentLength(*input.Text); err != nil {
				return err
			}
			existing.Text = *input.Text
		}

		comment = existing
		return s.comments.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ports.Event{Type: "updated", Resource: "comment", ID: id})
	return comment, nil
}

// DeleteComment deleta um comentário
// Retorna o comentário deletado
func (s *CommentService) DeleteComment(ctx context.Context, id string) (*entities.Comment, error) {
	var comment *entities.Comment

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.comments.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrCommentNotFound
		}

		comment = existing
		return s.comments.Delete(txCtx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment deleted", "comment_id", id)
	s.notifier.Publish(ports.Event{Type: "deleted", Resource: "comment", ID: id})
	return comment, nil
}
