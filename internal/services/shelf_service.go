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

// ShelfService contém a lógica de negócio da estante de leitura
type ShelfService struct {
	shelf    repositories.ShelfRepository
	guard    *guard.Guard
	uow      ports.UnitOfWork
	notifier ports.Notifier
	logger   ports.Logger
}

// NewShelfService cria um novo ShelfService
func NewShelfService(
	shelf repositories.ShelfRepository,
	g *guard.Guard,
	uow ports.UnitOfWork,
	notifier ports.Notifier,
	logger ports.Logger,
) *ShelfService {
	return &ShelfService{
		shelf:    shelf,
		guard:    g,
		uow:      uow,
		notifier: notifier,
		logger:   logger,
	}
}

// AddToShelfInput representa os dados para adicionar um livro à estante
type AddToShelfInput struct {
	BookID     string
	UserID     string
	StatusRead bool
}

// UpdateShelfEntryInput representa os dados para atualizar uma entrada
// Campos nil não são alterados
type UpdateShelfEntryInput struct {
	StatusRead *bool
}

// AddToShelf adiciona um livro à estante de um usuário
// Verificações na ordem: existência do usuário e do livro → par duplicado
// → capacidade da estante → escrita
func (s *ShelfService) AddToShelf(ctx context.Context, input AddToShelfInput) (*entities.ShelfEntry, error) {
	now := time.Now()
	entry := &entities.ShelfEntry{
		ID:         uuid.NewString(),
		BookID:     input.BookID,
		UserID:     input.UserID,
		StatusRead: input.StatusRead,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.guard.ReferenceExists(txCtx, guard.KindUser, input.UserID); err != nil {
			return err
		}
		if err := s.guard.ReferenceExists(txCtx, guard.KindBook, input.BookID); err != nil {
			return err
		}
		if err := s.guard.NoDuplicateShelfEntry(txCtx, input.UserID, input.BookID); err != nil {
			return err
		}
		if err := s.guard.ShelfCapacity(txCtx, input.UserID); err != nil {
			return err
		}
		return s.shelf.Create(txCtx, entry)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("book added to shelf",
		"entry_id", entry.ID,
		"user_id", entry.UserID,
		"book_id", entry.BookID,
	)
	s.notifier.Publish(ports.Event{Type: "created", Resource: "shelf_entry", ID: entry.ID})
	return entry, nil
}

// GetShelfEntry busca uma entrada de estante por ID
func (s *ShelfService) GetShelfEntry(ctx context.Context, id string) (*entities.ShelfEntry, error) {
	entry, err := s.shelf.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.ErrShelfEntryNotFound
	}
	return entry, nil
}

// GetShelfEntryByUserAndBook busca a entrada de um par (usuário, livro)
func (s *ShelfService) GetShelfEntryByUserAndBook(ctx context.Context, userID, bookID string) (*entities.ShelfEntry, error) {
	entry, err := s.shelf.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, errors.ErrShelfEntryNotFound
	}
	return entry, nil
}

// ListShelf lista entradas de estante com paginação
func (s *ShelfService) ListShelf(ctx context.Context, skip, limit int) ([]*entities.ShelfEntry, error) {
	return s.shelf.List(ctx, skip, limit)
}

// ListShelfByUser lista a estante de um usuário
func (s *ShelfService) ListShelfByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.ShelfEntry, error) {
	return s.shelf.ListByUser(ctx, userID, skip, limit)
}

// ListShelfByBook lista as entradas de estante de um livro
func (s *ShelfService) ListShelfByBook(ctx context.Context, bookID string, skip, limit int) ([]*entities.ShelfEntry, error) {
	return s.shelf.ListByBook(ctx, bookID, skip, limit)
}

// ListReadByUser lista os livros já lidos da estante de um usuário
func (s *ShelfService) ListReadByUser(ctx context.Context, userID string, skip, limit int) ([]*entities.ShelfEntry, error) {
	return s.shelf.ListReadByUser(ctx, userID, skip, limit)
}

// UpdateShelfEntry atualiza o status de leitura de uma entrada
func (s *ShelfService) UpdateShelfEntry(ctx context.Context, id string, input UpdateShelfEntryInput) (*entities.ShelfEntry, error) {
	var entry *entities.ShelfEntry

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.shelf.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrShelfEntryNotFound
		}

		if input.StatusRead != nil {
			existing.StatusRead = *input.StatusRead
		}

		existing.UpdatedAt = time.Now()
		entry = existing
		return s.shelf.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	s.notifier.Publish(ports.Event{Type: "updated", Resource: "shelf_entry", ID: id})
	return entry, nil
}

// MarkAsRead marca a entrada de um par (usuário, livro) como lida
func (s *ShelfService) MarkAsRead(ctx context.Context, userID, bookID string) (*entities.ShelfEntry, error) {
	var entry *entities.ShelfEntry

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.shelf.FindByUserAndBook(txCtx, userID, bookID)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrShelfEntryNotFound
		}

		existing.MarkAsRead()
		existing.UpdatedAt = time.Now()
		entry = existing
		return s.shelf.Update(txCtx, existing)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("book marked as read", "user_id", userID, "book_id", bookID)
	s.notifier.Publish(ports.Event{Type: "updated", Resource: "shelf_entry", ID: entry.ID})
	return entry, nil
}

// DeleteShelfEntry remove uma entrada da estante por ID
// Retorna a entrada deletada
func (s *ShelfService) DeleteShelfEntry(ctx context.Context, id string) (*entities.ShelfEntry, error) {
	var entry *entities.ShelfEntry

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.shelf.FindByID(txCtx, id)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrShelfEntryNotFound
		}

		entry = existing
		return s.shelf.Delete(txCtx, id)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("shelf entry deleted", "entry_id", id)
	s.notifier.Publish(ports.Event{Type: "deleted", Resource: "shelf_entry", ID: id})
	return entry, nil
}

// DeleteByUserAndBook remove a entrada de um par (usuário, livro)
// Retorna a entrada deletada
func (s *ShelfService) DeleteByUserAndBook(ctx context.Context, userID, bookID string) (*entities.ShelfEntry, error) {
	var entry *entities.ShelfEntry

	err := s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := s.shelf.FindByUserAndBook(txCtx, userID, bookID)
		if err != nil {
			return err
		}
		if existing == nil {
			return errors.ErrShelfEntryNotFound
		}

		entry = existing
		return s.shelf.Delete(txCtx, existing.ID)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("shelf entry deleted", "user_id", userID, "book_id", bookID)
	s.notifier.Publish(ports.Event{Type: "deleted", Resource: "shelf_entry", ID: entry.ID})
	return entry, nil
}
