// Package guard implementa o Integrity Guard: as verificações de invariantes
// entre entidades que precedem toda mutação (unicidade, existência de
// referências, dependentes em deleção, capacidade da estante e tamanho de
// comentários).
//
// Cada verificação é uma leitura pura seguida de decisão: retorna nil quando
// a invariante vale, ou um erro sentinela de domínio (NotFound/Conflict)
// quando não vale. O Guard não tem estado próprio — todo o "estado" é o
// snapshot atual dos repositórios, lido a cada invocação.
package guard

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/domain/repositories"
)

// Kind identifica o tipo de entidade alvo de uma verificação
type Kind string

const (
	KindRole       Kind = "role"
	KindUser       Kind = "user"
	KindAuthor     Kind = "author"
	KindGenre      Kind = "genre"
	KindBook       Kind = "book"
	KindComment    Kind = "comment"
	KindShelfEntry Kind = "shelf_entry"
)

// Limites padrão observados no sistema original
const (
	DefaultShelfMaxBooks    = 100
	DefaultCommentMaxLength = 200
)

// Config contém os limites configuráveis aplicados pelo Guard
type Config struct {
	ShelfMaxBooks    int
	CommentMaxLength int
}

// Guard aplica as invariantes de integridade referencial do catálogo
// Depende apenas das interfaces de repositório — nunca realiza escritas
type Guard struct {
	roles    repositories.RoleRepository
	users    repositories.UserRepository
	authors  repositories.AuthorRepository
	genres   repositories.GenreRepository
	books    repositories.BookRepository
	comments repositories.CommentRepository
	shelf    repositories.ShelfRepository
	cfg      Config
}

// New cria um novo Guard
// Limites não informados (zero) assumem os valores padrão
func New(
	roles repositories.RoleRepository,
	users repositories.UserRepository,
	authors repositories.AuthorRepository,
	genres repositories.GenreRepository,
	books repositories.BookRepository,
	comments repositories.CommentRepository,
	shelf repositories.ShelfRepository,
	cfg Config,
) *Guard {
	if cfg.ShelfMaxBooks <= 0 {
		cfg.ShelfMaxBooks = DefaultShelfMaxBooks
	}
	if cfg.CommentMaxLength <= 0 {
		cfg.CommentMaxLength = DefaultCommentMaxLength
	}

	return &Guard{
		roles:    roles,
		users:    users,
		authors:  authors,
		genres:   genres,
		books:    books,
		comments: comments,
		shelf:    shelf,
		cfg:      cfg,
	}
}

// UniqueName verifica se um nome (ou email, para usuários) não colide com
// outra linha do mesmo tipo. A comparação é case-insensitive.
// excludeID exclui a própria linha na trilha de update — atualizar um nome
// para seu valor atual nunca conflita.
func (g *Guard) UniqueName(ctx context.Context, kind Kind, name, excludeID string) error {
	switch kind {
	case KindRole:
		existing, err := g.roles.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return errors.ErrRoleAlreadyExists
		}

	case KindUser:
		existing, err := g.users.FindByEmail(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return errors.ErrEmailAlreadyExists
		}

	case KindAuthor:
		existing, err := g.authors.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return errors.ErrAuthorAlreadyExists
		}

	case KindGenre:
		existing, err := g.genres.FindByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil && existing.ID != excludeID {
			return errors.ErrGenreAlreadyExists
		}

	default:
		return fmt.Errorf("guard: kind %q has no uniqueness rule", kind)
	}

	return nil
}

// UniqueBookTitle verifica se um mesmo autor não possui outro livro com o
// mesmo título (case-insensitive)
func (g *Guard) UniqueBookTitle(ctx context.Context, title, authorID, excludeID string) error {
	existing, err := g.books.FindByTitleAndAuthor(ctx, title, authorID)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return errors.ErrBookAlreadyExists
	}
	return nil
}

// ReferenceExists confirma que a linha referenciada por uma chave
// estrangeira existe antes da escrita prosseguir
func (g *Guard) ReferenceExists(ctx context.Context, kind Kind, id string) error {
	switch kind {
	case KindRole:
		role, err := g.roles.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if role == nil {
			return errors.ErrRoleNotFound
		}

	case KindUser:
		user, err := g.users.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if user == nil {
			return errors.ErrUserNotFound
		}

	case KindAuthor:
		author, err := g.authors.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if author == nil {
			return errors.ErrAuthorNotFound
		}

	case KindGenre:
		genre, err := g.genres.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if genre == nil {
			return errors.ErrGenreNotFound
		}

	case KindBook:
		book, err := g.books.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if book == nil {
			return errors.ErrBookNotFound
		}

	case KindComment:
		comment, err := g.comments.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if comment == nil {
			return errors.ErrCommentNotFound
		}

	case KindShelfEntry:
		entry, err := g.shelf.FindByID(ctx, id)
		if err != nil {
			return err
		}
		if entry == nil {
			return errors.ErrShelfEntryNotFound
		}

	default:
		return fmt.Errorf("guard: unknown kind %q", kind)
	}

	return nil
}

// NoDependents confirma que nenhuma linha dependente referencia a linha
// que se pretende deletar. Qualquer dependente bloqueia a deleção,
// independente da quantidade.
func (g *Guard) NoDependents(ctx context.Context, kind Kind, id string) error {
	switch kind {
	case KindRole:
		count, err := g.users.CountByRole(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrRoleInUse
		}

	case KindAuthor:
		count, err := g.books.CountByAuthor(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrAuthorHasBooks
		}

	case KindGenre:
		count, err := g.books.CountByGenre(ctx, id)
		if err != nil {
			return err
		}
		if count > 0 {
			return errors.ErrGenreHasBooks
		}

	case KindBook:
		comments, err := g.comments.CountByBook(ctx, id)
		if err != nil {
			return err
		}
		if comments > 0 {
			return errors.ErrBookHasComments
		}

		entries, err := g.shelf.CountByBook(ctx, id)
		if err != nil {
			return err
		}
		if entries > 0 {
			return errors.ErrBookInShelf
		}

	case KindUser:
		comments, err := g.comments.CountByUser(ctx, id)
		if err != nil {
			return err
		}
		if comments > 0 {
			return errors.ErrUserHasComments
		}

		entries, err := g.shelf.CountByUser(ctx, id)
		if err != nil {
			return err
		}
		if entries > 0 {
			return errors.ErrUserHasShelf
		}

	default:
		return fmt.Errorf("guard: kind %q has no dependents rule", kind)
	}

	return nil
}

// ShelfCapacity rejeita novas entradas quando a estante do usuário já
// atingiu o limite configurado
func (g *Guard) ShelfCapacity(ctx context.Context, userID string) error {
	count, err := g.shelf.CountByUser(ctx, userID)
	if err != nil {
		return err
	}

	if count >= int64(g.cfg.ShelfMaxBooks) {
		return errors.ErrShelfLimitExceeded
	}

	return nil
}

// NoDuplicateShelfEntry rejeita uma entrada quando o par (usuário, livro)
// já existe na estante
func (g *Guard) NoDuplicateShelfEntry(ctx context.Context, userID, bookID string) error {
	existing, err := g.shelf.FindByUserAndBook(ctx, userID, bookID)
	if err != nil {
		return err
	}

	if existing != nil {
		return errors.ErrBookAlreadyInShelf
	}

	return nil
}

// CommentLength rejeita textos que excedem o limite configurado
// O limite é contado em runas, não em bytes
func (g *Guard) CommentLength(text string) error {
	if utf8.RuneCountInString(text) > g.cfg.CommentMaxLength {
		return errors.ErrCommentTooLong
	}
	return nil
}

// ShelfMaxBooks retorna o limite configurado de livros por estante
func (g *Guard) ShelfMaxBooks() int {
	return g.cfg.ShelfMaxBooks
}

// CommentMaxLength retorna o limite configurado de tamanho de comentário
func (g *Guard) CommentMaxLength() int {
	return g.cfg.CommentMaxLength
}
