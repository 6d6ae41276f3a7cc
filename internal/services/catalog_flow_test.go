package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domainerrors "github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/domain/guard"
	"github.com/rafabene/biblioteca-backend/internal/domain/ports"
	"github.com/rafabene/biblioteca-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// nopLogger descarta logs durante os testes
type nopLogger struct{}

func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}
func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (l nopLogger) With(args ...any) ports.Logger {
	return l
}

// fakeNotifier registra os eventos publicados
type fakeNotifier struct {
	mu     sync.Mutex
	events []ports.Event
}

func (n *fakeNotifier) Publish(event ports.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

func (n *fakeNotifier) Events() []ports.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]ports.Event(nil), n.events...)
}

// catalog agrupa os serviços montados sobre um banco de teste
type catalog struct {
	roles    *services.RoleService
	users    *services.UserService
	authors  *services.AuthorService
	genres   *services.GenreService
	books    *services.BookService
	comments *services.CommentService
	shelf    *services.ShelfService
	notifier *fakeNotifier
}

// newCatalog monta o grafo completo de serviços sobre um SQLite em memória
func newCatalog(cfg guard.Config) *catalog {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	Expect(err).NotTo(HaveOccurred())

	// Um banco em memória por conexão; limitar o pool a uma conexão
	// mantém todas as operações no mesmo banco
	sqlDB, err := db.DB()
	Expect(err).NotTo(HaveOccurred())
	sqlDB.SetMaxOpenConns(1)

	Expect(postgres.Migrate(db)).To(Succeed())

	roleRepo := postgres.NewRoleRepository(db)
	userRepo := postgres.NewUserRepository(db)
	authorRepo := postgres.NewAuthorRepository(db)
	genreRepo := postgres.NewGenreRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	commentRepo := postgres.NewCommentRepository(db)
	shelfRepo := postgres.NewShelfRepository(db)
	uow := postgres.NewUnitOfWork(db)

	g := guard.New(roleRepo, userRepo, authorRepo, genreRepo, bookRepo, commentRepo, shelfRepo, cfg)

	logger := nopLogger{}
	notifier := &fakeNotifier{}

	return &catalog{
		roles:    services.NewRoleService(roleRepo, g, uow, logger),
		users:    services.NewUserService(userRepo, g, uow, logger),
		authors:  services.NewAuthorService(authorRepo, bookRepo, g, uow, logger),
		genres:   services.NewGenreService(genreRepo, bookRepo, g, uow, logger),
		books:    services.NewBookService(bookRepo, g, uow, logger),
		comments: services.NewCommentService(commentRepo, g, uow, notifier, logger),
		shelf:    services.NewShelfService(shelfRepo, g, uow, notifier, logger),
		notifier: notifier,
	}
}

var _ = Describe("Catálogo", func() {
	var (
		ctx context.Context
		cat *catalog
	)

	BeforeEach(func() {
		ctx = context.Background()
		cat = newCatalog(guard.Config{})
	})

	Describe("fluxo completo da biblioteca", func() {
		It("cria o grafo inteiro e aplica as invariantes na ordem esperada", func() {
			role, err := cat.roles.CreateRole(ctx, services.CreateRoleInput{Name: "reader"})
			Expect(err).NotTo(HaveOccurred())

			user, err := cat.users.CreateUser(ctx, services.CreateUserInput{
				Name:     "Maria Silva",
				Email:    "maria@example.com",
				Password: "s3cret99",
				RoleID:   role.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(user.PasswordHash).NotTo(Equal("s3cret99"))

			author, err := cat.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Agatha Christie"})
			Expect(err).NotTo(HaveOccurred())

			genre, err := cat.genres.CreateGenre(ctx, services.CreateGenreInput{Name: "Mystery"})
			Expect(err).NotTo(HaveOccurred())

			book, err := cat.books.CreateBook(ctx, services.CreateBookInput{
				Title:    "The Mysterious Affair at Styles",
				Year:     1920,
				AuthorID: author.ID,
				GenreID:  genre.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(book.Author).NotTo(BeNil())
			Expect(book.Author.Name).To(Equal("Agatha Christie"))
			Expect(book.Genre.Name).To(Equal("Mystery"))

			comment, err := cat.comments.CreateComment(ctx, services.CreateCommentInput{
				BookID: book.ID,
				UserID: user.ID,
				Text:   "Excelente estreia de Poirot",
			})
			Expect(err).NotTo(HaveOccurred())

			entry, err := cat.shelf.AddToShelf(ctx, services.AddToShelfInput{
				BookID: book.ID,
				UserID: user.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(entry.StatusRead).To(BeFalse())

			// Dependentes bloqueiam as deleções
			_, err = cat.roles.DeleteRole(ctx, role.ID)
			Expect(err).To(MatchError(domainerrors.ErrRoleInUse))

			_, err = cat.authors.DeleteAuthor(ctx, author.ID)
			Expect(err).To(MatchError(domainerrors.ErrAuthorHasBooks))

			_, err = cat.genres.DeleteGenre(ctx, genre.ID)
			Expect(err).To(MatchError(domainerrors.ErrGenreHasBooks))

			_, err = cat.books.DeleteBook(ctx, book.ID)
			Expect(err).To(MatchError(domainerrors.ErrBookHasComments))

			_, err = cat.users.DeleteUser(ctx, user.ID)
			Expect(err).To(MatchError(domainerrors.ErrUserHasComments))

			// Marcar como lido pelo par (usuário, livro)
			read, err := cat.shelf.MarkAsRead(ctx, user.ID, book.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(read.StatusRead).To(BeTrue())

			// Desmontar na ordem inversa libera as deleções
			deletedComment, err := cat.comments.DeleteComment(ctx, comment.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deletedComment.ID).To(Equal(comment.ID))

			_, err = cat.books.DeleteBook(ctx, book.ID)
			Expect(err).To(MatchError(domainerrors.ErrBookInShelf))

			_, err = cat.shelf.DeleteByUserAndBook(ctx, user.ID, book.ID)
			Expect(err).NotTo(HaveOccurred())

			deletedBook, err := cat.books.DeleteBook(ctx, book.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(deletedBook.Title).To(Equal("The Mysterious Affair at Styles"))

			_, err = cat.users.DeleteUser(ctx, user.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.roles.DeleteRole(ctx, role.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.authors.DeleteAuthor(ctx, author.ID)
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.genres.DeleteGenre(ctx, genre.ID)
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("unicidade de nomes", func() {
		It("rejeita nomes duplicados ignorando maiúsculas", func() {
			_, err := cat.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Agatha Christie"})
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "AGATHA CHRISTIE"})
			Expect(err).To(MatchError(domainerrors.ErrAuthorAlreadyExists))
		})

		It("rejeita emails duplicados ignorando maiúsculas", func() {
			role, err := cat.roles.CreateRole(ctx, services.CreateRoleInput{Name: "reader"})
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.users.CreateUser(ctx, services.CreateUserInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3cret99", RoleID: role.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			// O value object normaliza o email para minúsculas antes da checagem
			_, err = cat.users.CreateUser(ctx, services.CreateUserInput{
				Name: "Outra Maria", Email: "MARIA@example.com", Password: "s3cret99", RoleID: role.ID,
			})
			Expect(err).To(MatchError(domainerrors.ErrEmailAlreadyExists))
		})

		It("permite atualizar um nome para o valor atual", func() {
			genre, err := cat.genres.CreateGenre(ctx, services.CreateGenreInput{Name: "Mystery"})
			Expect(err).NotTo(HaveOccurred())

			name := "Mystery"
			updated, err := cat.genres.UpdateGenre(ctx, genre.ID, services.UpdateGenreInput{Name: &name})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Mystery"))
		})

		It("rejeita o mesmo título para o mesmo autor e aceita para outro", func() {
			author, err := cat.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Agatha Christie"})
			Expect(err).NotTo(HaveOccurred())
			other, err := cat.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Arthur Hailey"})
			Expect(err).NotTo(HaveOccurred())
			genre, err := cat.genres.CreateGenre(ctx, services.CreateGenreInput{Name: "Mystery"})
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.books.CreateBook(ctx, services.CreateBookInput{
				Title: "Endless Night", Year: 1967, AuthorID: author.ID, GenreID: genre.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.books.CreateBook(ctx, services.CreateBookInput{
				Title: "endless night", Year: 1968, AuthorID: author.ID, GenreID: genre.ID,
			})
			Expect(err).To(MatchError(domainerrors.ErrBookAlreadyExists))

			_, err = cat.books.CreateBook(ctx, services.CreateBookInput{
				Title: "Endless Night", Year: 1968, AuthorID: other.ID, GenreID: genre.ID,
			})
			Expect(err).NotTo(HaveOccurred())
		})
	})

	Describe("referências obrigatórias", func() {
		It("rejeita livro com autor inexistente", func() {
			genre, err := cat.genres.CreateGenre(ctx, services.CreateGenreInput{Name: "Mystery"})
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.books.CreateBook(ctx, services.CreateBookInput{
				Title: "Ghost Book", Year: 2000, AuthorID: "00000000-0000-0000-0000-000000000000", GenreID: genre.ID,
			})
			Expect(err).To(MatchError(domainerrors.ErrAuthorNotFound))
		})

		It("rejeita usuário com papel inexistente", func() {
			_, err := cat.users.CreateUser(ctx, services.CreateUserInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3cret99",
				RoleID: "00000000-0000-0000-0000-000000000000",
			})
			Expect(err).To(MatchError(domainerrors.ErrRoleNotFound))
		})
	})

	Describe("estante de leitura", func() {
		var (
			userID string
			bookID string
		)

		BeforeEach(func() {
			role, err := cat.roles.CreateRole(ctx, services.CreateRoleInput{Name: "reader"})
			Expect(err).NotTo(HaveOccurred())
			user, err := cat.users.CreateUser(ctx, services.CreateUserInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3cret99", RoleID: role.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			author, err := cat.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Agatha Christie"})
			Expect(err).NotTo(HaveOccurred())
			genre, err := cat.genres.CreateGenre(ctx, services.CreateGenreInput{Name: "Mystery"})
			Expect(err).NotTo(HaveOccurred())
			book, err := cat.books.CreateBook(ctx, services.CreateBookInput{
				Title: "Curtain", Year: 1975, AuthorID: author.ID, GenreID: genre.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			userID = user.ID
			bookID = book.ID
		})

		It("rejeita o mesmo livro duas vezes na mesma estante", func() {
			_, err := cat.shelf.AddToShelf(ctx, services.AddToShelfInput{BookID: bookID, UserID: userID})
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.shelf.AddToShelf(ctx, services.AddToShelfInput{BookID: bookID, UserID: userID})
			Expect(err).To(MatchError(domainerrors.ErrBookAlreadyInShelf))
		})

		It("publica eventos de criação e deleção", func() {
			entry, err := cat.shelf.AddToShelf(ctx, services.AddToShelfInput{BookID: bookID, UserID: userID})
			Expect(err).NotTo(HaveOccurred())

			_, err = cat.shelf.DeleteShelfEntry(ctx, entry.ID)
			Expect(err).NotTo(HaveOccurred())

			events := cat.notifier.Events()
			Expect(events).To(HaveLen(2))
			Expect(events[0]).To(Equal(ports.Event{Type: "created", Resource: "shelf_entry", ID: entry.ID}))
			Expect(events[1]).To(Equal(ports.Event{Type: "deleted", Resource: "shelf_entry", ID: entry.ID}))
		})

		It("filtra os livros já lidos", func() {
			_, err := cat.shelf.AddToShelf(ctx, services.AddToShelfInput{BookID: bookID, UserID: userID})
			Expect(err).NotTo(HaveOccurred())

			read, err := cat.shelf.ListReadByUser(ctx, userID, 0, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(read).To(BeEmpty())

			_, err = cat.shelf.MarkAsRead(ctx, userID, bookID)
			Expect(err).NotTo(HaveOccurred())

			read, err = cat.shelf.ListReadByUser(ctx, userID, 0, 100)
			Expect(err).NotTo(HaveOccurred())
			Expect(read).To(HaveLen(1))
			Expect(read[0].StatusRead).To(BeTrue())
		})
	})

	Describe("limite da estante", func() {
		It("rejeita a entrada que excede a capacidade configurada", func() {
			small := newCatalog(guard.Config{ShelfMaxBooks: 2})

			role, err := small.roles.CreateRole(ctx, services.CreateRoleInput{Name: "reader"})
			Expect(err).NotTo(HaveOccurred())
			user, err := small.users.CreateUser(ctx, services.CreateUserInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3cret99", RoleID: role.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			author, err := small.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Agatha Christie"})
			Expect(err).NotTo(HaveOccurred())
			genre, err := small.genres.CreateGenre(ctx, services.CreateGenreInput{Name: "Mystery"})
			Expect(err).NotTo(HaveOccurred())

			titles := []string{"Curtain", "Nemesis", "Endless Night"}
			var bookIDs []string
			for i, title := range titles {
				book, err := small.books.CreateBook(ctx, services.CreateBookInput{
					Title: title, Year: 1960 + i, AuthorID: author.ID, GenreID: genre.ID,
				})
				Expect(err).NotTo(HaveOccurred())
				bookIDs = append(bookIDs, book.ID)
			}

			_, err = small.shelf.AddToShelf(ctx, services.AddToShelfInput{BookID: bookIDs[0], UserID: user.ID})
			Expect(err).NotTo(HaveOccurred())
			_, err = small.shelf.AddToShelf(ctx, services.AddToShelfInput{BookID: bookIDs[1], UserID: user.ID})
			Expect(err).NotTo(HaveOccurred())

			_, err = small.shelf.AddToShelf(ctx, services.AddToShelfInput{BookID: bookIDs[2], UserID: user.ID})
			Expect(err).To(MatchError(domainerrors.ErrShelfLimitExceeded))
		})
	})

	Describe("comentários", func() {
		It("rejeita texto acima do limite configurado em runas", func() {
			small := newCatalog(guard.Config{CommentMaxLength: 10})

			role, err := small.roles.CreateRole(ctx, services.CreateRoleInput{Name: "reader"})
			Expect(err).NotTo(HaveOccurred())
			user, err := small.users.CreateUser(ctx, services.CreateUserInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3cret99", RoleID: role.ID,
			})
			Expect(err).NotTo(HaveOccurred())
			author, err := small.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Agatha Christie"})
			Expect(err).NotTo(HaveOccurred())
			genre, err := small.genres.CreateGenre(ctx, services.CreateGenreInput{Name: "Mystery"})
			Expect(err).NotTo(HaveOccurred())
			book, err := small.books.CreateBook(ctx, services.CreateBookInput{
				Title: "Curtain", Year: 1975, AuthorID: author.ID, GenreID: genre.ID,
			})
			Expect(err).NotTo(HaveOccurred())

			// 10 runas acentuadas passam; 11 não
			_, err = small.comments.CreateComment(ctx, services.CreateCommentInput{
				BookID: book.ID, UserID: user.ID, Text: "ótimoooooo",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = small.comments.CreateComment(ctx, services.CreateCommentInput{
				BookID: book.ID, UserID: user.ID, Text: "ótimoooooo!",
			})
			Expect(err).To(MatchError(domainerrors.ErrCommentTooLong))
		})
	})

	Describe("autenticação", func() {
		BeforeEach(func() {
			role, err := cat.roles.CreateRole(ctx, services.CreateRoleInput{Name: "reader"})
			Expect(err).NotTo(HaveOccurred())
			_, err = cat.users.CreateUser(ctx, services.CreateUserInput{
				Name: "Maria", Email: "maria@example.com", Password: "s3cret99", RoleID: role.ID,
			})
			Expect(err).NotTo(HaveOccurred())
		})

		It("aceita as credenciais corretas", func() {
			user, err := cat.users.Authenticate(ctx, "maria@example.com", "s3cret99")
			Expect(err).NotTo(HaveOccurred())
			Expect(user.Email.String()).To(Equal("maria@example.com"))
		})

		It("rejeita senha incorreta e email desconhecido com o mesmo erro", func() {
			_, err := cat.users.Authenticate(ctx, "maria@example.com", "wrong")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))

			_, err = cat.users.Authenticate(ctx, "ghost@example.com", "s3cret99")
			Expect(err).To(MatchError(domainerrors.ErrInvalidCredentials))
		})
	})

	Describe("atualizações parciais", func() {
		It("altera somente os campos enviados", func() {
			author, err := cat.authors.CreateAuthor(ctx, services.CreateAuthorInput{Name: "Agatha Christie"})
			Expect(err).NotTo(HaveOccurred())

			country := "United Kingdom"
			updated, err := cat.authors.UpdateAuthor(ctx, author.ID, services.UpdateAuthorInput{Country: &country})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Agatha Christie"))
			Expect(*updated.Country).To(Equal("United Kingdom"))
			Expect(updated.UpdatedAt).To(BeTemporally(">=", author.UpdatedAt.Truncate(time.Second)))
		})
	})
})
