package errors

import "errors"

// Erros de "não encontrado" (404)
// Nota: Estes são códigos de erro (message IDs para i18n).
// As traduções devem estar em internal/infrastructure/i18n/locales/*.json
var (
	ErrRoleNotFound       = errors.New("error.role_not_found")
	ErrUserNotFound       = errors.New("error.user_not_found")
	ErrAuthorNotFound     = errors.New("error.author_not_found")
	ErrGenreNotFound      = errors.New("error.genre_not_found")
	ErrBookNotFound       = errors.New("error.book_not_found")
	ErrCommentNotFound    = errors.New("error.comment_not_found")
	ErrShelfEntryNotFound = errors.New("error.shelf_entry_not_found")
)

// Erros de conflito por unicidade (409)
var (
	ErrRoleAlreadyExists   = errors.New("error.role_already_exists")
	ErrEmailAlreadyExists  = errors.New("error.email_already_exists")
	ErrAuthorAlreadyExists = errors.New("error.author_already_exists")
	ErrGenreAlreadyExists  = errors.New("error.genre_already_exists")
	ErrBookAlreadyExists   = errors.New("error.book_already_exists")
)

// Erros de conflito por dependentes em deleção (409)
var (
	ErrRoleInUse       = errors.New("error.role_in_use")
	ErrAuthorHasBooks  = errors.New("error.author_has_books")
	ErrGenreHasBooks   = errors.New("error.genre_has_books")
	ErrBookHasComments = errors.New("error.book_has_comments")
	ErrBookInShelf     = errors.New("error.book_in_shelf")
	ErrUserHasComments = errors.New("error.user_has_comments")
	ErrUserHasShelf    = errors.New("error.user_has_shelf")
)

// Erros de conflito da estante e de comentários (409)
var (
	ErrBookAlreadyInShelf = errors.New("error.book_already_in_shelf")
	ErrShelfLimitExceeded = errors.New("error.shelf_limit_exceeded")
	ErrCommentTooLong     = errors.New("error.comment_too_long")
)

// Erros de autenticação (401/403)
var (
	ErrInvalidCredentials = errors.New("error.invalid_credentials")
	ErrUnauthorized       = errors.New("error.unauthorized")
	ErrForbidden          = errors.New("error.forbidden")
)

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: O domínio base virá de configuração (API_BASE_URL)
const (
	ProblemTypeValidation   = "/problems/validation-error"
	ProblemTypeNotFound     = "/problems/not-found"
	ProblemTypeConflict     = "/problems/conflict"
	ProblemTypeUnauthorized = "/problems/unauthorized"
	ProblemTypeForbidden    = "/problems/forbidden"
	ProblemTypeInternal     = "/problems/internal-error"
	ProblemTypeBadRequest   = "/problems/bad-request"
)

// DomainError representa um erro de domínio com contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
