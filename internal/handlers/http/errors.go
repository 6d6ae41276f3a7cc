package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/domain/valueobjects"
	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
)

// Sentinelas de "não encontrado" → 404
var notFoundErrors = []error{
	errors.ErrRoleNotFound,
	errors.ErrUserNotFound,
	errors.ErrAuthorNotFound,
	errors.ErrGenreNotFound,
	errors.ErrBookNotFound,
	errors.ErrCommentNotFound,
	errors.ErrShelfEntryNotFound,
}

// Sentinelas de conflito → 409
var conflictErrors = []error{
	errors.ErrRoleAlreadyExists,
	errors.ErrEmailAlreadyExists,
	errors.ErrAuthorAlreadyExists,
	errors.ErrGenreAlreadyExists,
	errors.ErrBookAlreadyExists,
	errors.ErrRoleInUse,
	errors.ErrAuthorHasBooks,
	errors.ErrGenreHasBooks,
	errors.ErrBookHasComments,
	errors.ErrBookInShelf,
	errors.ErrUserHasComments,
	errors.ErrUserHasShelf,
	errors.ErrBookAlreadyInShelf,
	errors.ErrShelfLimitExceeded,
	errors.ErrCommentTooLong,
}

// respondError traduz erros de domínio em respostas RFC 7807
// A mensagem de cada sentinela é seu message ID de i18n, então o detail
// da resposta sai traduzido no idioma da requisição
func respondError(c *gin.Context, err error) {
	for _, target := range notFoundErrors {
		if errs.Is(err, target) {
			c.JSON(http.StatusNotFound, dto.NotFoundErrorResponseI18n(c, target.Error()))
			return
		}
	}

	for _, target := range conflictErrors {
		if errs.Is(err, target) {
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, target.Error()))
			return
		}
	}

	if errs.Is(err, errors.ErrInvalidCredentials) || errs.Is(err, errors.ErrUnauthorized) {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	if errs.Is(err, errors.ErrForbidden) {
		c.JSON(http.StatusForbidden, dto.ForbiddenErrorResponseI18n(c))
		return
	}

	if errs.Is(err, valueobjects.ErrInvalidEmail) {
		c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, []dto.ValidationError{
			{Field: "email", Message: err.Error()},
		}))
		return
	}

	c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
}

// respondBindError traduz erros de binding/validação do corpo em 400
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ValidationErrorResponseI18n(c, dto.ExtractValidationErrors(err)))
}

// bindListQuery faz o binding dos parâmetros de paginação
// Retorna false (com resposta 400 já escrita) quando inválidos
func bindListQuery(c *gin.Context) (dto.ListQuery, bool) {
	var query dto.ListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		respondBindError(c, err)
		return query, false
	}
	return query, true
}
