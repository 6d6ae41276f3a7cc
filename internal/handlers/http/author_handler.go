package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// AuthorHandler lida com requisições HTTP relacionadas a autores
type AuthorHandler struct {
	authorService *services.AuthorService
}

// NewAuthorHandler cria um novo AuthorHandler
func NewAuthorHandler(authorService *services.AuthorService) *AuthorHandler {
	return &AuthorHandler{
		authorService: authorService,
	}
}

// respondAuthor monta a resposta com o campo computado book_count
func (h *AuthorHandler) respondAuthor(c *gin.Context, status int, author *entities.Author) {
	count, err := h.authorService.BookCount(c.Request.Context(), author.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(status, dto.ToAuthorResponse(author, count))
}

// CreateAuthor cria um novo autor
//
//	@Summary		Create author
//	@Tags			authors
//	@Accept			json
//	@Produce		json
//	@Param			author	body		dto.CreateAuthorRequest	true	"Author data"
//	@Success		201		{object}	dto.AuthorResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	author, err := h.authorService.CreateAuthor(c.Request.Context(), services.CreateAuthorInput{
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
		Country:   req.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthorResponse(author, 0))
}

// GetAuthor busca um autor por ID
//
//	@Summary		Get author by ID
//	@Tags			authors
//	@Produce		json
//	@Param			id	path		string	true	"Author ID"
//	@Success		200	{object}	dto.AuthorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/authors/{id} [get]
func (h *AuthorHandler) GetAuthor(c *gin.Context) {
	author, err := h.authorService.GetAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondAuthor(c, http.StatusOK, author)
}

// ListAuthors lista autores
// Com o filtro ?name= retorna o autor daquele nome (404 se não existir)
//
//	@Summary		List authors
//	@Tags			authors
//	@Produce		json
//	@Param			name	query		string	false	"Lookup by name"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.AuthorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		author, err := h.authorService.GetAuthorByName(c.Request.Context(), name)
		if err != nil {
			respondError(c, err)
			return
		}
		h.respondAuthor(c, http.StatusOK, author)
		return
	}

	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	authors, err := h.authorService.ListAuthors(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.AuthorResponse, 0, len(authors))
	for _, author := range authors {
		count, err := h.authorService.BookCount(c.Request.Context(), author.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		responses = append(responses, dto.ToAuthorResponse(author, count))
	}

	c.JSON(http.StatusOK, responses)
}

// UpdateAuthor atualiza um autor
//
//	@Summary		Update author
//	@Tags			authors
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Author ID"
//	@Param			author	body		dto.UpdateAuthorRequest	true	"Author data"
//	@Success		200		{object}	dto.AuthorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/authors/{id} [put]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	var req dto.UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	author, err := h.authorService.UpdateAuthor(c.Request.Context(), c.Param("id"), services.UpdateAuthorInput{
		Name:      req.Name,
		Biography: req.Biography,
		BirthDate: req.BirthDate,
		Country:   req.Country,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondAuthor(c, http.StatusOK, author)
}

// DeleteAuthor deleta um autor
// Autores com livros associados não podem ser deletados
//
//	@Summary		Delete author
//	@Tags			authors
//	@Produce		json
//	@Param			id	path		string	true	"Author ID"
//	@Success		200	{object}	dto.AuthorResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		409	{object}	dto.ErrorResponse
//	@Router			/authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	author, err := h.authorService.DeleteAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthorResponse(author, 0))
}
