package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// BookHandler lida com requisições HTTP relacionadas a livros
type BookHandler struct {
	bookService *services.BookService
}

// NewBookHandler cria um novo BookHandler
func NewBookHandler(bookService *services.BookService) *BookHandler {
	return &BookHandler{
		bookService: bookService,
	}
}

// CreateBook cria um novo livro
//
//	@Summary		Create book
//	@Tags			books
//	@Accept			json
//	@Produce		json
//	@Param			book	body		dto.CreateBookRequest	true	"Book data"
//	@Success		201		{object}	dto.BookResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/books [post]
func (h *BookHandler) CreateBook(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	book, err := h.bookService.CreateBook(c.Request.Context(), services.CreateBookInput{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		AuthorID:    req.AuthorID,
		GenreID:     req.GenreID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookResponse(book))
}

// GetBook busca um livro por ID
//
//	@Summary		Get book by ID
//	@Tags			books
//	@Produce		json
//	@Param			id	path		string	true	"Book ID"
//	@Success		200	{object}	dto.BookResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/books/{id} [get]
func (h *BookHandler) GetBook(c *gin.Context) {
	book, err := h.bookService.GetBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// ListBooks lista livros
// Com o filtro ?title= retorna os livros cujo título contém o trecho
//
//	@Summary		List books
//	@Tags			books
//	@Produce		json
//	@Param			title	query		string	false	"Title fragment to search"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.BookResponse
//	@Router			/books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	var err error
	var books []*entities.Book

	if title := c.Query("title"); title != "" {
		books, err = h.bookService.SearchBooks(c.Request.Context(), title, query.Skip, query.Limit)
	} else {
		books, err = h.bookService.ListBooks(c.Request.Context(), query.Skip, query.Limit)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponses(books))
}

// ListBooksByAuthor lista os livros de um autor
//
//	@Summary		List books by author
//	@Tags			books
//	@Produce		json
//	@Param			id		path		string	true	"Author ID"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.BookResponse
//	@Router			/authors/{id}/books [get]
func (h *BookHandler) ListBooksByAuthor(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	books, err := h.bookService.ListBooksByAuthor(c.Request.Context(), c.Param("id"), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponses(books))
}

// ListBooksByGenre lista os livros de um gênero
//
//	@Summary		List books by genre
//	@Tags			books
//	@Produce		json
//	@Param			id		path		string	true	"Genre ID"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.BookResponse
//	@Router			/genres/{id}/books [get]
func (h *BookHandler) ListBooksByGenre(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	books, err := h.bookService.ListBooksByGenre(c.Request.Context(), c.Param("id"), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponses(books))
}

// UpdateBook atualiza um livro
//
//	@Summary		Update book
//	@Tags			books
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Book ID"
//	@Param			book	body		dto.UpdateBookRequest	true	"Book data"
//	@Success		200		{object}	dto.BookResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/books/{id} [put]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	book, err := h.bookService.UpdateBook(c.Request.Context(), c.Param("id"), services.UpdateBookInput{
		Title:       req.Title,
		Description: req.Description,
		Year:        req.Year,
		AuthorID:    req.AuthorID,
		GenreID:     req.GenreID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}

// DeleteBook deleta um livro
// Livros com comentários ou presentes em estantes não podem ser deletados
//
//	@Summary		Delete book
//	@Tags			books
//	@Produce		json
//	@Param			id	path		string	true	"Book ID"
//	@Success		200	{object}	dto.BookResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		409	{object}	dto.ErrorResponse
//	@Router			/books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	book, err := h.bookService.DeleteBook(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToBookResponse(book))
}
