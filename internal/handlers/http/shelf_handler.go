package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// ShelfHandler lida com requisições HTTP da estante de leitura
type ShelfHandler struct {
	shelfService *services.ShelfService
}

// NewShelfHandler cria um novo ShelfHandler
func NewShelfHandler(shelfService *services.ShelfService) *ShelfHandler {
	return &ShelfHandler{
		shelfService: shelfService,
	}
}

// AddToShelf adiciona um livro à estante de um usuário
//
//	@Summary		Add book to shelf
//	@Tags			shelf
//	@Accept			json
//	@Produce		json
//	@Param			entry	body		dto.AddToShelfRequest	true	"Shelf entry data"
//	@Success		201		{object}	dto.ShelfEntryResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/shelf [post]
func (h *ShelfHandler) AddToShelf(c *gin.Context) {
	var req dto.AddToShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.shelfService.AddToShelf(c.Request.Context(), services.AddToShelfInput{
		BookID:     req.BookID,
		UserID:     req.UserID,
		StatusRead: req.StatusRead,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToShelfEntryResponse(entry))
}

// GetShelfEntry busca uma entrada de estante por ID
//
//	@Summary		Get shelf entry by ID
//	@Tags			shelf
//	@Produce		json
//	@Param			id	path		string	true	"Shelf entry ID"
//	@Success		200	{object}	dto.ShelfEntryResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/shelf/{id} [get]
func (h *ShelfHandler) GetShelfEntry(c *gin.Context) {
	entry, err := h.shelfService.GetShelfEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponse(entry))
}

// GetShelfEntryByUserAndBook busca a entrada de um par (usuário, livro)
//
//	@Summary		Get shelf entry by user and book
//	@Tags			shelf
//	@Produce		json
//	@Param			id		path		string	true	"User ID"
//	@Param			book_id	path		string	true	"Book ID"
//	@Success		200		{object}	dto.ShelfEntryResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/users/{id}/shelf/{book_id} [get]
func (h *ShelfHandler) GetShelfEntryByUserAndBook(c *gin.Context) {
	entry, err := h.shelfService.GetShelfEntryByUserAndBook(c.Request.Context(), c.Param("id"), c.Param("book_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponse(entry))
}

// ListShelf lista entradas de estante
//
//	@Summary		List shelf entries
//	@Tags			shelf
//	@Produce		json
//	@Param			skip	query		int	false	"Rows to skip"
//	@Param			limit	query		int	false	"Max rows to return"
//	@Success		200		{array}		dto.ShelfEntryResponse
//	@Router			/shelf [get]
func (h *ShelfHandler) ListShelf(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	entries, err := h.shelfService.ListShelf(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponses(entries))
}

// ListShelfByUser lista a estante de um usuário
// Com o filtro ?read=true retorna apenas os livros já lidos
//
//	@Summary		List shelf by user
//	@Tags			shelf
//	@Produce		json
//	@Param			id		path		string	true	"User ID"
//	@Param			read	query		bool	false	"Only read books"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.ShelfEntryResponse
//	@Router			/users/{id}/shelf [get]
func (h *ShelfHandler) ListShelfByUser(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	var err error
	var entries []*entities.ShelfEntry

	if c.Query("read") == "true" {
		entries, err = h.shelfService.ListReadByUser(c.Request.Context(), c.Param("id"), query.Skip, query.Limit)
	} else {
		entries, err = h.shelfService.ListShelfByUser(c.Request.Context(), c.Param("id"), query.Skip, query.Limit)
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponses(entries))
}

// ListShelfByBook lista as entradas de estante de um livro
//
//	@Summary		List shelf entries by book
//	@Tags			shelf
//	@Produce		json
//	@Param			id		path		string	true	"Book ID"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.ShelfEntryResponse
//	@Router			/books/{id}/shelf [get]
func (h *ShelfHandler) ListShelfByBook(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	entries, err := h.shelfService.ListShelfByBook(c.Request.Context(), c.Param("id"), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponses(entries))
}

// UpdateShelfEntry atualiza o status de leitura de uma entrada
//
//	@Summary		Update shelf entry
//	@Tags			shelf
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Shelf entry ID"
//	@Param			entry	body		dto.UpdateShelfEntryRequest	true	"Shelf entry data"
//	@Success		200		{object}	dto.ShelfEntryResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/shelf/{id} [put]
func (h *ShelfHandler) UpdateShelfEntry(c *gin.Context) {
	var req dto.UpdateShelfEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	entry, err := h.shelfService.UpdateShelfEntry(c.Request.Context(), c.Param("id"), services.UpdateShelfEntryInput{
		StatusRead: req.StatusRead,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponse(entry))
}

// MarkAsRead marca o livro de um par (usuário, livro) como lido
//
//	@Summary		Mark shelf entry as read
//	@Tags			shelf
//	@Produce		json
//	@Param			id		path		string	true	"User ID"
//	@Param			book_id	path		string	true	"Book ID"
//	@Success		200		{object}	dto.ShelfEntryResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/users/{id}/shelf/{book_id}/read [patch]
func (h *ShelfHandler) MarkAsRead(c *gin.Context) {
	entry, err := h.shelfService.MarkAsRead(c.Request.Context(), c.Param("id"), c.Param("book_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponse(entry))
}

// DeleteShelfEntry remove uma entrada da estante por ID
//
//	@Summary		Delete shelf entry
//	@Tags			shelf
//	@Produce		json
//	@Param			id	path		string	true	"Shelf entry ID"
//	@Success		200	{object}	dto.ShelfEntryResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/shelf/{id} [delete]
func (h *ShelfHandler) DeleteShelfEntry(c *gin.Context) {
	entry, err := h.shelfService.DeleteShelfEntry(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponse(entry))
}

// DeleteByUserAndBook remove a entrada de um par (usuário, livro)
//
//	@Summary		Delete shelf entry by user and book
//	@Tags			shelf
//	@Produce		json
//	@Param			id		path		string	true	"User ID"
//	@Param			book_id	path		string	true	"Book ID"
//	@Success		200		{object}	dto.ShelfEntryResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/users/{id}/shelf/{book_id} [delete]
func (h *ShelfHandler) DeleteByUserAndBook(c *gin.Context) {
	entry, err := h.shelfService.DeleteByUserAndBook(c.Request.Context(), c.Param("id"), c.Param("book_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToShelfEntryResponse(entry))
}
