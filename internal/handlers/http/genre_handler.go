package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// GenreHandler lida com requisições HTTP relacionadas a gêneros
type GenreHandler struct {
	genreService *services.GenreService
}

// NewGenreHandler cria um novo GenreHandler
func NewGenreHandler(genreService *services.GenreService) *GenreHandler {
	return &GenreHandler{
		genreService: genreService,
	}
}

// respondGenre monta a resposta com o campo computado book_count
func (h *GenreHandler) respondGenre(c *gin.Context, status int, genre *entities.Genre) {
	count, err := h.genreService.BookCount(c.Request.Context(), genre.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(status, dto.ToGenreResponse(genre, count))
}

// CreateGenre cria um novo gênero
//
//	@Summary		Create genre
//	@Tags			genres
//	@Accept			json
//	@Produce		json
//	@Param			genre	body		dto.CreateGenreRequest	true	"Genre data"
//	@Success		201		{object}	dto.GenreResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/genres [post]
func (h *GenreHandler) CreateGenre(c *gin.Context) {
	var req dto.CreateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := h.genreService.CreateGenre(c.Request.Context(), services.CreateGenreInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGenreResponse(genre, 0))
}

// GetGenre busca um gênero por ID
//
//	@Summary		Get genre by ID
//	@Tags			genres
//	@Produce		json
//	@Param			id	path		string	true	"Genre ID"
//	@Success		200	{object}	dto.GenreResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/genres/{id} [get]
func (h *GenreHandler) GetGenre(c *gin.Context) {
	genre, err := h.genreService.GetGenre(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondGenre(c, http.StatusOK, genre)
}

// ListGenres lista gêneros
// Com o filtro ?name= retorna o gênero daquele nome (404 se não existir)
//
//	@Summary		List genres
//	@Tags			genres
//	@Produce		json
//	@Param			name	query		string	false	"Lookup by name"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.GenreResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Router			/genres [get]
func (h *GenreHandler) ListGenres(c *gin.Context) {
	if name := c.Query("name"); name != "" {
		genre, err := h.genreService.GetGenreByName(c.Request.Context(), name)
		if err != nil {
			respondError(c, err)
			return
		}
		h.respondGenre(c, http.StatusOK, genre)
		return
	}

	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	genres, err := h.genreService.ListGenres(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.GenreResponse, 0, len(genres))
	for _, genre := range genres {
		count, err := h.genreService.BookCount(c.Request.Context(), genre.ID)
		if err != nil {
			respondError(c, err)
			return
		}
		responses = append(responses, dto.ToGenreResponse(genre, count))
	}

	c.JSON(http.StatusOK, responses)
}

// UpdateGenre atualiza um gênero
//
//	@Summary		Update genre
//	@Tags			genres
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Genre ID"
//	@Param			genre	body		dto.UpdateGenreRequest	true	"Genre data"
//	@Success		200		{object}	dto.GenreResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/genres/{id} [put]
func (h *GenreHandler) UpdateGenre(c *gin.Context) {
	var req dto.UpdateGenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	genre, err := h.genreService.UpdateGenre(c.Request.Context(), c.Param("id"), services.UpdateGenreInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	h.respondGenre(c, http.StatusOK, genre)
}

// DeleteGenre deleta um gênero
// Gêneros com livros associados não podem ser deletados
//
//	@Summary		Delete genre
//	@Tags			genres
//	@Produce		json
//	@Param			id	path		string	true	"Genre ID"
//	@Success		200	{object}	dto.GenreResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		409	{object}	dto.ErrorResponse
//	@Router			/genres/{id} [delete]
func (h *GenreHandler) DeleteGenre(c *gin.Context) {
	genre, err := h.genreService.DeleteGenre(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGenreResponse(genre, 0))
}
