package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// CommentHandler lida com requisições HTTP relacionadas a comentários
type CommentHandler struct {
	commentService *services.CommentService
}

// NewCommentHandler cria um novo CommentHandler
func NewCommentHandler(commentService *services.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// CreateComment cria um novo comentário
//
//	@Summary		Create comment
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			comment	body		dto.CreateCommentRequest	true	"Comment data"
//	@Success		201		{object}	dto.CommentResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/comments [post]
func (h *CommentHandler) CreateComment(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentService.CreateComment(c.Request.Context(), services.CreateCommentInput{
		BookID: req.BookID,
		UserID: req.UserID,
		Text:   req.Text,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCommentResponse(comment))
}

// GetComment busca um comentário por ID
//
//	@Summary		Get comment by ID
//	@Tags			comments
//	@Produce		json
//	@Param			id	path		string	true	"Comment ID"
//	@Success		200	{object}	dto.CommentResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/comments/{id} [get]
func (h *CommentHandler) GetComment(c *gin.Context) {
	comment, err := h.commentService.GetComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// ListComments lista comentários
//
//	@Summary		List comments
//	@Tags			comments
//	@Produce		json
//	@Param			skip	query		int	false	"Rows to skip"
//	@Param			limit	query		int	false	"Max rows to return"
//	@Success		200		{array}		dto.CommentResponse
//	@Router			/comments [get]
func (h *CommentHandler) ListComments(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListComments(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// ListCommentsByBook lista os comentários de um livro
//
//	@Summary		List comments by book
//	@Tags			comments
//	@Produce		json
//	@Param			id		path		string	true	"Book ID"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.CommentResponse
//	@Router			/books/{id}/comments [get]
func (h *CommentHandler) ListCommentsByBook(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListCommentsByBook(c.Request.Context(), c.Param("id"), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// ListCommentsByUser lista os comentários de um usuário
//
//	@Summary		List comments by user
//	@Tags			comments
//	@Produce		json
//	@Param			id		path		string	true	"User ID"
//	@Param			skip	query		int		false	"Rows to skip"
//	@Param			limit	query		int		false	"Max rows to return"
//	@Success		200		{array}		dto.CommentResponse
//	@Router			/users/{id}/comments [get]
func (h *CommentHandler) ListCommentsByUser(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	comments, err := h.commentService.ListCommentsByUser(c.Request.Context(), c.Param("id"), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponses(comments))
}

// UpdateComment atualiza o texto de um comentário
//
//	@Summary		Update comment
//	@Tags			comments
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Comment ID"
//	@Param			comment	body		dto.UpdateCommentRequest	true	"Comment data"
//	@Success		200		{object}	dto.CommentResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/comments/{id} [put]
func (h *CommentHandler) UpdateComment(c *gin.Context) {
	var req dto.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentService.UpdateComment(c.Request.Context(), c.Param("id"), services.UpdateCommentInput{
		Text: req.Text,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}

// DeleteComment deleta um comentário
//
//	@Summary		Delete comment
//	@Tags			comments
//	@Produce		json
//	@Param			id	path		string	true	"Comment ID"
//	@Success		200	{object}	dto.CommentResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/comments/{id} [delete]
func (h *CommentHandler) DeleteComment(c *gin.Context) {
	comment, err := h.commentService.DeleteComment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}
