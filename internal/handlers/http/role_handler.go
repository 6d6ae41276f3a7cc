package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// RoleHandler lida com requisições HTTP relacionadas a papéis
type RoleHandler struct {
	roleService *services.RoleService
}

// NewRoleHandler cria um novo RoleHandler
func NewRoleHandler(roleService *services.RoleService) *RoleHandler {
	return &RoleHandler{
		roleService: roleService,
	}
}

// CreateRole cria um novo papel
//
//	@Summary		Create role
//	@Tags			roles
//	@Accept			json
//	@Produce		json
//	@Param			role	body		dto.CreateRoleRequest	true	"Role data"
//	@Success		201		{object}	dto.RoleResponse
//	@Failure		400		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	role, err := h.roleService.CreateRole(c.Request.Context(), services.CreateRoleInput{
		Name: req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRoleResponse(role))
}

// GetRole busca um papel por ID
//
//	@Summary		Get role by ID
//	@Tags			roles
//	@Produce		json
//	@Param			id	path		string	true	"Role ID"
//	@Success		200	{object}	dto.RoleResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Router			/roles/{id} [get]
func (h *RoleHandler) GetRole(c *gin.Context) {
	role, err := h.roleService.GetRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// ListRoles lista papéis
//
//	@Summary		List roles
//	@Tags			roles
//	@Produce		json
//	@Param			skip	query		int	false	"Rows to skip"
//	@Param			limit	query		int	false	"Max rows to return"
//	@Success		200		{array}		dto.RoleResponse
//	@Router			/roles [get]
func (h *RoleHandler) ListRoles(c *gin.Context) {
	query, ok := bindListQuery(c)
	if !ok {
		return
	}

	roles, err := h.roleService.ListRoles(c.Request.Context(), query.Skip, query.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponses(roles))
}

// UpdateRole atualiza um papel
//
//	@Summary		Update role
//	@Tags			roles
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string					true	"Role ID"
//	@Param			role	body		dto.UpdateRoleRequest	true	"Role data"
//	@Success		200		{object}	dto.RoleResponse
//	@Failure		404		{object}	dto.ErrorResponse
//	@Failure		409		{object}	dto.ErrorResponse
//	@Router			/roles/{id} [put]
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	role, err := h.roleService.UpdateRole(c.Request.Context(), c.Param("id"), services.UpdateRoleInput{
		Name: req.Name,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}

// DeleteRole deleta um papel
// Papéis com usuários associados não podem ser deletados
//
//	@Summary		Delete role
//	@Tags			roles
//	@Produce		json
//	@Param			id	path		string	true	"Role ID"
//	@Success		200	{object}	dto.RoleResponse
//	@Failure		404	{object}	dto.ErrorResponse
//	@Failure		409	{object}	dto.ErrorResponse
//	@Router			/roles/{id} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	role, err := h.roleService.DeleteRole(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRoleResponse(role))
}
