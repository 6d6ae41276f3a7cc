package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/biblioteca-backend/internal/handlers/dto"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

// AuthHandler lida com autenticação
type AuthHandler struct {
	userService  *services.UserService
	tokenService *services.TokenService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(userService *services.UserService, tokenService *services.TokenService) *AuthHandler {
	return &AuthHandler{
		userService:  userService,
		tokenService: tokenService,
	}
}

// Login autentica um usuário e emite um token de acesso
//
//	@Summary		Login
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		dto.LoginRequest	true	"Credentials"
//	@Success		200			{object}	dto.LoginResponse
//	@Failure		400			{object}	dto.ErrorResponse
//	@Failure		401			{object}	dto.ErrorResponse
//	@Router			/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokenService.Issue(user)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(h.tokenService.Expiry().Seconds()),
		User:        dto.ToUserResponse(user),
	})
}
