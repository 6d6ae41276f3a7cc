package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/rafabene/biblioteca-backend/internal/infrastructure/i18n"
	"github.com/rafabene/biblioteca-backend/internal/services"
)

const (
	// UserIDContextKey é a chave do ID do usuário autenticado no contexto do Gin
	UserIDContextKey = "user_id"
	// UserEmailContextKey é a chave do email do usuário autenticado no contexto
	UserEmailContextKey = "user_email"
)

// AuthMiddleware valida tokens Bearer nas rotas protegidas
type AuthMiddleware struct {
	tokenService *services.TokenService
}

// NewAuthMiddleware cria um novo middleware de autenticação
func NewAuthMiddleware(tokenService *services.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// RequireAuth exige um token de acesso válido no header Authorization
// Em caso de sucesso, armazena o ID e o email do usuário no contexto
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedProblem(c))
			return
		}

		claims, err := m.tokenService.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedProblem(c))
			return
		}

		c.Set(UserIDContextKey, claims.UserID)
		c.Set(UserEmailContextKey, claims.Email)

		c.Next()
	}
}

// unauthorizedProblem monta a resposta RFC 7807 de 401
// O pacote dto não pode ser usado aqui (dependeria deste pacote de volta),
// então a montagem e a tradução são feitas diretamente
func unauthorizedProblem(c *gin.Context) *problems.DefaultProblem {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	title := "error.unauthorized.title"
	detail := "error.unauthorized.detail"

	if svc, exists := c.Get(I18nServiceContextKey); exists {
		if service, ok := svc.(*i18n.Service); ok {
			lang := service.GetDefaultLanguage()
			if l, exists := c.Get(LanguageContextKey); exists {
				if langStr, ok := l.(string); ok {
					lang = langStr
				}
			}
			title = service.T(lang, title)
			detail = service.T(lang, detail)
		}
	}

	problem := problems.NewStatusProblem(http.StatusUnauthorized)
	problem.Type = baseURL + "/problems/unauthorized"
	problem.Title = title
	problem.Detail = detail
	problem.Instance = c.Request.URL.Path

	return problem
}
