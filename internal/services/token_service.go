package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	"github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/infrastructure/config"
)

// Claims são as claims dos tokens de acesso emitidos pela API
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	RoleID string `json:"role_id"`
	jwt.RegisteredClaims
}

// TokenService emite e valida tokens JWT de acesso
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService cria um novo TokenService a partir da configuração JWT
func NewTokenService(cfg config.JWTConfig) (*TokenService, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	expiry, err := time.ParseDuration(cfg.AccessExpiry)
	if err != nil {
		return nil, fmt.Errorf("invalid jwt access expiry: %w", err)
	}

	return &TokenService{
		secret: []byte(cfg.Secret),
		expiry: expiry,
	}, nil
}

// Issue emite um token de acesso para o usuário
func (s *TokenService) Issue(user *entities.User) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email.String(),
		RoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse valida um token de acesso e retorna suas claims
// Tokens expirados, malformados ou com assinatura inválida produzem
// ErrUnauthorized
func (s *TokenService) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.ErrUnauthorized
	}

	return claims, nil
}

// Expiry retorna a validade configurada dos tokens emitidos
func (s *TokenService) Expiry() time.Duration {
	return s.expiry
}
