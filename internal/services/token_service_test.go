package services

import (
	"errors"
	"testing"

	"github.com/rafabene/biblioteca-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/biblioteca-backend/internal/domain/errors"
	"github.com/rafabene/biblioteca-backend/internal/domain/valueobjects"
	"github.com/rafabene/biblioteca-backend/internal/infrastructure/config"
)

func testUser(t *testing.T) *entities.User {
	t.Helper()

	email, err := valueobjects.NewEmail("maria@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	return &entities.User{
		ID:     "4a1d5c51-0a8e-4f68-9c8f-0d9f6a2b1c3d",
		Name:   "Maria Silva",
		Email:  email,
		RoleID: "9b2e6d62-1b9f-4a79-8d90-1e0a7b3c2d4e",
	}
}

func TestTokenService(t *testing.T) {
	t.Run("emite e valida um token de acesso", func(t *testing.T) {
		svc, err := NewTokenService(config.JWTConfig{Secret: "test-secret", AccessExpiry: "1h"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		user := testUser(t)
		token, err := svc.Issue(user)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		claims, err := svc.Parse(token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if claims.UserID != user.ID {
			t.Errorf("expected user ID %q, got %q", user.ID, claims.UserID)
		}
		if claims.Email != "maria@example.com" {
			t.Errorf("expected email %q, got %q", "maria@example.com", claims.Email)
		}
	})

	t.Run("rejeita token assinado com outro segredo", func(t *testing.T) {
		issuer, err := NewTokenService(config.JWTConfig{Secret: "secret-a", AccessExpiry: "1h"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		verifier, err := NewTokenService(config.JWTConfig{Secret: "secret-b", AccessExpiry: "1h"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		token, err := issuer.Issue(testUser(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := verifier.Parse(token); !errors.Is(err, domainerrors.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("rejeita token expirado", func(t *testing.T) {
		svc, err := NewTokenService(config.JWTConfig{Secret: "test-secret", AccessExpiry: "-1h"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		token, err := svc.Issue(testUser(t))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.Parse(token); !errors.Is(err, domainerrors.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("rejeita token malformado", func(t *testing.T) {
		svc, err := NewTokenService(config.JWTConfig{Secret: "test-secret", AccessExpiry: "1h"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := svc.Parse("not-a-token"); !errors.Is(err, domainerrors.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("rejeita configuração sem segredo", func(t *testing.T) {
		if _, err := NewTokenService(config.JWTConfig{AccessExpiry: "1h"}); err == nil {
			t.Error("expected error for missing secret")
		}
	})
}
