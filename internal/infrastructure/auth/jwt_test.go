package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/kioko/vaultledger/internal/domain"
)

func TestJWTManager_GenerateAndVerify(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, nil)

	token, err := manager.Generate("op-1", "Jane Operator", "supervisor")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	claims, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}

	if claims.OperatorID != "op-1" {
		t.Errorf("expected operator op-1, got %s", claims.OperatorID)
	}
	if claims.Role != "supervisor" {
		t.Errorf("expected role supervisor, got %s", claims.Role)
	}
}

func TestJWTManager_Expired(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)
	manager := NewJWTManager("test-secret", time.Hour, func() time.Time { return now })

	token, err := manager.Generate("op-1", "Jane Operator", "teller")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	now = now.Add(2 * time.Hour)
	if _, err := manager.Verify(token); !errors.Is(err, domain.ErrExpiredToken) {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, nil)
	other := NewJWTManager("other-secret", time.Hour, nil)

	token, err := manager.Generate("op-1", "Jane Operator", "teller")
	if err != nil {
		t.Fatalf("generate failed: %v", err)
	}

	if _, err := other.Verify(token); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTManager_Garbage(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, nil)

	if _, err := manager.Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
