package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/working2003/breedingo/domain"
)

const testSecret = "test-secret-key-for-jwt-signing"

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := NewJWTService(testSecret, "breedingo", time.Hour)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("expected user id 42, got %d", claims.UserID)
	}
	if claims.ExpiresAt <= claims.IssuedAt {
		t.Errorf("expiry %d must be after issue %d", claims.ExpiresAt, claims.IssuedAt)
	}
}

func TestJWTService_UniqueJTI(t *testing.T) {
	svc := NewJWTService(testSecret, "breedingo", time.Hour)

	a, err := svc.Generate(1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	b, err := svc.Generate(1)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if a == b {
		t.Error("two tokens for the same user must differ")
	}
}

func TestJWTService_Validate_WrongSecret(t *testing.T) {
	svc := NewJWTService(testSecret, "breedingo", time.Hour)
	other := NewJWTService("a-completely-different-secret", "breedingo", time.Hour)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := other.Validate(token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_Validate_Tampered(t *testing.T) {
	svc := NewJWTService(testSecret, "breedingo", time.Hour)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected 3 token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := svc.Validate(tampered); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestJWTService_Validate_Expired(t *testing.T) {
	svc := NewJWTService(testSecret, "breedingo", -time.Minute)

	token, err := svc.Generate(42)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if _, err := svc.Validate(token); !errors.Is(err, domain.ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestJWTService_Validate_Garbage(t *testing.T) {
	svc := NewJWTService(testSecret, "breedingo", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Validate(tok); err == nil {
			t.Errorf("expected error for %q", tok)
		}
	}
}
