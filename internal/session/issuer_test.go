package session

import (
	"strings"
	"testing"
	"time"
)

func TestIssuer_MintAndValidate(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	token, err := issuer.Mint("user-42")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	subject, err := issuer.Validate(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if subject != "user-42" {
		t.Fatalf("expected subject user-42, got %s", subject)
	}
}

func TestIssuer_Expired(t *testing.T) {
	issuer := NewIssuer("test-secret", -time.Minute)

	token, err := issuer.Mint("user-42")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := issuer.Validate(token); err != ErrExpired {
		t.Fatalf("expected ErrExpired, got %v", err)
	}
}

func TestIssuer_TamperedToken(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)

	token, err := issuer.Mint("user-42")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token format")
	}
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	if _, err := issuer.Validate(tampered); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid for tampered token, got %v", err)
	}
}

func TestIssuer_WrongSecret(t *testing.T) {
	token, err := NewIssuer("secret-a", time.Hour).Mint("user-42")
	if err != nil {
		t.Fatalf("mint: %v", err)
	}

	if _, err := NewIssuer("secret-b", time.Hour).Validate(token); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid for wrong secret, got %v", err)
	}
}

func TestIssuer_Garbage(t *testing.T) {
	issuer := NewIssuer("test-secret", time.Hour)
	if _, err := issuer.Validate("not-a-token"); err != ErrInvalid {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}
