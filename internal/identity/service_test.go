package identity

import (
	"context"
	"testing"
)

func TestRegisterAndAuthenticate(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)

	ctx := context.Background()
	user, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Phone: "+919800000000", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID == "" {
		t.Fatalf("expected generated user id")
	}

	authed, err := svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.ID != user.ID {
		t.Fatalf("expected user %s, got %s", user.ID, authed.ID)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	repo := NewMemoryRepository()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterInput{Email: "a@x.com", Phone: "+919800000000", Password: "correct-horse"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "battery-staple"}); err != ErrMismatch {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
}

func TestAuthenticateUnknownEmail(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.Authenticate(context.Background(), Credentials{Email: "ghost@x.com", Password: "whatever"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	svc := NewService(NewMemoryRepository())

	if _, err := svc.Register(context.Background(), RegisterInput{Email: "a@x.com", Phone: "1", Password: "short"}); err == nil {
		t.Fatalf("expected error for short password")
	}
}
