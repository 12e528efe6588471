package otp

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func setupRedisRegistry(t *testing.T, ttl time.Duration) (*RedisRegistry, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisRegistry(client, ttl), mr
}

func TestRedisRegistry_IssueAndVerify(t *testing.T) {
	r, _ := setupRedisRegistry(t, time.Minute)
	ctx := context.Background()

	code, err := r.Issue(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if err := r.Verify(ctx, "a@x.com", code); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if err := r.Verify(ctx, "a@x.com", code); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound on replay, got %v", err)
	}
}

func TestRedisRegistry_Mismatch(t *testing.T) {
	r, _ := setupRedisRegistry(t, time.Minute)
	ctx := context.Background()

	code, err := r.Issue(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	wrong := "000000"
	if wrong == code {
		wrong = "999999"
	}
	if err := r.Verify(ctx, "a@x.com", wrong); err != ErrMismatch {
		t.Fatalf("expected ErrMismatch, got %v", err)
	}
	if err := r.Verify(ctx, "a@x.com", code); err != nil {
		t.Fatalf("verify after mismatch: %v", err)
	}
}

func TestRedisRegistry_ReissueOverwrites(t *testing.T) {
	r, _ := setupRedisRegistry(t, time.Minute)
	ctx := context.Background()

	first, err := r.Issue(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("first issue: %v", err)
	}
	second, err := r.Issue(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("second issue: %v", err)
	}

	if first != second {
		if err := r.Verify(ctx, "a@x.com", first); err != ErrMismatch {
			t.Fatalf("expected ErrMismatch for overwritten code, got %v", err)
		}
	}
	if err := r.Verify(ctx, "a@x.com", second); err != nil {
		t.Fatalf("verify latest code: %v", err)
	}
}

func TestRedisRegistry_Expiry(t *testing.T) {
	r, mr := setupRedisRegistry(t, time.Minute)
	ctx := context.Background()

	code, err := r.Issue(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	mr.FastForward(2 * time.Minute)

	if err := r.Verify(ctx, "a@x.com", code); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}
