package otp

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

// MemoryRegistry keeps pending passcodes in a mutex-guarded map. Absence of an
// entry means no live code. Expiry is enforced lazily on Verify and by a single
// background sweep, so no per-entry timers accumulate.
type MemoryRegistry struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	done    chan struct{}
	once    sync.Once
}

// NewMemoryRegistry builds an in-process registry whose codes live for ttl.
// The sweep goroutine runs until Close is called.
func NewMemoryRegistry(ttl time.Duration) *MemoryRegistry {
	r := &MemoryRegistry{
		entries: make(map[string]entry),
		ttl:     ttl,
		done:    make(chan struct{}),
	}
	go r.sweep()
	return r
}

// Issue generates a fresh passcode for key, replacing any live one. The prior
// code, if any, can no longer be verified.
func (r *MemoryRegistry) Issue(_ context.Context, key string) (string, error) {
	code, err := GenerateCode()
	if err != nil {
		return "", err
	}

	r.mu.Lock()
	r.entries[key] = entry{code: code, expiresAt: time.Now().Add(r.ttl)}
	r.mu.Unlock()

	return code, nil
}

// Verify consumes the live passcode for key when it matches. A matched entry is
// removed before returning, so a second Verify with the same code reports
// ErrNotFound.
func (r *MemoryRegistry) Verify(_ context.Context, key, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.entries[key]
	if !ok {
		return ErrNotFound
	}
	if time.Now().After(e.expiresAt) {
		delete(r.entries, key)
		return ErrNotFound
	}
	if e.code != code {
		return ErrMismatch
	}

	delete(r.entries, key)
	return nil
}

// Close stops the background sweep. Safe to call more than once.
func (r *MemoryRegistry) Close() {
	r.once.Do(func() { close(r.done) })
}

func (r *MemoryRegistry) sweep() {
	interval := r.ttl
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-r.done:
			return
		case now := <-ticker.C:
			r.mu.Lock()
			for key, e := range r.entries {
				if now.After(e.expiresAt) {
					delete(r.entries, key)
				}
			}
			r.mu.Unlock()
		}
	}
}
