package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotFound indicates no live passcode exists for the identity: never
	// issued, already consumed, or expired.
	ErrNotFound = errors.New("passcode not found")

	// ErrMismatch indicates a live passcode exists but the submitted code differs.
	ErrMismatch = errors.New("passcode mismatch")
)

// Registry stores one-time passcodes keyed by identity. Issuing overwrites any
// live entry for the same key; verification consumes the entry exactly once.
type Registry interface {
	Issue(ctx context.Context, key string) (string, error)
	Verify(ctx context.Context, key, code string) error
}

const (
	codeMin  = 100000
	codeSpan = 900000
)

// GenerateCode returns a uniformly random 6-digit passcode in [100000, 999999].
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeSpan))
	if err != nil {
		return "", fmt.Errorf("generate passcode: %w", err)
	}
	return fmt.Sprintf("%06d", codeMin+n.Int64()), nil
}
