package auth

import (
	"context"
	"fmt"

	"github.com/mallpark/mallpark/internal/identity"
	"github.com/mallpark/mallpark/internal/notification"
	"github.com/mallpark/mallpark/internal/otp"
	"github.com/mallpark/mallpark/internal/session"
)

// Service orchestrates the two-factor login flow: password check, passcode
// issuance and delivery, passcode confirmation, session token minting.
type Service struct {
	ids      *identity.Service
	codes    otp.Registry
	sessions *session.Issuer
	notifier notification.Notifier
}

// NewService wires the authentication flow.
func NewService(ids *identity.Service, codes otp.Registry, sessions *session.Issuer, notifier notification.Notifier) *Service {
	return &Service{ids: ids, codes: codes, sessions: sessions, notifier: notifier}
}

// Login completes the first factor and dispatches a one-time passcode to the
// user's email. A delivery failure aborts the attempt; the pending entry is
// left to expire on its own.
func (s *Service) Login(ctx context.Context, creds identity.Credentials) error {
	user, err := s.ids.Authenticate(ctx, creds)
	if err != nil {
		return err
	}

	code, err := s.codes.Issue(ctx, user.Email)
	if err != nil {
		return err
	}

	msg := notification.Message{
		Kind:        notification.KindLoginPasscode,
		Destination: user.Email,
		Subject:     "Your parking login code",
		Body:        fmt.Sprintf("Your one-time login code is %s. It expires in a few minutes.", code),
	}
	if err := s.notifier.Send(ctx, msg); err != nil {
		return fmt.Errorf("dispatch passcode: %w", err)
	}

	return nil
}

// Confirm completes the second factor and mints a session token for the user.
func (s *Service) Confirm(ctx context.Context, email, code string) (string, error) {
	user, err := s.ids.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}

	if err := s.codes.Verify(ctx, user.Email, code); err != nil {
		return "", err
	}

	return s.sessions.Mint(user.ID)
}
