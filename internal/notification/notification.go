package notification

import (
	"context"
	"errors"
	"log/slog"
)

const (
	// KindLoginPasscode indicates a one-time login passcode delivery.
	KindLoginPasscode = "login_passcode"
	// KindBookingConfirmed indicates a slot reservation confirmation.
	KindBookingConfirmed = "booking_confirmed"
)

// ErrDelivery indicates the message could not be handed to the channel. The
// caller must surface it; a passcode the user never received is a failed login
// attempt, not a success.
var ErrDelivery = errors.New("notification delivery failed")

// Message describes a notification payload.
type Message struct {
	Kind        string
	Destination string
	Subject     string
	Body        string
}

// Notifier delivers notifications to an out-of-band channel.
type Notifier interface {
	Send(ctx context.Context, message Message) error
}

// LoggerNotifier writes notifications to the structured logger. Used in dev
// mode where no SMTP channel is configured.
type LoggerNotifier struct {
	logger *slog.Logger
}

// NewLoggerNotifier constructs a logging notifier.
func NewLoggerNotifier(logger *slog.Logger) *LoggerNotifier {
	return &LoggerNotifier{logger: logger}
}

// Send writes the message to the structured logger.
func (n *LoggerNotifier) Send(_ context.Context, message Message) error {
	if n == nil || n.logger == nil {
		return nil
	}
	n.logger.Info("notification", "kind", message.Kind, "destination", message.Destination, "subject", message.Subject, "body", message.Body)
	return nil
}
