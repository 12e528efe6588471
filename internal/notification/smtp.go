package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/mallpark/mallpark/internal/config"
)

// SMTPNotifier delivers messages by email over SMTP.
type SMTPNotifier struct {
	dialer *gomail.Dialer
	from   string
}

// NewSMTPNotifier builds an SMTP notifier from the configured mail settings.
func NewSMTPNotifier(cfg config.Config) *SMTPNotifier {
	return &SMTPNotifier{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass),
		from:   cfg.SMTPFrom,
	}
}

// Send delivers the message to the destination address. Any transport error is
// wrapped in ErrDelivery so callers can map it to a typed failure.
func (n *SMTPNotifier) Send(_ context.Context, message Message) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", n.from)
	msg.SetHeader("To", message.Destination)
	msg.SetHeader("Subject", message.Subject)
	msg.SetBody("text/plain", message.Body)

	if err := n.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("%w: %v", ErrDelivery, err)
	}
	return nil
}
