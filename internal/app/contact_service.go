package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"portfolio-api/internal/mail"
)

var (
	ErrMissingFields       = errors.New("missing fields")
	ErrMailerNotConfigured = errors.New("mail delivery not configured")
)

// Mailer is the outbound mail provider as consumed by the contact relay.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) error
}

// ContactService relays contact-form submissions straight to the mail
// provider. No persistence, no retries; a provider failure is terminal for
// the request.
type ContactService struct {
	mailer Mailer
}

func NewContactService(mailer Mailer) *ContactService {
	return &ContactService{mailer: mailer}
}

func (s *ContactService) Send(ctx context.Context, msg mail.Message) error {
	if strings.TrimSpace(msg.To) == "" ||
		strings.TrimSpace(msg.Subject) == "" ||
		strings.TrimSpace(msg.Body) == "" {
		return ErrMissingFields
	}
	if s.mailer == nil {
		return ErrMailerNotConfigured
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send contact mail failed: %w", err)
	}
	return nil
}
