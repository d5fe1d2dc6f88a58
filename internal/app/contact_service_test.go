package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-api/internal/mail"
)

type fakeMailer struct {
	sent []mail.Message
	err  error
}

func (f *fakeMailer) Send(_ context.Context, msg mail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func TestContactSend(t *testing.T) {
	mailer := &fakeMailer{}
	svc := NewContactService(mailer)

	msg := mail.Message{To: "b@x.com", Subject: "Hello", Body: "A note.", ReplyTo: "a@x.com"}
	err := svc.Send(context.Background(), msg)
	require.NoError(t, err)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, msg, mailer.sent[0])
}

func TestContactSend_MissingFields(t *testing.T) {
	svc := NewContactService(&fakeMailer{})

	cases := []struct {
		name string
		msg  mail.Message
	}{
		{"only to", mail.Message{To: "b@x.com"}},
		{"no subject", mail.Message{To: "b@x.com", Body: "b"}},
		{"no body", mail.Message{To: "b@x.com", Subject: "s"}},
		{"blank to", mail.Message{To: "  ", Subject: "s", Body: "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Send(context.Background(), tc.msg)
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestContactSend_NotConfigured(t *testing.T) {
	svc := NewContactService(nil)
	err := svc.Send(context.Background(), mail.Message{To: "b@x.com", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, ErrMailerNotConfigured)
}

func TestContactSend_ProviderFailure(t *testing.T) {
	providerErr := errors.New("provider 500")
	svc := NewContactService(&fakeMailer{err: providerErr})

	err := svc.Send(context.Background(), mail.Message{To: "b@x.com", Subject: "s", Body: "b"})
	assert.ErrorIs(t, err, providerErr)
}
