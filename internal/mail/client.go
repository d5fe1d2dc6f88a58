// Package mail delivers transactional email through a SendGrid-compatible
// HTTP API. The service only ever sends from the one verified sender address
// configured at startup.
package mail

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

type Config struct {
	BaseURL string
	APIKey  string
	Sender  string
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	sender string
}

func New(cfg Config) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey)

	return &Client{http: cli, sender: cfg.Sender}
}

type address struct {
	Email string `json:"email"`
}

type personalization struct {
	To []address `json:"to"`
}

type content struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             address           `json:"from"`
	ReplyTo          *address          `json:"reply_to,omitempty"`
	Subject          string            `json:"subject"`
	Content          []content         `json:"content"`
}

// Send posts one message to the provider's mail/send endpoint. Any non-2xx
// provider response is an error carrying the status and response body; the
// failure is terminal, nothing is retried.
func (c *Client) Send(ctx context.Context, msg Message) error {
	payload := sendRequest{
		Personalizations: []personalization{{To: []address{{Email: msg.To}}}},
		From:             address{Email: c.sender},
		Subject:          msg.Subject,
		Content:          []content{{Type: "text/plain", Value: msg.Body}},
	}
	if msg.ReplyTo != "" {
		payload.ReplyTo = &address{Email: msg.ReplyTo}
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post("/mail/send")
	if err != nil {
		return fmt.Errorf("mail request failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("mail provider status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
