package resend

import (
	"context"
	"errors"
	"fmt"

	"github.com/benjaminbelloeil/portfolio-api/pkg/config"
	resendgo "github.com/resend/resend-go/v2"
)

// Message is a single outbound transactional email.
type Message struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

type emailSender interface {
	SendWithContext(ctx context.Context, params *resendgo.SendEmailRequest) (*resendgo.SendEmailResponse, error)
}

// Client wraps the Resend SDK with the configured send timeout. The
// timeout is deliberate: a hung provider call must fail the request
// instead of pinning it open.
type Client struct {
	emails emailSender
	cfg    config.ResendConfig
}

// New builds a provider client. It fails fast when the API key is missing
// so callers can leave the mailer nil and degrade at request time.
func New(cfg config.ResendConfig) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("resend api key is required")
	}
	sdk := resendgo.NewClient(cfg.APIKey)
	return &Client{emails: sdk.Emails, cfg: cfg}, nil
}

// Send dispatches the message and returns the provider message id.
func (c *Client) Send(ctx context.Context, msg Message) (string, error) {
	if c == nil || c.emails == nil {
		return "", errors.New("resend client not initialized")
	}
	if c.cfg.SendTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.SendTimeout)
		defer cancel()
	}

	sent, err := c.emails.SendWithContext(ctx, &resendgo.SendEmailRequest{
		From:    msg.From,
		To:      msg.To,
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	if sent == nil {
		return "", errors.New("resend send: empty response")
	}
	return sent.Id, nil
}
