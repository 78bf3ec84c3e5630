// Package mailer sends transactional email through a provider.
package mailer

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the provider has no credentials.
var ErrNotConfigured = errors.New("mailer: not configured")

// Email is one outbound message. HTML is sent as-is; callers escape or sanitize it.
type Email struct {
	From    string
	To      []string
	ReplyTo string
	Subject string
	HTML    string
}

// SendResult is what the provider reports for an accepted email.
type SendResult struct {
	ID string `json:"id"`
}

// Sender abstracts the email provider.
type Sender interface {
	// Configured reports whether Send can be attempted at all.
	Configured() bool
	Send(ctx context.Context, email Email) (SendResult, error)
}
