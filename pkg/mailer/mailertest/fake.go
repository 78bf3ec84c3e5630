// Package mailertest provides an in-memory mailer.Sender for tests.
package mailertest

import (
	"context"
	"fmt"
	"sync"

	"github.com/abdhesh369/portfolio-backend/pkg/mailer"
)

// FakeSender records every email it is asked to send.
type FakeSender struct {
	mu   sync.Mutex
	Sent []mailer.Email

	// Unconfigured makes Configured report false and Send return ErrNotConfigured.
	Unconfigured bool
	// Err, if set, is returned by Send after recording the attempt.
	Err error

	// Notify, if non-nil, receives each email after it is recorded.
	Notify chan mailer.Email
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

var _ mailer.Sender = (*FakeSender)(nil)

func (f *FakeSender) Configured() bool {
	return !f.Unconfigured
}

func (f *FakeSender) Send(ctx context.Context, email mailer.Email) (mailer.SendResult, error) {
	if f.Unconfigured {
		return mailer.SendResult{}, mailer.ErrNotConfigured
	}
	f.mu.Lock()
	f.Sent = append(f.Sent, email)
	n := len(f.Sent)
	f.mu.Unlock()

	if f.Notify != nil {
		f.Notify <- email
	}
	if f.Err != nil {
		return mailer.SendResult{}, f.Err
	}
	return mailer.SendResult{ID: fmt.Sprintf("fake-%d", n)}, nil
}

// Count returns the number of recorded emails.
func (f *FakeSender) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.Sent)
}

// LastSent returns the most recent email, or nil.
func (f *FakeSender) LastSent() *mailer.Email {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.Sent) == 0 {
		return nil
	}
	e := f.Sent[len(f.Sent)-1]
	return &e
}
