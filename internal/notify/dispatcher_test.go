package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer/mailertest"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() Config {
	return Config{From: "Site <noreply@example.com>", To: "owner@example.com", Workers: 1, QueueSize: 10}
}

func waitEmail(t *testing.T, ch <-chan mailer.Email) mailer.Email {
	t.Helper()
	select {
	case e := <-ch:
		return e
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for email")
	}
	return mailer.Email{}
}

func TestDispatcher_SendsOwnerNotification(t *testing.T) {
	fake := mailertest.NewFakeSender()
	fake.Notify = make(chan mailer.Email, 1)
	d := NewDispatcher(fake, testConfig(), quietLogger())
	d.Start(context.Background())
	defer d.Shutdown(context.Background())

	d.Enqueue(model.Message{ID: 1, Name: "Jane", Email: "jane@x.com", Subject: "Hello", Message: "Hi there"})

	email := waitEmail(t, fake.Notify)
	if len(email.To) != 1 || email.To[0] != "owner@example.com" {
		t.Errorf("expected owner recipient, got %v", email.To)
	}
	if email.ReplyTo != "jane@x.com" {
		t.Errorf("expected reply-to sender, got %q", email.ReplyTo)
	}
	if email.From != "Site <noreply@example.com>" {
		t.Errorf("unexpected from %q", email.From)
	}
}

func TestDispatcher_SkipsWhenUnconfigured(t *testing.T) {
	fake := mailertest.NewFakeSender()
	fake.Unconfigured = true
	d := NewDispatcher(fake, testConfig(), quietLogger())
	d.Start(context.Background())

	d.Enqueue(model.Message{ID: 1, Name: "Jane", Email: "jane@x.com", Message: "Hi"})
	if err := d.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	if fake.Count() != 0 {
		t.Errorf("expected no send attempt, got %d", fake.Count())
	}
}

func TestDispatcher_SkipsWithoutOwnerAddress(t *testing.T) {
	fake := mailertest.NewFakeSender()
	cfg := testConfig()
	cfg.To = ""
	d := NewDispatcher(fake, cfg, quietLogger())
	d.Start(context.Background())

	d.Enqueue(model.Message{ID: 1, Name: "Jane", Email: "jane@x.com", Message: "Hi"})
	_ = d.Shutdown(context.Background())

	if fake.Count() != 0 {
		t.Errorf("expected no send attempt, got %d", fake.Count())
	}
}

func TestDispatcher_FailureIsSingleAttempt(t *testing.T) {
	fake := mailertest.NewFakeSender()
	fake.Err = errors.New("provider down")
	d := NewDispatcher(fake, testConfig(), quietLogger())
	d.Start(context.Background())

	d.Enqueue(model.Message{ID: 9, Name: "Jane", Email: "jane@x.com", Message: "Hi"})
	if err := d.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	if fake.Count() != 1 {
		t.Errorf("expected exactly one attempt, got %d", fake.Count())
	}
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	fake := mailertest.NewFakeSender()
	cfg := testConfig()
	cfg.QueueSize = 1
	d := NewDispatcher(fake, cfg, quietLogger()) // not started: nothing drains the queue

	done := make(chan struct{})
	go func() {
		for i := 0; i < 5; i++ {
			d.Enqueue(model.Message{ID: int64(i)})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Enqueue blocked on a full queue")
	}
}

func TestDispatcher_EnqueueAfterShutdownIsDropped(t *testing.T) {
	fake := mailertest.NewFakeSender()
	d := NewDispatcher(fake, testConfig(), quietLogger())
	d.Start(context.Background())
	_ = d.Shutdown(context.Background())

	d.Enqueue(model.Message{ID: 1, Name: "Jane", Email: "jane@x.com", Message: "Hi"})

	if fake.Count() != 0 {
		t.Errorf("expected no send after shutdown, got %d", fake.Count())
	}
}

func TestDispatcher_ShutdownDrainsQueue(t *testing.T) {
	fake := mailertest.NewFakeSender()
	d := NewDispatcher(fake, testConfig(), quietLogger())

	for i := 1; i <= 3; i++ {
		d.Enqueue(model.Message{ID: int64(i), Name: "Jane", Email: "jane@x.com", Message: "Hi"})
	}
	d.Start(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := d.Shutdown(ctx); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	if fake.Count() != 3 {
		t.Errorf("expected 3 sends after drain, got %d", fake.Count())
	}
}
