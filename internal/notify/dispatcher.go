// Package notify emails the site owner about new contact messages without
// holding up the request that created them.
package notify

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/abdhesh369/portfolio-backend/internal/metrics"
	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer"
)

// Config configures a Dispatcher.
type Config struct {
	From        string // sender address
	To          string // owner inbox
	Workers     int
	QueueSize   int
	SendTimeout time.Duration
}

// Dispatcher delivers owner notifications from a bounded queue.
// Every message gets at most one send attempt; failures are logged only.
type Dispatcher struct {
	sender mailer.Sender
	cfg    Config
	logger *slog.Logger

	queue chan model.Message
	wg    sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool
}

// NewDispatcher creates a Dispatcher. Call Start before Enqueue.
func NewDispatcher(sender mailer.Sender, cfg Config, logger *slog.Logger) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 2
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 100
	}
	if cfg.SendTimeout <= 0 {
		cfg.SendTimeout = 15 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sender: sender,
		cfg:    cfg,
		logger: logger.With("component", "notify"),
		queue:  make(chan model.Message, cfg.QueueSize),
	}
}

// Start launches the workers. ctx bounds every send.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.started {
		return
	}
	d.started = true
	for i := 0; i < d.cfg.Workers; i++ {
		d.wg.Add(1)
		go d.worker(ctx)
	}
}

// Enqueue schedules a notification for msg. It never blocks; if the queue is
// full or the dispatcher is shut down the notification is dropped and logged.
func (d *Dispatcher) Enqueue(msg model.Message) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		d.logger.Warn("dispatcher closed, dropping notification", "message_id", msg.ID)
		metrics.IncNotificationEmail(metrics.StatusDropped)
		return
	}
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping notification", "message_id", msg.ID)
		metrics.IncNotificationEmail(metrics.StatusDropped)
	}
}

// Shutdown stops accepting work and waits for queued notifications to be
// attempted, or for ctx to end.
func (d *Dispatcher) Shutdown(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for msg := range d.queue {
		d.deliver(ctx, msg)
	}
}

// deliver makes the single send attempt for msg.
func (d *Dispatcher) deliver(ctx context.Context, msg model.Message) {
	log := d.logger.With("message_id", msg.ID)

	if !d.sender.Configured() || d.cfg.To == "" {
		log.Warn("email provider not configured, skipping owner notification")
		metrics.IncNotificationEmail(metrics.StatusSkipped)
		return
	}

	subject, html, err := RenderOwnerEmail(&msg)
	if err != nil {
		log.Error("render owner notification failed", "error", err)
		metrics.IncNotificationEmail(metrics.StatusFailed)
		return
	}

	sendCtx, cancel := context.WithTimeout(ctx, d.cfg.SendTimeout)
	defer cancel()

	res, err := d.sender.Send(sendCtx, mailer.Email{
		From:    d.cfg.From,
		To:      []string{d.cfg.To},
		ReplyTo: msg.Email,
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			log.Warn("email provider not configured, skipping owner notification")
			metrics.IncNotificationEmail(metrics.StatusSkipped)
			return
		}
		log.Error("owner notification failed", "error", err)
		metrics.IncNotificationEmail(metrics.StatusFailed)
		return
	}
	log.Info("owner notification sent", "email_id", res.ID)
	metrics.IncNotificationEmail(metrics.StatusSent)
}
