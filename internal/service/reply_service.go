package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/abdhesh369/portfolio-backend/internal/logging"
	"github.com/abdhesh369/portfolio-backend/internal/metrics"
	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer"
	"github.com/microcosm-cc/bluemonday"
)

// ReplyService lets the operator answer a contact message by email.
type ReplyService interface {
	// Draft applies a canned template to the sender of messageID.
	Draft(ctx context.Context, messageID, templateID int64) (model.ReplyDraft, error)
	// Reply sanitizes body and sends it to the original sender synchronously.
	// It returns ErrInvalidInput for an empty subject or body,
	// repository.ErrNotFound for an unknown message and mailer.ErrNotConfigured
	// when no provider is set up.
	Reply(ctx context.Context, messageID int64, subject, body string) error
}

// ApplyTemplate replaces every {name} placeholder in subject and body.
func ApplyTemplate(tmpl *model.EmailTemplate, senderName string) model.ReplyDraft {
	return model.ReplyDraft{
		Subject: strings.ReplaceAll(tmpl.Subject, model.NamePlaceholder, senderName),
		Body:    strings.ReplaceAll(tmpl.Body, model.NamePlaceholder, senderName),
	}
}

var (
	replyPolicyOnce sync.Once
	replyPolicy     *bluemonday.Policy
)

func replyHTMLPolicy() *bluemonday.Policy {
	replyPolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()
		p.AllowElements("p", "br", "strong", "em", "u", "a", "ul", "ol", "li")
		p.AllowAttrs("href", "target").OnElements("a")
		p.AllowStandardURLs()
		replyPolicy = p
	})
	return replyPolicy
}

// SanitizeReplyHTML strips every tag and attribute outside the reply allow-list.
// Script and style elements are removed together with their content.
func SanitizeReplyHTML(body string) string {
	return replyHTMLPolicy().Sanitize(body)
}

type replyServiceImpl struct {
	messages  repository.MessageRepository
	templates repository.EmailTemplateRepository
	sender    mailer.Sender
	from      string
}

// NewReplyService creates a ReplyService. from is the From header of replies.
func NewReplyService(messages repository.MessageRepository, templates repository.EmailTemplateRepository, sender mailer.Sender, from string) ReplyService {
	return &replyServiceImpl{messages: messages, templates: templates, sender: sender, from: from}
}

func (s *replyServiceImpl) Draft(ctx context.Context, messageID, templateID int64) (model.ReplyDraft, error) {
	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return model.ReplyDraft{}, err
	}
	tmpl, err := s.templates.GetByID(ctx, templateID)
	if err != nil {
		return model.ReplyDraft{}, err
	}
	return ApplyTemplate(tmpl, msg.Name), nil
}

func (s *replyServiceImpl) Reply(ctx context.Context, messageID int64, subject, body string) error {
	logger := logging.FromContext(ctx)

	subject = strings.Join(strings.Fields(subject), " ")
	if subject == "" || strings.TrimSpace(body) == "" {
		return ErrInvalidInput
	}

	msg, err := s.messages.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	html := SanitizeReplyHTML(body)
	if strings.TrimSpace(html) == "" {
		return ErrInvalidInput
	}

	if !s.sender.Configured() {
		metrics.IncReplyEmail(metrics.StatusSkipped)
		logger.Warn("reply requested but email provider is not configured", "message_id", messageID)
		return mailer.ErrNotConfigured
	}

	res, err := s.sender.Send(ctx, mailer.Email{
		From:    s.from,
		To:      []string{msg.Email},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		if errors.Is(err, mailer.ErrNotConfigured) {
			metrics.IncReplyEmail(metrics.StatusSkipped)
			return err
		}
		metrics.IncReplyEmail(metrics.StatusFailed)
		logger.Error("reply email failed", "message_id", messageID, "error", err)
		return fmt.Errorf("send reply: %w", err)
	}

	metrics.IncReplyEmail(metrics.StatusSent)
	logger.Info("reply email sent", "message_id", messageID, "provider_id", res.ID)
	return nil
}
