package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer"
	"github.com/abdhesh369/portfolio-backend/pkg/mailer/mailertest"
)

func janeRepo() *mockMessageRepository {
	return &mockMessageRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*model.Message, error) {
			if id != 7 {
				return nil, repository.ErrNotFound
			}
			return &model.Message{ID: 7, Name: "Abdhesh", Email: "abdhesh@example.com"}, nil
		},
	}
}

// ---------------------------------------------------------------------------
// ApplyTemplate / SanitizeReplyHTML
// ---------------------------------------------------------------------------

func TestApplyTemplate_ReplacesEveryPlaceholder(t *testing.T) {
	tmpl := &model.EmailTemplate{Subject: "Hi {name}", Body: "Dear {name}, thanks {name}!"}
	d := ApplyTemplate(tmpl, "Abdhesh")

	if d.Subject != "Hi Abdhesh" {
		t.Errorf("unexpected subject %q", d.Subject)
	}
	if d.Body != "Dear Abdhesh, thanks Abdhesh!" {
		t.Errorf("unexpected body %q", d.Body)
	}
	if strings.Contains(d.Subject+d.Body, "{name}") {
		t.Error("placeholder left behind")
	}
}

func TestSanitizeReplyHTML(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		contains []string
		absent   []string
	}{
		{
			name:     "script removed with content",
			in:       `<script>alert(1)</script><p>hi</p>`,
			contains: []string{"<p>hi</p>"},
			absent:   []string{"script", "alert"},
		},
		{
			name:     "allowed formatting kept",
			in:       `<p><strong>a</strong><em>b</em><u>c</u><br></p><ul><li>x</li></ul><ol><li>y</li></ol>`,
			contains: []string{"<strong>a</strong>", "<em>b</em>", "<u>c</u>", "<ul><li>x</li></ul>", "<ol><li>y</li></ol>"},
		},
		{
			name:     "link keeps href and target",
			in:       `<a href="https://example.com" target="_blank" onclick="evil()">site</a>`,
			contains: []string{`href="https://example.com"`, `target="_blank"`},
			absent:   []string{"onclick"},
		},
		{
			name:   "javascript url dropped",
			in:     `<a href="javascript:alert(1)">x</a>`,
			absent: []string{"javascript"},
		},
		{
			name:     "disallowed tags stripped",
			in:       `<div style="color:red"><img src=x onerror=alert(1)><h1>Title</h1></div>`,
			contains: []string{"Title"},
			absent:   []string{"<div", "<img", "<h1", "style", "onerror"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := SanitizeReplyHTML(tt.in)
			for _, s := range tt.contains {
				if !strings.Contains(out, s) {
					t.Errorf("expected %q in %q", s, out)
				}
			}
			for _, s := range tt.absent {
				if strings.Contains(out, s) {
					t.Errorf("did not expect %q in %q", s, out)
				}
			}
		})
	}
}

// ---------------------------------------------------------------------------
// Reply
// ---------------------------------------------------------------------------

func TestReplyService_Reply_SendsSanitizedToSender(t *testing.T) {
	fake := mailertest.NewFakeSender()
	svc := NewReplyService(janeRepo(), &mockEmailTemplateRepository{}, fake, "Site <noreply@example.com>")

	err := svc.Reply(context.Background(), 7, "Re: hello", `<script>alert(1)</script><p>hi</p>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	sent := fake.LastSent()
	if sent == nil {
		t.Fatal("expected an email to be sent")
	}
	if len(sent.To) != 1 || sent.To[0] != "abdhesh@example.com" {
		t.Errorf("expected reply to original sender, got %v", sent.To)
	}
	if sent.HTML != "<p>hi</p>" {
		t.Errorf("expected sanitized body, got %q", sent.HTML)
	}
	if sent.From != "Site <noreply@example.com>" {
		t.Errorf("unexpected from %q", sent.From)
	}
}

func TestReplyService_Reply_Errors(t *testing.T) {
	tests := []struct {
		name    string
		id      int64
		subject string
		body    string
		sender  *mailertest.FakeSender
		want    error
	}{
		{"empty subject", 7, "  ", "<p>x</p>", mailertest.NewFakeSender(), ErrInvalidInput},
		{"empty body", 7, "Re", "", mailertest.NewFakeSender(), ErrInvalidInput},
		{"body only script", 7, "Re", "<script>x</script>", mailertest.NewFakeSender(), ErrInvalidInput},
		{"missing message", 99, "Re", "<p>x</p>", mailertest.NewFakeSender(), repository.ErrNotFound},
		{"unconfigured", 7, "Re", "<p>x</p>", &mailertest.FakeSender{Unconfigured: true}, mailer.ErrNotConfigured},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewReplyService(janeRepo(), &mockEmailTemplateRepository{}, tt.sender, "from@example.com")
			err := svc.Reply(context.Background(), tt.id, tt.subject, tt.body)
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
			if tt.sender.Count() != 0 {
				t.Error("no email should be sent")
			}
		})
	}
}

func TestReplyService_Reply_SendFailureSurfaces(t *testing.T) {
	fake := mailertest.NewFakeSender()
	fake.Err = errors.New("provider rejected")
	svc := NewReplyService(janeRepo(), &mockEmailTemplateRepository{}, fake, "from@example.com")

	err := svc.Reply(context.Background(), 7, "Re", "<p>x</p>")
	if err == nil || errors.Is(err, mailer.ErrNotConfigured) {
		t.Errorf("expected send error, got %v", err)
	}
	if fake.Count() != 1 {
		t.Errorf("expected exactly one attempt, got %d", fake.Count())
	}
}

func TestReplyService_Draft(t *testing.T) {
	tmpls := &mockEmailTemplateRepository{
		getByIDFunc: func(ctx context.Context, id int64) (*model.EmailTemplate, error) {
			return &model.EmailTemplate{ID: id, Subject: "Hi {name}", Body: "Dear {name}, ..."}, nil
		},
	}
	svc := NewReplyService(janeRepo(), tmpls, mailertest.NewFakeSender(), "from@example.com")

	d, err := svc.Draft(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Subject != "Hi Abdhesh" || d.Body != "Dear Abdhesh, ..." {
		t.Errorf("unexpected draft %+v", d)
	}

	if _, err := svc.Draft(context.Background(), 99, 1); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing message, got %v", err)
	}
}
