package mailer

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SMTPSender delivers mail through a plain SMTP relay with optional PLAIN auth.
type SMTPSender struct {
	host     string
	port     string
	username string
	password string

	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewSMTPSender creates an SMTPSender. An empty host yields an unconfigured sender.
func NewSMTPSender(host, port, username, password string) *SMTPSender {
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		send:     smtp.SendMail,
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) Configured() bool {
	return s.host != "" && s.port != ""
}

func (s *SMTPSender) Send(ctx context.Context, email Email) (SendResult, error) {
	if !s.Configured() {
		return SendResult{}, ErrNotConfigured
	}
	if len(email.To) == 0 {
		return SendResult{}, errors.New("mailer: no recipients")
	}
	if err := ctx.Err(); err != nil {
		return SendResult{}, err
	}

	envelopeFrom := email.From
	if addr, err := mail.ParseAddress(email.From); err == nil {
		envelopeFrom = addr.Address
	}

	id := uuid.NewString()
	msg := buildMIME(email, id, envelopeFrom)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}
	addr := s.host + ":" + s.port
	if err := s.send(addr, auth, envelopeFrom, email.To, msg); err != nil {
		return SendResult{}, fmt.Errorf("mailer: smtp send: %w", err)
	}
	return SendResult{ID: id}, nil
}

func buildMIME(email Email, id, envelopeFrom string) []byte {
	domain := "localhost"
	if at := strings.LastIndex(envelopeFrom, "@"); at >= 0 {
		domain = envelopeFrom[at+1:]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", email.From)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(email.To, ", "))
	if email.ReplyTo != "" {
		fmt.Fprintf(&b, "Reply-To: %s\r\n", email.ReplyTo)
	}
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", email.Subject))
	fmt.Fprintf(&b, "Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	fmt.Fprintf(&b, "Message-ID: <%s@%s>\r\n", id, domain)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(email.HTML)
	return []byte(b.String())
}
