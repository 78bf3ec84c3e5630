package notify

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

// ownerTemplate renders the site-owner notification. html/template escapes
// every interpolated field; lines of the message body are joined with <br>
// only after each line has been escaped.
var ownerTemplate = template.Must(template.New("owner").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; line-height: 1.5;">
  <h2>New contact form submission</h2>
  <p><strong>Name:</strong> {{.Name}}</p>
  <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
  <p><strong>Subject:</strong> {{if .Subject}}{{.Subject}}{{else}}(none){{end}}</p>
  <p><strong>Message:</strong></p>
  <p>{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</p>
  <hr>
  <p style="color: #888; font-size: 12px;">Message #{{.ID}} received {{.Received}}</p>
</body>
</html>
`))

type ownerView struct {
	ID       int64
	Name     string
	Email    string
	Subject  string
	Lines    []string
	Received string
}

// RenderOwnerEmail returns the subject and HTML body of the owner notification for msg.
func RenderOwnerEmail(msg *model.Message) (string, string, error) {
	view := ownerView{
		ID:       msg.ID,
		Name:     msg.Name,
		Email:    msg.Email,
		Subject:  msg.Subject,
		Lines:    strings.Split(strings.ReplaceAll(msg.Message, "\r\n", "\n"), "\n"),
		Received: msg.CreatedAt.UTC().Format("2006-01-02 15:04 MST"),
	}
	var buf bytes.Buffer
	if err := ownerTemplate.Execute(&buf, view); err != nil {
		return "", "", err
	}
	return ownerSubject(msg), buf.String(), nil
}

// ownerSubject goes into a header, not markup; CR/LF are removed so the
// sender cannot inject headers.
func ownerSubject(msg *model.Message) string {
	s := "New message from " + msg.Name
	if msg.Subject != "" {
		s += ": " + msg.Subject
	}
	return strings.Map(func(r rune) rune {
		if r == '\r' || r == '\n' {
			return ' '
		}
		return r
	}, s)
}
