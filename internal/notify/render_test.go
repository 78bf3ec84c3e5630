package notify

import (
	"strings"
	"testing"
	"time"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

func TestRenderOwnerEmail_EscapesUserFields(t *testing.T) {
	hostile := []string{
		`<script>alert("x")</script>`,
		`Tom & Jerry`,
		`"quoted" 'single'`,
		`<img src=x onerror=alert(1)>`,
		`</p><h1>big</h1>`,
	}
	for _, in := range hostile {
		msg := &model.Message{
			ID:        7,
			Name:      in,
			Email:     "jane@x.com",
			Subject:   in,
			Message:   in,
			CreatedAt: time.Now(),
		}
		_, html, err := RenderOwnerEmail(msg)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if strings.Contains(html, in) {
			t.Errorf("raw user input %q leaked into notification HTML", in)
		}
		for _, bad := range []string{"<script", "<img", "<h1>", `"quoted"`} {
			if strings.Contains(in, bad) && strings.Contains(html, bad) {
				t.Errorf("found unescaped %q for input %q", bad, in)
			}
		}
	}
}

func TestRenderOwnerEmail_EscapedFormsPresent(t *testing.T) {
	msg := &model.Message{Name: `A<B & "C"`, Email: "a@b.co", Message: "hi", CreatedAt: time.Now()}
	_, html, err := RenderOwnerEmail(msg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "A&lt;B &amp; &#34;C&#34;") {
		t.Errorf("expected escaped name in body, got:\n%s", html)
	}
}

func TestRenderOwnerEmail_LineBreaks(t *testing.T) {
	msg := &model.Message{Name: "Jane", Email: "jane@x.com", Message: "line one\r\nline <two>", CreatedAt: time.Now()}
	_, html, err := RenderOwnerEmail(msg)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(html, "line one<br>line &lt;two&gt;") {
		t.Errorf("expected escaped lines joined by <br>, got:\n%s", html)
	}
}

func TestRenderOwnerEmail_Subject(t *testing.T) {
	subject, _, err := RenderOwnerEmail(&model.Message{Name: "Jane", Subject: "Hello\r\nBcc: evil@x.com"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.ContainsAny(subject, "\r\n") {
		t.Errorf("subject must not contain line breaks: %q", subject)
	}
	if !strings.HasPrefix(subject, "New message from Jane: Hello") {
		t.Errorf("unexpected subject %q", subject)
	}

	subject, _, _ = RenderOwnerEmail(&model.Message{Name: "Jane"})
	if subject != "New message from Jane" {
		t.Errorf("unexpected subject without topic: %q", subject)
	}
}
