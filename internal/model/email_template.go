package model

import "time"

// NamePlaceholder is replaced with the original sender's name when a template is applied.
const NamePlaceholder = "{name}"

// EmailTemplate is a canned reply used to pre-fill the reply composer.
type EmailTemplate struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmailTemplatePatch holds the fields an update may change.
type EmailTemplatePatch struct {
	Name    *string
	Subject *string
	Body    *string
}

// ReplyDraft is a template applied to a specific sender.
type ReplyDraft struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
