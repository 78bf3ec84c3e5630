package model

import "time"

// Message is a contact-form submission as stored. The honeypot field is never part of it.
type Message struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// MessageListOptions carries pagination for listing messages.
type MessageListOptions struct {
	Limit  int
	Offset int
}

// SubmitResult is the public acknowledgement of a contact submission.
// Genuine and honeypot-blocked submissions produce the same shape; a blocked
// submission has ID 0 and Message "blocked".
type SubmitResult struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// BlockedMessageBody is echoed in place of the body for honeypot hits.
const BlockedMessageBody = "blocked"

// ResultFromMessage converts a stored message to its acknowledgement.
func ResultFromMessage(m *Message) SubmitResult {
	return SubmitResult{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
	}
}

// BlockedResult builds the feigned acknowledgement for a spam submission.
func BlockedResult(name, email, subject string, now time.Time) SubmitResult {
	return SubmitResult{
		ID:        0,
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   BlockedMessageBody,
		CreatedAt: now,
	}
}
