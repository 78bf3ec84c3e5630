package service

import (
	"context"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

// ContactSubmission is the public contact-form payload. Website is the
// honeypot: humans never see it, so any value marks the sender as a bot.
type ContactSubmission struct {
	Name    string `json:"name" validate:"required,notblank,nonul,max=100"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Subject string `json:"subject" validate:"nonul,max=200"`
	Message string `json:"message" validate:"required,notblank,nonul,max=5000"`
	Website string `json:"website" validate:"max=200"`
}

// Submission is the outcome of a contact submission.
type Submission struct {
	Result model.SubmitResult
	// Stored is the persisted message, nil when the honeypot caught the sender.
	Stored *model.Message
}

// Blocked reports whether the submission was absorbed as spam.
func (s Submission) Blocked() bool {
	return s.Stored == nil
}

// MessageService is the contact pipeline and the admin inbox.
type MessageService interface {
	// Submit validates in, applies the honeypot and stores genuine messages.
	// Validation failures are returned as *validate.Error.
	Submit(ctx context.Context, in ContactSubmission, clientAddr string) (Submission, error)

	List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error)
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	Delete(ctx context.Context, id int64) error
	BulkDelete(ctx context.Context, ids []int64) (int, error)
}
