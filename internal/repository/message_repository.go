package repository

import (
	"context"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

// MessageRepository persists contact-form messages.
type MessageRepository interface {
	Create(ctx context.Context, msg *model.Message) error
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error)
	Delete(ctx context.Context, id int64) error
	// BulkDelete removes every listed message and returns how many existed.
	BulkDelete(ctx context.Context, ids []int64) (int, error)
}
