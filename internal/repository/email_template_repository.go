package repository

import (
	"context"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

// EmailTemplateRepository persists canned reply templates.
type EmailTemplateRepository interface {
	List(ctx context.Context) ([]*model.EmailTemplate, error)
	GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, t *model.EmailTemplate) error
	Update(ctx context.Context, t *model.EmailTemplate) error
	Delete(ctx context.Context, id int64) error
}
