package repository

import (
	"context"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

// ProjectRepository persists portfolio projects.
type ProjectRepository interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	Delete(ctx context.Context, id string) error
	// Reorder assigns sort_order by position in ids.
	Reorder(ctx context.Context, ids []string) error
	UpdateImageURL(ctx context.Context, id, url string) error
}
