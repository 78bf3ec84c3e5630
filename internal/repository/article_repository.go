package repository

import (
	"context"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

// ArticleRepository persists blog articles. Create and Update return
// ErrDuplicate when the slug is already used by another article.
type ArticleRepository interface {
	List(ctx context.Context, opts model.ArticleListOptions) ([]*model.Article, error)
	GetByID(ctx context.Context, id string) (*model.Article, error)
	GetBySlug(ctx context.Context, slug string) (*model.Article, error)
	Create(ctx context.Context, a *model.Article) error
	Update(ctx context.Context, a *model.Article) error
	Delete(ctx context.Context, id string) error
}
