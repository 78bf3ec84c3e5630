package repository

import (
	"context"

	"github.com/abdhesh369/portfolio-backend/internal/model"
)

// SEORepository persists per-page meta tags.
type SEORepository interface {
	List(ctx context.Context) ([]*model.SEOSetting, error)
	Get(ctx context.Context, page string) (*model.SEOSetting, error)
	Upsert(ctx context.Context, s *model.SEOSetting) error
}
