package repository

import (
	"context"
	"errors"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgSEORepository is the PostgreSQL implementation of SEORepository.
type PgSEORepository struct {
	pool *pgxpool.Pool
}

// NewPgSEORepository creates a PgSEORepository.
func NewPgSEORepository(pool *pgxpool.Pool) *PgSEORepository {
	return &PgSEORepository{pool: pool}
}

var _ SEORepository = (*PgSEORepository)(nil)

func (r *PgSEORepository) List(ctx context.Context) ([]*model.SEOSetting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT page, title, description, keywords, og_image, updated_at
		 FROM seo_settings ORDER BY page`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	settings := make([]*model.SEOSetting, 0)
	for rows.Next() {
		var s model.SEOSetting
		if err := rows.Scan(&s.Page, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.UpdatedAt); err != nil {
			return nil, err
		}
		settings = append(settings, &s)
	}
	return settings, rows.Err()
}

func (r *PgSEORepository) Get(ctx context.Context, page string) (*model.SEOSetting, error) {
	var s model.SEOSetting
	err := r.pool.QueryRow(ctx,
		`SELECT page, title, description, keywords, og_image, updated_at
		 FROM seo_settings WHERE page = $1`, page,
	).Scan(&s.Page, &s.Title, &s.Description, &s.Keywords, &s.OGImage, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Upsert creates or replaces the settings for s.Page.
func (r *PgSEORepository) Upsert(ctx context.Context, s *model.SEOSetting) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO seo_settings (page, title, description, keywords, og_image)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (page) DO UPDATE SET
		   title = EXCLUDED.title,
		   description = EXCLUDED.description,
		   keywords = EXCLUDED.keywords,
		   og_image = EXCLUDED.og_image,
		   updated_at = NOW()
		 RETURNING updated_at`,
		s.Page, s.Title, s.Description, s.Keywords, s.OGImage,
	).Scan(&s.UpdatedAt)
}
