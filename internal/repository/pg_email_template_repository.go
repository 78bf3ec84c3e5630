package repository

import (
	"context"
	"errors"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgEmailTemplateRepository is the PostgreSQL implementation of EmailTemplateRepository.
type PgEmailTemplateRepository struct {
	pool *pgxpool.Pool
}

// NewPgEmailTemplateRepository creates a PgEmailTemplateRepository.
func NewPgEmailTemplateRepository(pool *pgxpool.Pool) *PgEmailTemplateRepository {
	return &PgEmailTemplateRepository{pool: pool}
}

var _ EmailTemplateRepository = (*PgEmailTemplateRepository)(nil)

func (r *PgEmailTemplateRepository) List(ctx context.Context) ([]*model.EmailTemplate, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, subject, body, created_at, updated_at
		 FROM email_templates ORDER BY name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*model.EmailTemplate, 0)
	for rows.Next() {
		var t model.EmailTemplate
		if err := rows.Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		templates = append(templates, &t)
	}
	return templates, rows.Err()
}

func (r *PgEmailTemplateRepository) GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error) {
	var t model.EmailTemplate
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, subject, body, created_at, updated_at
		 FROM email_templates WHERE id = $1`, id,
	).Scan(&t.ID, &t.Name, &t.Subject, &t.Body, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *PgEmailTemplateRepository) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM email_templates`).Scan(&n)
	return n, err
}

func (r *PgEmailTemplateRepository) Create(ctx context.Context, t *model.EmailTemplate) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO email_templates (name, subject, body)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		t.Name, t.Subject, t.Body,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PgEmailTemplateRepository) Update(ctx context.Context, t *model.EmailTemplate) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE email_templates SET name = $1, subject = $2, body = $3, updated_at = NOW()
		 WHERE id = $4
		 RETURNING updated_at`,
		t.Name, t.Subject, t.Body, t.ID,
	).Scan(&t.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation(err):
		return ErrDuplicate
	}
	return err
}

func (r *PgEmailTemplateRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM email_templates WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
