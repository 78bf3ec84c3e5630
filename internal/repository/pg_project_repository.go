package repository

import (
	"context"
	"errors"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgProjectRepository is the PostgreSQL implementation of ProjectRepository.
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ProjectRepository = (*PgProjectRepository)(nil)

const projectColumns = `id, title, description, tech_stack, category, image_url, live_url, repo_url, sort_order, created_at, updated_at`

func scanProject(row pgx.Row, p *model.Project) error {
	return row.Scan(&p.ID, &p.Title, &p.Description, &p.TechStack, &p.Category, &p.ImageURL,
		&p.LiveURL, &p.RepoURL, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
}

// List returns projects in display order.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+projectColumns+` FROM projects ORDER BY sort_order, created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]*model.Project, 0)
	for rows.Next() {
		var p model.Project
		if err := scanProject(rows, &p); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

func (r *PgProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	var p model.Project
	err := scanProject(r.pool.QueryRow(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id,
	), &p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts p after the last project in display order.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, tech_stack, category, image_url, live_url, repo_url, sort_order)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, (SELECT COALESCE(MAX(sort_order) + 1, 0) FROM projects))
		 RETURNING id, sort_order, created_at, updated_at`,
		p.Title, p.Description, p.TechStack, p.Category, p.ImageURL, p.LiveURL, p.RepoURL,
	).Scan(&p.ID, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PgProjectRepository) Update(ctx context.Context, p *model.Project) error {
	if p.TechStack == nil {
		p.TechStack = []string{}
	}
	err := r.pool.QueryRow(ctx,
		`UPDATE projects SET title = $1, description = $2, tech_stack = $3, category = $4,
		   live_url = $5, repo_url = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING updated_at`,
		p.Title, p.Description, p.TechStack, p.Category, p.LiveURL, p.RepoURL, p.ID,
	).Scan(&p.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder runs in one transaction so a failed update leaves the old order intact.
// Unknown ids are ignored.
func (r *PgProjectRepository) Reorder(ctx context.Context, ids []string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i, id := range ids {
		if _, err := tx.Exec(ctx,
			`UPDATE projects SET sort_order = $1, updated_at = NOW() WHERE id = $2`,
			i, id,
		); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func (r *PgProjectRepository) UpdateImageURL(ctx context.Context, id, url string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE projects SET image_url = $1, updated_at = NOW() WHERE id = $2`,
		url, id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
