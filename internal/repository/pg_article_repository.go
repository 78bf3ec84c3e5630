package repository

import (
	"context"
	"errors"
	"strconv"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgArticleRepository is the PostgreSQL implementation of ArticleRepository.
type PgArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPgArticleRepository creates a PgArticleRepository.
func NewPgArticleRepository(pool *pgxpool.Pool) *PgArticleRepository {
	return &PgArticleRepository{pool: pool}
}

var _ ArticleRepository = (*PgArticleRepository)(nil)

const articleColumns = `id, title, slug, excerpt, content, status, published_at, created_at, updated_at`

func scanArticle(row pgx.Row, a *model.Article) error {
	return row.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &a.Status,
		&a.PublishedAt, &a.CreatedAt, &a.UpdatedAt)
}

// List returns articles, most recently published (or created) first.
func (r *PgArticleRepository) List(ctx context.Context, opts model.ArticleListOptions) ([]*model.Article, error) {
	var args []any
	where := ""
	if opts.PublishedOnly {
		args = append(args, model.ArticleStatusPublished)
		where = "WHERE status = $1"
	}
	args = append(args, opts.Limit, opts.Offset)

	query := `SELECT ` + articleColumns + ` FROM articles ` + where +
		` ORDER BY COALESCE(published_at, created_at) DESC, id
		  LIMIT $` + strconv.Itoa(len(args)-1) + ` OFFSET $` + strconv.Itoa(len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	articles := make([]*model.Article, 0)
	for rows.Next() {
		var a model.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, err
		}
		articles = append(articles, &a)
	}
	return articles, rows.Err()
}

func (r *PgArticleRepository) GetByID(ctx context.Context, id string) (*model.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE id = $1`, id)
}

func (r *PgArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	return r.getOne(ctx, `SELECT `+articleColumns+` FROM articles WHERE slug = $1`, slug)
}

func (r *PgArticleRepository) getOne(ctx context.Context, query string, arg any) (*model.Article, error) {
	var a model.Article
	err := scanArticle(r.pool.QueryRow(ctx, query, arg), &a)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *PgArticleRepository) Create(ctx context.Context, a *model.Article) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO articles (title, slug, excerpt, content, status, published_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.Title, a.Slug, a.Excerpt, a.Content, a.Status, a.PublishedAt,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PgArticleRepository) Update(ctx context.Context, a *model.Article) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE articles SET title = $1, slug = $2, excerpt = $3, content = $4, status = $5,
		   published_at = $6, updated_at = NOW()
		 WHERE id = $7
		 RETURNING updated_at`,
		a.Title, a.Slug, a.Excerpt, a.Content, a.Status, a.PublishedAt, a.ID,
	).Scan(&a.UpdatedAt)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return ErrNotFound
	case isUniqueViolation(err):
		return ErrDuplicate
	}
	return err
}

func (r *PgArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
