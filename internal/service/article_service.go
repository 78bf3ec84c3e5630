package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/validate"
	"github.com/microcosm-cc/bluemonday"
)

const (
	DefaultArticleListLimit = 20
	MaxArticleListLimit     = 100
)

// ArticleService manages blog articles. Public callers only see published ones.
type ArticleService interface {
	ListPublished(ctx context.Context, limit, offset int) ([]*model.Article, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*model.Article, error)

	ListAll(ctx context.Context, limit, offset int) ([]*model.Article, error)
	GetByID(ctx context.Context, id string) (*model.Article, error)
	Create(ctx context.Context, a *model.Article) error
	Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error)
	Delete(ctx context.Context, id string) error
}

type articleFields struct {
	Title   string `json:"title" validate:"required,notblank,max=200"`
	Slug    string `json:"slug" validate:"required,max=200"`
	Excerpt string `json:"excerpt" validate:"max=500"`
	Status  string `json:"status" validate:"oneof=draft published"`
}

var (
	articlePolicyOnce sync.Once
	articlePolicy     *bluemonday.Policy
)

// SanitizeArticleHTML applies the user-generated-content policy to article bodies.
func SanitizeArticleHTML(content string) string {
	articlePolicyOnce.Do(func() {
		articlePolicy = bluemonday.UGCPolicy()
	})
	return articlePolicy.Sanitize(content)
}

// Slugify lower-cases s and joins its letters and digits with single dashes.
func Slugify(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			b.WriteRune(r)
			dash = false
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

type articleServiceImpl struct {
	repo repository.ArticleRepository
	now  func() time.Time
}

// NewArticleService creates an ArticleService.
func NewArticleService(repo repository.ArticleRepository) ArticleService {
	return &articleServiceImpl{repo: repo, now: time.Now}
}

func clampPage(limit, offset, def, max int) (int, int) {
	if limit <= 0 {
		limit = def
	}
	if limit > max {
		limit = max
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *articleServiceImpl) ListPublished(ctx context.Context, limit, offset int) ([]*model.Article, error) {
	limit, offset = clampPage(limit, offset, DefaultArticleListLimit, MaxArticleListLimit)
	return s.repo.List(ctx, model.ArticleListOptions{PublishedOnly: true, Limit: limit, Offset: offset})
}

// GetPublishedBySlug hides drafts behind ErrNotFound.
func (s *articleServiceImpl) GetPublishedBySlug(ctx context.Context, slug string) (*model.Article, error) {
	a, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !a.IsPublished() {
		return nil, repository.ErrNotFound
	}
	return a, nil
}

func (s *articleServiceImpl) ListAll(ctx context.Context, limit, offset int) ([]*model.Article, error) {
	limit, offset = clampPage(limit, offset, DefaultArticleListLimit, MaxArticleListLimit)
	return s.repo.List(ctx, model.ArticleListOptions{Limit: limit, Offset: offset})
}

func (s *articleServiceImpl) GetByID(ctx context.Context, id string) (*model.Article, error) {
	return s.repo.GetByID(ctx, id)
}

// prepare normalizes a before it is written and sets PublishedAt on first publish.
func (s *articleServiceImpl) prepare(a *model.Article) error {
	a.Title = strings.TrimSpace(a.Title)
	if a.Status == "" {
		a.Status = model.ArticleStatusDraft
	}
	a.Slug = Slugify(a.Slug)
	if a.Slug == "" {
		a.Slug = Slugify(a.Title)
	}
	if err := validate.Struct(articleFields{Title: a.Title, Slug: a.Slug, Excerpt: a.Excerpt, Status: a.Status}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	a.Content = SanitizeArticleHTML(a.Content)
	if a.IsPublished() && a.PublishedAt == nil {
		now := s.now().UTC()
		a.PublishedAt = &now
	}
	return nil
}

func mapArticleErr(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrSlugTaken
	}
	return err
}

func (s *articleServiceImpl) Create(ctx context.Context, a *model.Article) error {
	a.PublishedAt = nil
	if err := s.prepare(a); err != nil {
		return err
	}
	return mapArticleErr(s.repo.Create(ctx, a))
}

func (s *articleServiceImpl) Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		a.Title = *patch.Title
	}
	if patch.Slug != nil {
		a.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		a.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		a.Content = *patch.Content
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if err := s.prepare(a); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, a); err != nil {
		return nil, mapArticleErr(err)
	}
	return a, nil
}

func (s *articleServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
