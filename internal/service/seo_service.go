package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/validate"
)

// SEOService manages per-page meta tags.
type SEOService interface {
	List(ctx context.Context) ([]*model.SEOSetting, error)
	Get(ctx context.Context, page string) (*model.SEOSetting, error)
	Upsert(ctx context.Context, s *model.SEOSetting) error
}

type seoFields struct {
	Page        string `json:"page" validate:"required,max=100"`
	Title       string `json:"title" validate:"max=70"`
	Description string `json:"description" validate:"max=160"`
	Keywords    string `json:"keywords" validate:"max=255"`
	OGImage     string `json:"og_image" validate:"omitempty,url,max=500"`
}

type seoServiceImpl struct {
	repo repository.SEORepository
}

// NewSEOService creates an SEOService.
func NewSEOService(repo repository.SEORepository) SEOService {
	return &seoServiceImpl{repo: repo}
}

func (s *seoServiceImpl) List(ctx context.Context) ([]*model.SEOSetting, error) {
	return s.repo.List(ctx)
}

func (s *seoServiceImpl) Get(ctx context.Context, page string) (*model.SEOSetting, error) {
	return s.repo.Get(ctx, Slugify(page))
}

// Upsert normalizes the page key with Slugify, so "About Me" and "about-me" are the same page.
func (s *seoServiceImpl) Upsert(ctx context.Context, st *model.SEOSetting) error {
	st.Page = Slugify(st.Page)
	st.Title = strings.TrimSpace(st.Title)
	if err := validate.Struct(seoFields{
		Page:        st.Page,
		Title:       st.Title,
		Description: st.Description,
		Keywords:    st.Keywords,
		OGImage:     st.OGImage,
	}); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return s.repo.Upsert(ctx, st)
}
