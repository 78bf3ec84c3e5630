package service

import (
	"context"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
)

// ---------------------------------------------------------------------------
// mockMessageRepository
// ---------------------------------------------------------------------------

type mockMessageRepository struct {
	createFunc     func(ctx context.Context, msg *model.Message) error
	getByIDFunc    func(ctx context.Context, id int64) (*model.Message, error)
	listFunc       func(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error)
	deleteFunc     func(ctx context.Context, id int64) error
	bulkDeleteFunc func(ctx context.Context, ids []int64) (int, error)
}

func (m *mockMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, msg)
	}
	return nil
}

func (m *mockMessageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockMessageRepository) List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockMessageRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMessageRepository) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	if m.bulkDeleteFunc != nil {
		return m.bulkDeleteFunc(ctx, ids)
	}
	return len(ids), nil
}

// ---------------------------------------------------------------------------
// mockEmailTemplateRepository
// ---------------------------------------------------------------------------

type mockEmailTemplateRepository struct {
	listFunc    func(ctx context.Context) ([]*model.EmailTemplate, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.EmailTemplate, error)
	countFunc   func(ctx context.Context) (int, error)
	createFunc  func(ctx context.Context, t *model.EmailTemplate) error
	updateFunc  func(ctx context.Context, t *model.EmailTemplate) error
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockEmailTemplateRepository) List(ctx context.Context) ([]*model.EmailTemplate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockEmailTemplateRepository) GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockEmailTemplateRepository) Count(ctx context.Context) (int, error) {
	if m.countFunc != nil {
		return m.countFunc(ctx)
	}
	return 0, nil
}

func (m *mockEmailTemplateRepository) Create(ctx context.Context, t *model.EmailTemplate) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	return nil
}

func (m *mockEmailTemplateRepository) Update(ctx context.Context, t *model.EmailTemplate) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, t)
	}
	return nil
}

func (m *mockEmailTemplateRepository) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockProjectRepository
// ---------------------------------------------------------------------------

type mockProjectRepository struct {
	listFunc           func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc        func(ctx context.Context, id string) (*model.Project, error)
	createFunc         func(ctx context.Context, p *model.Project) error
	updateFunc         func(ctx context.Context, p *model.Project) error
	deleteFunc         func(ctx context.Context, id string) error
	reorderFunc        func(ctx context.Context, ids []string) error
	updateImageURLFunc func(ctx context.Context, id, url string) error
}

func (m *mockProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepository) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockProjectRepository) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *model.Project) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectRepository) Reorder(ctx context.Context, ids []string) error {
	if m.reorderFunc != nil {
		return m.reorderFunc(ctx, ids)
	}
	return nil
}

func (m *mockProjectRepository) UpdateImageURL(ctx context.Context, id, url string) error {
	if m.updateImageURLFunc != nil {
		return m.updateImageURLFunc(ctx, id, url)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockArticleRepository
// ---------------------------------------------------------------------------

type mockArticleRepository struct {
	listFunc      func(ctx context.Context, opts model.ArticleListOptions) ([]*model.Article, error)
	getByIDFunc   func(ctx context.Context, id string) (*model.Article, error)
	getBySlugFunc func(ctx context.Context, slug string) (*model.Article, error)
	createFunc    func(ctx context.Context, a *model.Article) error
	updateFunc    func(ctx context.Context, a *model.Article) error
	deleteFunc    func(ctx context.Context, id string) error
}

func (m *mockArticleRepository) List(ctx context.Context, opts model.ArticleListOptions) ([]*model.Article, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockArticleRepository) GetByID(ctx context.Context, id string) (*model.Article, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockArticleRepository) GetBySlug(ctx context.Context, slug string) (*model.Article, error) {
	if m.getBySlugFunc != nil {
		return m.getBySlugFunc(ctx, slug)
	}
	return nil, repository.ErrNotFound
}

func (m *mockArticleRepository) Create(ctx context.Context, a *model.Article) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Update(ctx context.Context, a *model.Article) error {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleRepository) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// ---------------------------------------------------------------------------
// mockSEORepository
// ---------------------------------------------------------------------------

type mockSEORepository struct {
	listFunc   func(ctx context.Context) ([]*model.SEOSetting, error)
	getFunc    func(ctx context.Context, page string) (*model.SEOSetting, error)
	upsertFunc func(ctx context.Context, s *model.SEOSetting) error
}

func (m *mockSEORepository) List(ctx context.Context) ([]*model.SEOSetting, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSEORepository) Get(ctx context.Context, page string) (*model.SEOSetting, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, page)
	}
	return nil, repository.ErrNotFound
}

func (m *mockSEORepository) Upsert(ctx context.Context, s *model.SEOSetting) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, s)
	}
	return nil
}
