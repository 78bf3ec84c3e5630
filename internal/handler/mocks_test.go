package handler

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/service"
)

// --- MessageService ---

type mockMessageService struct {
	submitFunc     func(ctx context.Context, in service.ContactSubmission, clientAddr string) (service.Submission, error)
	listFunc       func(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error)
	getByIDFunc    func(ctx context.Context, id int64) (*model.Message, error)
	deleteFunc     func(ctx context.Context, id int64) error
	bulkDeleteFunc func(ctx context.Context, ids []int64) (int, error)
}

func (m *mockMessageService) Submit(ctx context.Context, in service.ContactSubmission, clientAddr string) (service.Submission, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in, clientAddr)
	}
	return service.Submission{}, nil
}

func (m *mockMessageService) List(ctx context.Context, opts model.MessageListOptions) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, opts)
	}
	return nil, nil
}

func (m *mockMessageService) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockMessageService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockMessageService) BulkDelete(ctx context.Context, ids []int64) (int, error) {
	if m.bulkDeleteFunc != nil {
		return m.bulkDeleteFunc(ctx, ids)
	}
	return len(ids), nil
}

// --- ReplyService ---

type mockReplyService struct {
	draftFunc func(ctx context.Context, messageID, templateID int64) (model.ReplyDraft, error)
	replyFunc func(ctx context.Context, messageID int64, subject, body string) error
}

func (m *mockReplyService) Draft(ctx context.Context, messageID, templateID int64) (model.ReplyDraft, error) {
	if m.draftFunc != nil {
		return m.draftFunc(ctx, messageID, templateID)
	}
	return model.ReplyDraft{}, nil
}

func (m *mockReplyService) Reply(ctx context.Context, messageID int64, subject, body string) error {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, messageID, subject, body)
	}
	return nil
}

// --- Notifier ---

type recordingNotifier struct {
	mu   sync.Mutex
	msgs []model.Message
}

func (n *recordingNotifier) Enqueue(msg model.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.msgs = append(n.msgs, msg)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.msgs)
}

// --- EmailTemplateService ---

type mockEmailTemplateService struct {
	listFunc    func(ctx context.Context) ([]*model.EmailTemplate, error)
	getByIDFunc func(ctx context.Context, id int64) (*model.EmailTemplate, error)
	createFunc  func(ctx context.Context, t *model.EmailTemplate) error
	updateFunc  func(ctx context.Context, id int64, patch model.EmailTemplatePatch) (*model.EmailTemplate, error)
	deleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockEmailTemplateService) List(ctx context.Context) ([]*model.EmailTemplate, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockEmailTemplateService) GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockEmailTemplateService) Create(ctx context.Context, t *model.EmailTemplate) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, t)
	}
	return nil
}

func (m *mockEmailTemplateService) Update(ctx context.Context, id int64, patch model.EmailTemplatePatch) (*model.EmailTemplate, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockEmailTemplateService) Delete(ctx context.Context, id int64) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockEmailTemplateService) SeedDefaults(ctx context.Context) (int, error) {
	return 0, nil
}

// --- ProjectService ---

type mockProjectService struct {
	listFunc        func(ctx context.Context) ([]*model.Project, error)
	getByIDFunc     func(ctx context.Context, id string) (*model.Project, error)
	createFunc      func(ctx context.Context, p *model.Project) error
	updateFunc      func(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	deleteFunc      func(ctx context.Context, id string) error
	reorderFunc     func(ctx context.Context, ids []string) error
	setImageURLFunc func(ctx context.Context, id, url string) error
}

func (m *mockProjectService) List(ctx context.Context) ([]*model.Project, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockProjectService) GetByID(ctx context.Context, id string) (*model.Project, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProjectService) Create(ctx context.Context, p *model.Project) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectService) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockProjectService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProjectService) Reorder(ctx context.Context, ids []string) error {
	if m.reorderFunc != nil {
		return m.reorderFunc(ctx, ids)
	}
	return nil
}

func (m *mockProjectService) SetImageURL(ctx context.Context, id, url string) error {
	if m.setImageURLFunc != nil {
		return m.setImageURLFunc(ctx, id, url)
	}
	return nil
}

// --- ArticleService ---

type mockArticleService struct {
	listPublishedFunc      func(ctx context.Context, limit, offset int) ([]*model.Article, error)
	getPublishedBySlugFunc func(ctx context.Context, slug string) (*model.Article, error)
	listAllFunc            func(ctx context.Context, limit, offset int) ([]*model.Article, error)
	getByIDFunc            func(ctx context.Context, id string) (*model.Article, error)
	createFunc             func(ctx context.Context, a *model.Article) error
	updateFunc             func(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error)
	deleteFunc             func(ctx context.Context, id string) error
}

func (m *mockArticleService) ListPublished(ctx context.Context, limit, offset int) ([]*model.Article, error) {
	if m.listPublishedFunc != nil {
		return m.listPublishedFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockArticleService) GetPublishedBySlug(ctx context.Context, slug string) (*model.Article, error) {
	if m.getPublishedBySlugFunc != nil {
		return m.getPublishedBySlugFunc(ctx, slug)
	}
	return nil, nil
}

func (m *mockArticleService) ListAll(ctx context.Context, limit, offset int) ([]*model.Article, error) {
	if m.listAllFunc != nil {
		return m.listAllFunc(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockArticleService) GetByID(ctx context.Context, id string) (*model.Article, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockArticleService) Create(ctx context.Context, a *model.Article) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, a)
	}
	return nil
}

func (m *mockArticleService) Update(ctx context.Context, id string, patch model.ArticlePatch) (*model.Article, error) {
	if m.updateFunc != nil {
		return m.updateFunc(ctx, id, patch)
	}
	return nil, nil
}

func (m *mockArticleService) Delete(ctx context.Context, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, id)
	}
	return nil
}

// --- SEOService ---

type mockSEOService struct {
	listFunc   func(ctx context.Context) ([]*model.SEOSetting, error)
	getFunc    func(ctx context.Context, page string) (*model.SEOSetting, error)
	upsertFunc func(ctx context.Context, s *model.SEOSetting) error
}

func (m *mockSEOService) List(ctx context.Context) ([]*model.SEOSetting, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockSEOService) Get(ctx context.Context, page string) (*model.SEOSetting, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, page)
	}
	return nil, nil
}

func (m *mockSEOService) Upsert(ctx context.Context, s *model.SEOSetting) error {
	if m.upsertFunc != nil {
		return m.upsertFunc(ctx, s)
	}
	return nil
}

// --- Storage ---

type mockStorage struct {
	mu      sync.Mutex
	saved   map[string][]byte
	deleted []string
	saveErr error
}

func newMockStorage() *mockStorage {
	return &mockStorage{saved: map[string][]byte{}}
}

func (m *mockStorage) Save(_ context.Context, key string, data io.Reader, _ string) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	b, err := io.ReadAll(data)
	if err != nil {
		return "", err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saved[key] = b
	return "/uploads/" + key, nil
}

func (m *mockStorage) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *mockStorage) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, "/uploads/")
	return key, ok && key != ""
}
