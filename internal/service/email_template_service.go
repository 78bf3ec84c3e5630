package service

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"gopkg.in/yaml.v3"
)

//go:embed templates.yaml
var defaultTemplatesYAML []byte

// EmailTemplateService manages canned reply templates.
type EmailTemplateService interface {
	List(ctx context.Context) ([]*model.EmailTemplate, error)
	GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error)
	Create(ctx context.Context, t *model.EmailTemplate) error
	Update(ctx context.Context, id int64, patch model.EmailTemplatePatch) (*model.EmailTemplate, error)
	Delete(ctx context.Context, id int64) error
	// SeedDefaults inserts the built-in templates when none exist yet.
	SeedDefaults(ctx context.Context) (int, error)
}

type emailTemplateServiceImpl struct {
	repo repository.EmailTemplateRepository
}

// NewEmailTemplateService creates an EmailTemplateService.
func NewEmailTemplateService(repo repository.EmailTemplateRepository) EmailTemplateService {
	return &emailTemplateServiceImpl{repo: repo}
}

type templateSeedFile struct {
	Templates []struct {
		Name    string `yaml:"name"`
		Subject string `yaml:"subject"`
		Body    string `yaml:"body"`
	} `yaml:"templates"`
}

// DefaultTemplates parses the embedded templates.yaml.
func DefaultTemplates() ([]*model.EmailTemplate, error) {
	var f templateSeedFile
	if err := yaml.Unmarshal(defaultTemplatesYAML, &f); err != nil {
		return nil, fmt.Errorf("parse default templates: %w", err)
	}
	out := make([]*model.EmailTemplate, 0, len(f.Templates))
	for _, t := range f.Templates {
		out = append(out, &model.EmailTemplate{
			Name:    t.Name,
			Subject: t.Subject,
			Body:    strings.TrimSpace(t.Body),
		})
	}
	return out, nil
}

func validTemplate(t *model.EmailTemplate) bool {
	return strings.TrimSpace(t.Name) != "" &&
		strings.TrimSpace(t.Subject) != "" &&
		strings.TrimSpace(t.Body) != ""
}

func mapTemplateErr(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return ErrNameTaken
	}
	return err
}

func (s *emailTemplateServiceImpl) List(ctx context.Context) ([]*model.EmailTemplate, error) {
	return s.repo.List(ctx)
}

func (s *emailTemplateServiceImpl) GetByID(ctx context.Context, id int64) (*model.EmailTemplate, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *emailTemplateServiceImpl) Create(ctx context.Context, t *model.EmailTemplate) error {
	t.Name = strings.TrimSpace(t.Name)
	if !validTemplate(t) {
		return ErrInvalidInput
	}
	return mapTemplateErr(s.repo.Create(ctx, t))
}

func (s *emailTemplateServiceImpl) Update(ctx context.Context, id int64, patch model.EmailTemplatePatch) (*model.EmailTemplate, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		t.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Subject != nil {
		t.Subject = *patch.Subject
	}
	if patch.Body != nil {
		t.Body = *patch.Body
	}
	if !validTemplate(t) {
		return nil, ErrInvalidInput
	}
	if err := s.repo.Update(ctx, t); err != nil {
		return nil, mapTemplateErr(err)
	}
	return t, nil
}

func (s *emailTemplateServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *emailTemplateServiceImpl) SeedDefaults(ctx context.Context) (int, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	defaults, err := DefaultTemplates()
	if err != nil {
		return 0, err
	}
	created := 0
	for _, t := range defaults {
		if err := s.repo.Create(ctx, t); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				continue
			}
			return created, fmt.Errorf("seed template %q: %w", t.Name, err)
		}
		created++
	}
	slog.Info("default email templates seeded", "count", created)
	return created, nil
}
