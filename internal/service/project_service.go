package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/abdhesh369/portfolio-backend/internal/model"
	"github.com/abdhesh369/portfolio-backend/internal/repository"
	"github.com/abdhesh369/portfolio-backend/internal/validate"
)

// ProjectService manages portfolio projects.
type ProjectService interface {
	List(ctx context.Context) ([]*model.Project, error)
	GetByID(ctx context.Context, id string) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error)
	Delete(ctx context.Context, id string) error
	Reorder(ctx context.Context, ids []string) error
	SetImageURL(ctx context.Context, id, url string) error
}

type projectFields struct {
	Title       string   `json:"title" validate:"required,notblank,max=200"`
	Description string   `json:"description" validate:"max=5000"`
	TechStack   []string `json:"tech_stack" validate:"max=30,dive,notblank,max=50"`
	Category    string   `json:"category" validate:"max=50"`
	LiveURL     string   `json:"live_url" validate:"omitempty,url,max=500"`
	RepoURL     string   `json:"repo_url" validate:"omitempty,url,max=500"`
}

func validateProject(p *model.Project) error {
	err := validate.Struct(projectFields{
		Title:       p.Title,
		Description: p.Description,
		TechStack:   p.TechStack,
		Category:    p.Category,
		LiveURL:     p.LiveURL,
		RepoURL:     p.RepoURL,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

// ProjectServiceImpl is the production ProjectService.
type ProjectServiceImpl struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a ProjectService backed by the given repository.
func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &ProjectServiceImpl{projectRepo: projectRepo}
}

func (s *ProjectServiceImpl) List(ctx context.Context) ([]*model.Project, error) {
	return s.projectRepo.List(ctx)
}

func (s *ProjectServiceImpl) GetByID(ctx context.Context, id string) (*model.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

// Create appends p at the end of the display order.
func (s *ProjectServiceImpl) Create(ctx context.Context, p *model.Project) error {
	p.Title = strings.TrimSpace(p.Title)
	if err := validateProject(p); err != nil {
		return err
	}
	return s.projectRepo.Create(ctx, p)
}

func (s *ProjectServiceImpl) Update(ctx context.Context, id string, patch model.ProjectPatch) (*model.Project, error) {
	p, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Title != nil {
		p.Title = strings.TrimSpace(*patch.Title)
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.TechStack != nil {
		p.TechStack = *patch.TechStack
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.LiveURL != nil {
		p.LiveURL = *patch.LiveURL
	}
	if patch.RepoURL != nil {
		p.RepoURL = *patch.RepoURL
	}
	if err := validateProject(p); err != nil {
		return nil, err
	}
	if err := s.projectRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProjectServiceImpl) Delete(ctx context.Context, id string) error {
	return s.projectRepo.Delete(ctx, id)
}

// Reorder rejects empty and duplicated id lists.
func (s *ProjectServiceImpl) Reorder(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return ErrInvalidInput
	}
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id == "" {
			return ErrInvalidInput
		}
		if _, dup := seen[id]; dup {
			return ErrInvalidInput
		}
		seen[id] = struct{}{}
	}
	return s.projectRepo.Reorder(ctx, ids)
}

func (s *ProjectServiceImpl) SetImageURL(ctx context.Context, id, url string) error {
	return s.projectRepo.UpdateImageURL(ctx, id, url)
}
