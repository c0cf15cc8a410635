package project

import (
	"context"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/normalize"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"gorm.io/gorm"
)

var adminOrder = []string{"created_at DESC", "id DESC"}

type Service struct {
	repo     *store.Repo[models.ProjectModel]
	resolver *resolve.Resolver
}

func NewService(db *gorm.DB, resolver *resolve.Resolver) *Service {
	return &Service{repo: store.NewRepo[models.ProjectModel](db), resolver: resolver}
}

// Public returns normalized projects, newest first, with the catalog project
// standing in for an empty store.
func (s *Service) Public(ctx context.Context) []models.ProjectModel {
	return s.resolver.Projects(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (models.ProjectModel, error) {
	return s.resolver.Project(ctx, id)
}

// List returns the stored projects normalized, without any fallback entry.
func (s *Service) List(ctx context.Context) ([]models.ProjectModel, error) {
	items, err := s.repo.List(ctx, store.Query{Order: adminOrder})
	if err != nil {
		return nil, err
	}
	return normalize.Projects(items), nil
}

func (s *Service) Create(ctx context.Context, dto *CreateProjectDTO) (models.ProjectModel, error) {
	if err := validate.Struct(dto); err != nil {
		return models.ProjectModel{}, err
	}
	p := dto.model()
	if err := s.repo.Create(ctx, &p); err != nil {
		return models.ProjectModel{}, err
	}
	return normalize.Project(p), nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateProjectDTO) (models.ProjectModel, error) {
	if err := validate.Struct(dto); err != nil {
		return models.ProjectModel{}, err
	}
	p, err := s.repo.Update(ctx, id, dto.apply)
	if err != nil {
		return models.ProjectModel{}, err
	}
	return normalize.Project(*p), nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
