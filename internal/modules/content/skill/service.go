package skill

import (
	"context"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"gorm.io/gorm"
)

var adminOrder = []string{"sort_order ASC", "created_at ASC", "id ASC"}

type Service struct {
	repo     *store.Repo[models.SkillModel]
	resolver *resolve.Resolver
}

func NewService(db *gorm.DB, resolver *resolve.Resolver) *Service {
	return &Service{repo: store.NewRepo[models.SkillModel](db), resolver: resolver}
}

// Public returns the resolved skill list, never empty.
func (s *Service) Public(ctx context.Context) []models.SkillModel {
	return s.resolver.Skills(ctx)
}

// List returns the stored skills only.
func (s *Service) List(ctx context.Context) ([]models.SkillModel, error) {
	return s.repo.List(ctx, store.Query{Order: adminOrder})
}

func (s *Service) Create(ctx context.Context, dto *CreateSkillDTO) (*models.SkillModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	sk := dto.model()
	if sk.Name == "" {
		return nil, validate.Rule("name", "required")
	}
	if err := s.repo.Create(ctx, &sk); err != nil {
		return nil, err
	}
	return &sk, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateSkillDTO) (*models.SkillModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, dto.apply)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
