package profile

import (
	"context"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"gorm.io/gorm"
)

type Service struct {
	repo     *store.Repo[models.ProfileModel]
	resolver *resolve.Resolver
}

func NewService(db *gorm.DB, resolver *resolve.Resolver) *Service {
	return &Service{repo: store.NewRepo[models.ProfileModel](db), resolver: resolver}
}

// Get never fails; see resolve.Resolver.Profile.
func (s *Service) Get(ctx context.Context) models.ProfileModel {
	return s.resolver.Profile(ctx)
}

// Upsert updates the current profile, creating it on first write.
func (s *Service) Upsert(ctx context.Context, dto *UpsertProfileDTO) (*models.ProfileModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, store.Query{}, dto.apply)
}
