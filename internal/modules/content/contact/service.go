package contact

import (
	"context"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"gorm.io/gorm"
)

type Service struct {
	repo     *store.Repo[models.ContactModel]
	resolver *resolve.Resolver
}

func NewService(db *gorm.DB, resolver *resolve.Resolver) *Service {
	return &Service{repo: store.NewRepo[models.ContactModel](db), resolver: resolver}
}

func (s *Service) Get(ctx context.Context) models.ContactModel {
	return s.resolver.Contact(ctx)
}

// Upsert edits the current active contact section. When none is active a new
// active one is created.
func (s *Service) Upsert(ctx context.Context, dto *UpsertContactDTO) (*models.ContactModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	return s.repo.Upsert(ctx, store.Query{Where: map[string]interface{}{"is_active": true}}, dto.apply)
}
