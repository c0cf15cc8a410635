package certificate

import (
	"context"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"gorm.io/gorm"
)

var adminOrder = []string{"sort_order ASC", "created_at DESC", "id DESC"}

type Service struct {
	repo     *store.Repo[models.CertificateModel]
	resolver *resolve.Resolver
}

func NewService(db *gorm.DB, resolver *resolve.Resolver) *Service {
	return &Service{repo: store.NewRepo[models.CertificateModel](db), resolver: resolver}
}

// Public returns active certificates, or the catalog list when there are none.
func (s *Service) Public(ctx context.Context) []models.CertificateModel {
	return s.resolver.Certificates(ctx)
}

// List returns every stored certificate, inactive ones included.
func (s *Service) List(ctx context.Context) ([]models.CertificateModel, error) {
	return s.repo.List(ctx, store.Query{Order: adminOrder})
}

func (s *Service) Create(ctx context.Context, dto *CreateCertificateDTO) (*models.CertificateModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	c := dto.model()
	if err := checkRequired(&c); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Service) Update(ctx context.Context, id string, dto *UpdateCertificateDTO) (*models.CertificateModel, error) {
	return s.repo.Update(ctx, id, dto.apply)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
