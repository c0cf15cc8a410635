package about

import (
	"context"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/markdown"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	repo     *store.Repo[models.AboutModel]
	resolver *resolve.Resolver
	log      *zap.Logger
}

func NewService(db *gorm.DB, resolver *resolve.Resolver, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: store.NewRepo[models.AboutModel](db), resolver: resolver, log: log}
}

func (s *Service) Get(ctx context.Context) View {
	return s.render(s.resolver.About(ctx))
}

func (s *Service) Upsert(ctx context.Context, dto *UpsertAboutDTO) (View, error) {
	if err := validate.Struct(dto); err != nil {
		return View{}, err
	}
	a, err := s.repo.Upsert(ctx, store.Query{}, dto.apply)
	if err != nil {
		return View{}, err
	}
	return s.render(*a), nil
}

// render fills BioHTML; a Markdown failure leaves it empty rather than
// failing the read.
func (s *Service) render(a models.AboutModel) View {
	html, err := markdown.ToHTML(a.Bio)
	if err != nil {
		s.log.Warn("render about bio", zap.Error(err))
	}
	return View{AboutModel: a, BioHTML: html}
}
