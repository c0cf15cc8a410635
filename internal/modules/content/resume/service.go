package resume

import (
	"context"
	"io"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/imagehost"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var listOrder = []string{"created_at DESC", "id DESC"}

type Service struct {
	repo     *store.Repo[models.ResumeModel]
	resolver *resolve.Resolver
	uploader *imagehost.Uploader
	log      *zap.Logger
}

func NewService(db *gorm.DB, resolver *resolve.Resolver, uploader *imagehost.Uploader, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		repo:     store.NewRepo[models.ResumeModel](db),
		resolver: resolver,
		uploader: uploader,
		log:      log,
	}
}

// Active returns the active resume or store.ErrNotFound.
func (s *Service) Active(ctx context.Context) (*models.ResumeModel, error) {
	return s.resolver.Resume(ctx)
}

// Download counts a download of the active resume and returns its file URL.
// A failed counter update does not block the download.
func (s *Service) Download(ctx context.Context) (string, error) {
	r, err := s.resolver.Resume(ctx)
	if err != nil {
		return "", err
	}
	err = s.repo.DB().WithContext(ctx).Model(&models.ResumeModel{}).
		Where("id = ?", r.ID).
		UpdateColumn("download_count", gorm.Expr("download_count + ?", 1)).Error
	if err != nil {
		s.log.Warn("count resume download", zap.String("id", r.ID), zap.Error(store.Classify(err)))
	}
	return r.FileURL, nil
}

func (s *Service) List(ctx context.Context) ([]models.ResumeModel, error) {
	return s.repo.List(ctx, store.Query{Order: listOrder})
}

func (s *Service) Create(ctx context.Context, dto *CreateResumeDTO) (*models.ResumeModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	r := dto.model()
	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.IsActive {
			if err := deactivateAll(tx); err != nil {
				return err
			}
		}
		return tx.Create(&r).Error
	})
	if err != nil {
		return nil, store.Classify(err)
	}
	return &r, nil
}

// Upload stores the file through the upload boundary and registers it as the
// active resume.
func (s *Service) Upload(ctx context.Context, title, filename string, body io.Reader) (*models.ResumeModel, error) {
	if s.uploader == nil {
		return nil, validate.Rule("file", "unsupported")
	}
	f, err := s.uploader.UploadFile(ctx, filename, body)
	if err != nil {
		return nil, err
	}
	return s.Create(ctx, &CreateResumeDTO{
		Title:    title,
		FileURL:  f.URL,
		FileName: f.Name,
		FileSize: f.Size,
		MimeType: f.MimeType,
	})
}

// Activate makes id the only active resume.
func (s *Service) Activate(ctx context.Context, id string) (*models.ResumeModel, error) {
	var out models.ResumeModel
	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&out, "id = ?", id).Error; err != nil {
			return err
		}
		if err := deactivateAll(tx); err != nil {
			return err
		}
		out.IsActive = true
		return tx.Model(&out).UpdateColumn("is_active", true).Error
	})
	if err != nil {
		return nil, store.Classify(err)
	}
	return &out, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func deactivateAll(tx *gorm.DB) error {
	return tx.Model(&models.ResumeModel{}).
		Where("is_active = ?", true).
		UpdateColumn("is_active", false).Error
}
