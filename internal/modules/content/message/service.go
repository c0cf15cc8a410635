package message

import (
	"context"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/pagination"
	"github.com/mx-space/portfolio/internal/pkg/response"
	"github.com/mx-space/portfolio/internal/pkg/validate"
	"github.com/mx-space/portfolio/internal/store"
	"gorm.io/gorm"
)

var newestFirst = []string{"created_at DESC", "id DESC"}

type Service struct {
	repo *store.Repo[models.MessageModel]
}

func NewService(db *gorm.DB) *Service {
	return &Service{repo: store.NewRepo[models.MessageModel](db)}
}

func (s *Service) Create(ctx context.Context, dto *CreateMessageDTO) (*models.MessageModel, error) {
	dto.trim()
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	m := models.MessageModel{Name: dto.Name, Email: dto.Email, Message: dto.Message}
	if err := s.repo.Create(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (s *Service) List(ctx context.Context, q pagination.Query, filter ListQuery) ([]models.MessageModel, response.Pagination, error) {
	query := store.Query{Order: newestFirst}
	if filter.IsRead != nil {
		query.Where = map[string]interface{}{"is_read": *filter.IsRead}
	}
	items, total, err := s.repo.Page(ctx, query, q.Page, q.Size)
	if err != nil {
		return nil, response.Pagination{}, err
	}
	return items, pagination.Meta(q, total), nil
}

func (s *Service) UnreadCount(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx, store.Query{Where: map[string]interface{}{"is_read": false}})
}

func (s *Service) Mark(ctx context.Context, id string, dto *MarkMessageDTO) (*models.MessageModel, error) {
	if err := validate.Struct(dto); err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, func(m *models.MessageModel) error {
		m.IsRead = *dto.IsRead
		return nil
	})
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
