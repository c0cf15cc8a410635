package skill

import (
	"strings"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/validate"
)

// CreateSkillDTO is the body of POST /admin/skills.
type CreateSkillDTO struct {
	Name        string `json:"name"        validate:"required"`
	Category    string `json:"category"    validate:"omitempty,oneof='Technical' 'Programming Languages' 'Frameworks' 'Tools' 'Soft Skills' 'Certifications' 'Languages'"`
	Level       string `json:"level"       validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	IsFeatured  bool   `json:"isFeatured"`
	Order       int    `json:"order"`
}

// UpdateSkillDTO is the body of PUT /admin/skills/:id (all fields optional).
type UpdateSkillDTO struct {
	Name        *string `json:"name"        validate:"omitempty,min=1"`
	Category    *string `json:"category"    validate:"omitempty,oneof='Technical' 'Programming Languages' 'Frameworks' 'Tools' 'Soft Skills' 'Certifications' 'Languages'"`
	Level       *string `json:"level"       validate:"omitempty,oneof=Beginner Intermediate Advanced Expert"`
	Icon        *string `json:"icon"`
	Description *string `json:"description"`
	IsFeatured  *bool   `json:"isFeatured"`
	Order       *int    `json:"order"`
}

func (d *CreateSkillDTO) model() models.SkillModel {
	s := models.SkillModel{
		Name:        strings.TrimSpace(d.Name),
		Category:    d.Category,
		Level:       d.Level,
		Icon:        d.Icon,
		Description: d.Description,
		IsFeatured:  d.IsFeatured,
		Order:       d.Order,
	}
	if s.Category == "" {
		s.Category = models.SkillCategoryTechnical
	}
	if s.Level == "" {
		s.Level = models.SkillLevelIntermediate
	}
	return s
}

func (d *UpdateSkillDTO) apply(s *models.SkillModel) error {
	if d.Name != nil {
		s.Name = strings.TrimSpace(*d.Name)
	}
	if d.Category != nil {
		s.Category = *d.Category
	}
	if d.Level != nil {
		s.Level = *d.Level
	}
	if d.Icon != nil {
		s.Icon = *d.Icon
	}
	if d.Description != nil {
		s.Description = *d.Description
	}
	if d.IsFeatured != nil {
		s.IsFeatured = *d.IsFeatured
	}
	if d.Order != nil {
		s.Order = *d.Order
	}
	if s.Name == "" {
		return validate.Rule("name", "required")
	}
	return nil
}
