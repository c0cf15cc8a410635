package certificate

import (
	"strings"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/pkg/validate"
)

type CreateCertificateDTO struct {
	Title       string `json:"title"       validate:"required"`
	Issuer      string `json:"issuer"`
	Date        string `json:"date"`
	Image       string `json:"image"       validate:"required"`
	Description string `json:"description"`
	IsActive    *bool  `json:"isActive"`
	Order       int    `json:"order"`
}

type UpdateCertificateDTO struct {
	Title       *string `json:"title"`
	Issuer      *string `json:"issuer"`
	Date        *string `json:"date"`
	Image       *string `json:"image"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
	Order       *int    `json:"order"`
}

func (d *CreateCertificateDTO) model() models.CertificateModel {
	c := models.CertificateModel{
		Title:       strings.TrimSpace(d.Title),
		Issuer:      d.Issuer,
		Date:        d.Date,
		Image:       strings.TrimSpace(d.Image),
		Description: d.Description,
		IsActive:    true,
		Order:       d.Order,
	}
	if d.IsActive != nil {
		c.IsActive = *d.IsActive
	}
	return c
}

func (d *UpdateCertificateDTO) apply(c *models.CertificateModel) error {
	if d.Title != nil {
		c.Title = strings.TrimSpace(*d.Title)
	}
	if d.Issuer != nil {
		c.Issuer = *d.Issuer
	}
	if d.Date != nil {
		c.Date = *d.Date
	}
	if d.Image != nil {
		c.Image = strings.TrimSpace(*d.Image)
	}
	if d.Description != nil {
		c.Description = *d.Description
	}
	if d.IsActive != nil {
		c.IsActive = *d.IsActive
	}
	if d.Order != nil {
		c.Order = *d.Order
	}
	return checkRequired(c)
}

func checkRequired(c *models.CertificateModel) error {
	if c.Title == "" {
		return validate.Rule("title", "required")
	}
	if c.Image == "" {
		return validate.Rule("image", "required")
	}
	return nil
}
