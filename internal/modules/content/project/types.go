package project

import (
	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/normalize"
)

// CreateProjectDTO accepts both the current field names and the legacy
// aliases (image, tags, demoUrl) older clients still send.
type CreateProjectDTO struct {
	Title        string   `json:"title"        validate:"required"`
	Description  string   `json:"description"  validate:"required"`
	ImageURL     string   `json:"imageUrl"`
	Image        string   `json:"image"`
	LiveURL      string   `json:"liveUrl"`
	DemoURL      string   `json:"demoUrl"`
	GithubURL    string   `json:"githubUrl"`
	Technologies []string `json:"technologies"`
	Tags         []string `json:"tags"`
	Featured     bool     `json:"featured"`
	Icon         string   `json:"icon"`
	Category     string   `json:"category"`
}

// UpdateProjectDTO is a partial update; a legacy alias counts only when its
// canonical field is absent from the body.
type UpdateProjectDTO struct {
	Title        *string  `json:"title"        validate:"omitempty,min=1"`
	Description  *string  `json:"description"  validate:"omitempty,min=1"`
	ImageURL     *string  `json:"imageUrl"`
	Image        *string  `json:"image"`
	LiveURL      *string  `json:"liveUrl"`
	DemoURL      *string  `json:"demoUrl"`
	GithubURL    *string  `json:"githubUrl"`
	Technologies []string `json:"technologies"`
	Tags         []string `json:"tags"`
	Featured     *bool    `json:"featured"`
	Icon         *string  `json:"icon"`
	Category     *string  `json:"category"`
}

func (d *CreateProjectDTO) model() models.ProjectModel {
	p := models.ProjectModel{
		Title:        d.Title,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		Image:        d.Image,
		LiveURL:      d.LiveURL,
		DemoURL:      d.DemoURL,
		GithubURL:    d.GithubURL,
		Technologies: models.StringArray(d.Technologies),
		Tags:         models.StringArray(d.Tags),
		Featured:     d.Featured,
		Icon:         d.Icon,
		Category:     d.Category,
	}
	p.SyncAliases()
	return p
}

func (d *UpdateProjectDTO) apply(p *models.ProjectModel) error {
	if d.Title != nil {
		p.Title = *d.Title
	}
	if d.Description != nil {
		p.Description = *d.Description
	}
	if v := normalize.Prefer(d.ImageURL, d.Image); v != nil {
		p.ImageURL, p.Image = *v, *v
	}
	if v := normalize.Prefer(d.LiveURL, d.DemoURL); v != nil {
		p.LiveURL, p.DemoURL = *v, *v
	}
	if d.GithubURL != nil {
		p.GithubURL = *d.GithubURL
	}
	if d.Technologies != nil || d.Tags != nil {
		tech := d.Technologies
		if tech == nil {
			tech = d.Tags
		}
		p.Technologies = models.StringArray(tech)
		p.Tags = nil
	}
	if d.Featured != nil {
		p.Featured = *d.Featured
	}
	if d.Icon != nil {
		p.Icon = *d.Icon
	}
	if d.Category != nil {
		p.Category = *d.Category
	}
	p.SyncAliases()
	return nil
}
