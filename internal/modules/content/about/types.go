package about

import "github.com/mx-space/portfolio/internal/models"

// UpsertAboutDTO is the body of PUT /admin/about. Omitted fields keep their
// stored value; lists are replaced wholesale.
type UpsertAboutDTO struct {
	Title      *string            `json:"title"`
	Bio        *string            `json:"bio"`
	ImageURL   *string            `json:"imageUrl"   validate:"omitempty,url"`
	WhatIDo    []string           `json:"whatIDo"`
	TechStacks []string           `json:"techStacks"`
	Stats      *models.AboutStats `json:"stats"`
}

func (d *UpsertAboutDTO) apply(a *models.AboutModel) {
	if d.Title != nil {
		a.Title = *d.Title
	}
	if d.Bio != nil {
		a.Bio = *d.Bio
	}
	if d.ImageURL != nil {
		a.ImageURL = *d.ImageURL
	}
	if d.WhatIDo != nil {
		a.WhatIDo = models.StringArray(d.WhatIDo)
	}
	if d.TechStacks != nil {
		a.TechStacks = models.StringArray(d.TechStacks)
	}
	if d.Stats != nil {
		a.Stats = *d.Stats
	}
}

// View is the about record with its bio rendered to HTML.
type View struct {
	models.AboutModel
	BioHTML string `json:"bioHtml"`
}
