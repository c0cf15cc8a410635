package profile

import "github.com/mx-space/portfolio/internal/models"

// UpsertProfileDTO is the body of PUT /admin/profile. Omitted fields keep
// their stored value.
type UpsertProfileDTO struct {
	Name      *string               `json:"name"      validate:"omitempty,min=1"`
	Headline  *string               `json:"headline"`
	Bio       *string               `json:"bio"`
	AvatarURL *string               `json:"avatarUrl" validate:"omitempty,url"`
	Social    *models.ProfileSocial `json:"social"`
}

func (d *UpsertProfileDTO) apply(p *models.ProfileModel) {
	if d.Name != nil {
		p.Name = *d.Name
	}
	if d.Headline != nil {
		p.Headline = *d.Headline
	}
	if d.Bio != nil {
		p.Bio = *d.Bio
	}
	if d.AvatarURL != nil {
		p.AvatarURL = *d.AvatarURL
	}
	if d.Social != nil {
		p.Social = *d.Social
	}
}
