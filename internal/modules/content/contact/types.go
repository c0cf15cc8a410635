package contact

import "github.com/mx-space/portfolio/internal/models"

// UpsertContactDTO is the body of PUT /admin/contact.
type UpsertContactDTO struct {
	Title       *string              `json:"title"`
	Subtitle    *string              `json:"subtitle"`
	Description *string              `json:"description"`
	Email       *string              `json:"email"       validate:"omitempty,email"`
	Phone       *string              `json:"phone"`
	Address     *string              `json:"address"`
	SocialLinks *models.ContactLinks `json:"socialLinks"`
	IsActive    *bool                `json:"isActive"`
}

func (d *UpsertContactDTO) apply(c *models.ContactModel) {
	if c.ID == "" {
		c.IsActive = true
	}
	if d.Title != nil {
		c.Title = *d.Title
	}
	if d.Subtitle != nil {
		c.Subtitle = *d.Subtitle
	}
	if d.Description != nil {
		c.Description = *d.Description
	}
	if d.Email != nil {
		c.Email = *d.Email
	}
	if d.Phone != nil {
		c.Phone = *d.Phone
	}
	if d.Address != nil {
		c.Address = *d.Address
	}
	if d.SocialLinks != nil {
		c.SocialLinks = *d.SocialLinks
	}
	if d.IsActive != nil {
		c.IsActive = *d.IsActive
	}
}
