package message

import "strings"

// CreateMessageDTO is a contact-form submission.
type CreateMessageDTO struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (d *CreateMessageDTO) trim() {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Message = strings.TrimSpace(d.Message)
}

type MarkMessageDTO struct {
	IsRead *bool `json:"isRead" validate:"required"`
}

// ListQuery filters the admin inbox.
type ListQuery struct {
	IsRead *bool `form:"isRead"`
}
