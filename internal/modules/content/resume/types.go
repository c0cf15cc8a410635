package resume

import (
	"strings"

	"github.com/mx-space/portfolio/internal/models"
)

// CreateResumeDTO registers a resume file that is already hosted somewhere.
// New resumes are active unless isActive is false.
type CreateResumeDTO struct {
	Title    string `json:"title"`
	FileURL  string `json:"fileUrl"  validate:"required,uri"`
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize" validate:"gte=0"`
	MimeType string `json:"mimeType"`
	IsActive *bool  `json:"isActive"`
}

func (d *CreateResumeDTO) model() models.ResumeModel {
	r := models.ResumeModel{
		Title:    strings.TrimSpace(d.Title),
		FileURL:  strings.TrimSpace(d.FileURL),
		FileName: d.FileName,
		FileSize: d.FileSize,
		MimeType: d.MimeType,
		IsActive: true,
	}
	if d.IsActive != nil {
		r.IsActive = *d.IsActive
	}
	if r.Title == "" {
		r.Title = r.FileName
	}
	return r
}
