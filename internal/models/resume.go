package models

// ResumeModel references an uploaded resume file. At most one row is active.
type ResumeModel struct {
	Base
	Title         string `json:"title"`
	FileName      string `json:"fileName"`
	FileURL       string `json:"fileUrl"       gorm:"not null"`
	FileSize      int64  `json:"fileSize"`
	MimeType      string `json:"mimeType"`
	IsActive      bool   `json:"isActive"      gorm:"index"`
	DownloadCount int    `json:"downloadCount"`
}

func (ResumeModel) TableName() string { return "resumes" }
