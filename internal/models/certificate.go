package models

// CertificateModel is a certificate card. Only active rows are shown publicly.
type CertificateModel struct {
	Base
	Title       string `json:"title"       yaml:"title"       gorm:"not null"`
	Issuer      string `json:"issuer"      yaml:"issuer"`
	Date        string `json:"date"        yaml:"date"`
	Image       string `json:"image"       yaml:"image"       gorm:"not null"`
	Description string `json:"description" yaml:"description" gorm:"type:text"`
	IsActive    bool   `json:"isActive"    yaml:"isActive"    gorm:"index"`
	Order       int    `json:"order"       yaml:"order"       gorm:"column:sort_order;index"`
}

func (CertificateModel) TableName() string { return "certificates" }
