package models

// CredentialsModel is the single admin login.
//
// Password is stored as given (plaintext) unless hashing is enabled in config.
// This mirrors the legacy deployment and is a known weakness.
type CredentialsModel struct {
	Base
	Email    string `json:"email"    gorm:"uniqueIndex;not null"`
	Password string `json:"-"        gorm:"not null"`
	IsActive bool   `json:"isActive" gorm:"index"`
}

func (CredentialsModel) TableName() string { return "credentials" }
