package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base is the base model for all entities.
// ID is a UUID string for new rows; rows imported from the legacy MongoDB store keep their ObjectID hex.
type Base struct {
	ID        string         `json:"id"        gorm:"type:varchar(36);primaryKey"`
	CreatedAt time.Time      `json:"createdAt" gorm:"index"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"index"`
	DeletedAt gorm.DeletedAt `json:"-"         gorm:"index"`
}

func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&ProfileModel{},
		&AboutModel{},
		&SkillModel{},
		&CertificateModel{},
		&ProjectModel{},
		&ContactModel{},
		&ResumeModel{},
		&MessageModel{},
		&CredentialsModel{},
	}
}
