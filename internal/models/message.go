package models

// MessageModel is an inbound contact-form submission.
type MessageModel struct {
	Base
	Name    string `json:"name"    gorm:"not null"`
	Email   string `json:"email"   gorm:"not null"`
	Message string `json:"message" gorm:"type:text;not null"`
	IsRead  bool   `json:"isRead"  gorm:"index"`
}

func (MessageModel) TableName() string { return "messages" }
