package models

// ContactModel backs the contact section.
type ContactModel struct {
	Base
	Title       string       `json:"title"       yaml:"title"`
	Subtitle    string       `json:"subtitle"    yaml:"subtitle"`
	Description string       `json:"description" yaml:"description" gorm:"type:text"`
	Email       string       `json:"email"       yaml:"email"`
	Phone       string       `json:"phone"       yaml:"phone"`
	Address     string       `json:"address"     yaml:"address"`
	SocialLinks ContactLinks `json:"socialLinks" yaml:"socialLinks" gorm:"embedded;embeddedPrefix:social_"`
	IsActive    bool         `json:"isActive"    yaml:"isActive"    gorm:"index"`
}

func (ContactModel) TableName() string { return "contacts" }

type ContactLinks struct {
	LinkedIn  string `json:"linkedin"  yaml:"linkedin"`
	GitHub    string `json:"github"    yaml:"github"`
	Twitter   string `json:"twitter"   yaml:"twitter"`
	Instagram string `json:"instagram" yaml:"instagram"`
	Facebook  string `json:"facebook"  yaml:"facebook"`
}
