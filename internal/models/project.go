package models

// ProjectModel stores portfolio projects.
//
// Three field pairs are aliases kept for records written by older clients:
// ImageURL/Image, Technologies/Tags and LiveURL/DemoURL. Both columns of a
// pair are persisted and kept equal by SyncAliases on every write.
type ProjectModel struct {
	Base
	Title        string      `json:"title"               yaml:"title"        gorm:"not null"`
	Description  string      `json:"description"         yaml:"description"  gorm:"type:text;not null"`
	ImageURL     string      `json:"imageUrl,omitempty"  yaml:"imageUrl"`
	Image        string      `json:"image,omitempty"     yaml:"image"`
	LiveURL      string      `json:"liveUrl,omitempty"   yaml:"liveUrl"`
	DemoURL      string      `json:"demoUrl,omitempty"   yaml:"demoUrl"`
	GithubURL    string      `json:"githubUrl,omitempty" yaml:"githubUrl"`
	Technologies StringArray `json:"technologies"        yaml:"technologies" gorm:"type:longtext"`
	Tags         StringArray `json:"tags"                yaml:"tags"         gorm:"type:longtext"`
	Featured     bool        `json:"featured"            yaml:"featured"     gorm:"index"`
	Icon         string      `json:"icon"                yaml:"icon"`
	Category     string      `json:"category"            yaml:"category"`
}

func (ProjectModel) TableName() string { return "projects" }

// SyncAliases makes both fields of every alias pair hold the same value.
// The canonical field wins; the legacy one fills in when the canonical is empty.
func (p *ProjectModel) SyncAliases() {
	if p.ImageURL == "" {
		p.ImageURL = p.Image
	}
	p.Image = p.ImageURL

	if p.LiveURL == "" {
		p.LiveURL = p.DemoURL
	}
	p.DemoURL = p.LiveURL

	if len(p.Technologies) == 0 {
		p.Technologies = append(StringArray(nil), p.Tags...)
	}
	if p.Technologies == nil {
		p.Technologies = StringArray{}
	}
	p.Tags = append(StringArray{}, p.Technologies...)
}
