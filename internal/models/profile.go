package models

// ProfileModel is the site owner's public card. The most recently updated row is "the" profile.
type ProfileModel struct {
	Base
	Name      string        `json:"name"      yaml:"name"`
	Headline  string        `json:"headline"  yaml:"headline"`
	Bio       string        `json:"bio"       yaml:"bio"       gorm:"type:text"`
	AvatarURL string        `json:"avatarUrl" yaml:"avatarUrl"`
	Social    ProfileSocial `json:"social"    yaml:"social"    gorm:"embedded;embeddedPrefix:social_"`
}

func (ProfileModel) TableName() string { return "profiles" }

type ProfileSocial struct {
	LinkedIn string `json:"linkedin" yaml:"linkedin"`
	GitHub   string `json:"github"   yaml:"github"`
	Twitter  string `json:"twitter"  yaml:"twitter"`
	Email    string `json:"email"    yaml:"email"`
}
