package models

// AboutModel backs the "about me" section.
type AboutModel struct {
	Base
	Title      string      `json:"title"      yaml:"title"`
	Bio        string      `json:"bio"        yaml:"bio"        gorm:"type:text"`
	ImageURL   string      `json:"imageUrl"   yaml:"imageUrl"`
	WhatIDo    StringArray `json:"whatIDo"    yaml:"whatIDo"    gorm:"type:longtext"`
	TechStacks StringArray `json:"techStacks" yaml:"techStacks" gorm:"type:longtext"`
	Stats      AboutStats  `json:"stats"      yaml:"stats"      gorm:"embedded;embeddedPrefix:stats_"`
}

func (AboutModel) TableName() string { return "abouts" }

type AboutStats struct {
	Education string `json:"education" yaml:"education"`
	Projects  string `json:"projects"  yaml:"projects"`
	CGPA      string `json:"cgpa"      yaml:"cgpa"`
}
