package models

const (
	SkillCategoryTechnical      = "Technical"
	SkillCategoryLanguages      = "Programming Languages"
	SkillCategoryFrameworks     = "Frameworks"
	SkillCategoryTools          = "Tools"
	SkillCategorySoftSkills     = "Soft Skills"
	SkillCategoryCertifications = "Certifications"
	SkillCategorySpokenLanguage = "Languages"
)

const (
	SkillLevelBeginner     = "Beginner"
	SkillLevelIntermediate = "Intermediate"
	SkillLevelAdvanced     = "Advanced"
	SkillLevelExpert       = "Expert"
)

// SkillCategories lists the accepted skill categories in display order.
var SkillCategories = []string{
	SkillCategoryTechnical,
	SkillCategoryLanguages,
	SkillCategoryFrameworks,
	SkillCategoryTools,
	SkillCategorySoftSkills,
	SkillCategoryCertifications,
	SkillCategorySpokenLanguage,
}

// SkillLevels lists the accepted proficiency levels, lowest first.
var SkillLevels = []string{
	SkillLevelBeginner,
	SkillLevelIntermediate,
	SkillLevelAdvanced,
	SkillLevelExpert,
}

// SkillModel is one entry of the skills grid. Every row is live; there is no active flag.
type SkillModel struct {
	Base
	Name        string `json:"name"        yaml:"name"        gorm:"not null"`
	Category    string `json:"category"    yaml:"category"    gorm:"not null;default:Technical"`
	Level       string `json:"level"       yaml:"level"       gorm:"not null;default:Intermediate"`
	Icon        string `json:"icon"        yaml:"icon"`
	Description string `json:"description" yaml:"description" gorm:"type:text"`
	IsFeatured  bool   `json:"isFeatured"  yaml:"isFeatured"`
	Order       int    `json:"order"       yaml:"order"       gorm:"column:sort_order;index"`
}

func (SkillModel) TableName() string { return "skills" }

// IsSkillCategory reports whether v is an accepted category.
func IsSkillCategory(v string) bool { return contains(SkillCategories, v) }

// IsSkillLevel reports whether v is an accepted level.
func IsSkillLevel(v string) bool { return contains(SkillLevels, v) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
