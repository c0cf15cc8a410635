package legacy

import (
	"github.com/mx-space/portfolio/internal/models"
)

func (m Meta) base() models.Base {
	b := models.Base{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
	if !m.ID.IsZero() {
		b.ID = m.ID.Hex()
	}
	return b
}

func orDefault(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

func mapProfile(d profileDoc) models.ProfileModel {
	return models.ProfileModel{
		Base:      d.base(),
		Name:      d.Name,
		Headline:  firstNonEmpty(d.Headline, d.Title),
		Bio:       d.Bio,
		AvatarURL: firstNonEmpty(d.AvatarURL, d.Avatar),
		Social: models.ProfileSocial{
			LinkedIn: d.Social.LinkedIn,
			GitHub:   d.Social.GitHub,
			Twitter:  d.Social.Twitter,
			Email:    d.Social.Email,
		},
	}
}

func mapAbout(d aboutDoc) models.AboutModel {
	return models.AboutModel{
		Base:       d.base(),
		Title:      d.Title,
		Bio:        d.Bio,
		ImageURL:   firstNonEmpty(d.ImageURL, d.Image),
		WhatIDo:    models.StringArray(d.WhatIDo),
		TechStacks: models.StringArray(d.TechStacks),
		Stats: models.AboutStats{
			Education: d.Stats.Education,
			Projects:  d.Stats.Projects,
			CGPA:      d.Stats.CGPA,
		},
	}
}

func mapSkill(d skillDoc) models.SkillModel {
	s := models.SkillModel{
		Base:        d.base(),
		Name:        d.Name,
		Category:    d.Category,
		Level:       d.Level,
		Icon:        d.Icon,
		Description: d.Description,
		IsFeatured:  d.IsFeatured,
		Order:       d.Order,
	}
	if !models.IsSkillCategory(s.Category) {
		s.Category = models.SkillCategoryTechnical
	}
	if !models.IsSkillLevel(s.Level) {
		s.Level = models.SkillLevelIntermediate
	}
	return s
}

func mapCertificate(d certificateDoc) models.CertificateModel {
	return models.CertificateModel{
		Base:        d.base(),
		Title:       d.Title,
		Issuer:      d.Issuer,
		Date:        d.Date,
		Image:       d.Image,
		Description: d.Description,
		IsActive:    orDefault(d.IsActive, true),
		Order:       d.Order,
	}
}

// mapProject keeps both alias columns equal so old and new readers agree.
func mapProject(d projectDoc) models.ProjectModel {
	p := models.ProjectModel{
		Base:         d.base(),
		Title:        d.Title,
		Description:  d.Description,
		ImageURL:     d.ImageURL,
		Image:        d.Image,
		LiveURL:      d.LiveURL,
		DemoURL:      d.DemoURL,
		GithubURL:    d.GithubURL,
		Technologies: models.StringArray(d.Technologies),
		Tags:         models.StringArray(d.Tags),
		Featured:     d.Featured,
		Icon:         d.Icon,
		Category:     d.Category,
	}
	p.SyncAliases()
	return p
}

func mapContact(d contactDoc) models.ContactModel {
	return models.ContactModel{
		Base:        d.base(),
		Title:       d.Title,
		Subtitle:    d.Subtitle,
		Description: d.Description,
		Email:       d.Email,
		Phone:       d.Phone,
		Address:     d.Address,
		SocialLinks: models.ContactLinks{
			LinkedIn:  d.SocialLinks.LinkedIn,
			GitHub:    d.SocialLinks.GitHub,
			Twitter:   d.SocialLinks.Twitter,
			Instagram: d.SocialLinks.Instagram,
			Facebook:  d.SocialLinks.Facebook,
		},
		IsActive: orDefault(d.IsActive, true),
	}
}

func mapResume(d resumeDoc) models.ResumeModel {
	return models.ResumeModel{
		Base:          d.base(),
		Title:         d.Title,
		FileName:      d.FileName,
		FileURL:       d.FileURL,
		FileSize:      d.FileSize,
		MimeType:      d.MimeType,
		IsActive:      d.IsActive,
		DownloadCount: d.DownloadCount,
	}
}

func mapMessage(d messageDoc) models.MessageModel {
	return models.MessageModel{
		Base:    d.base(),
		Name:    d.Name,
		Email:   d.Email,
		Message: d.Message,
		IsRead:  d.IsRead,
	}
}

func mapCredentials(d credentialsDoc) models.CredentialsModel {
	return models.CredentialsModel{
		Base:     d.base(),
		Email:    d.Email,
		Password: d.Password,
		IsActive: orDefault(d.IsActive, true),
	}
}
