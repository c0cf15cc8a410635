// Package normalize turns stored records into the canonical shape served to
// clients. It is the only place that knows about legacy field aliases.
package normalize

import (
	"slices"
	"strings"

	"github.com/mx-space/portfolio/internal/models"
)

const (
	DefaultProjectTitle       = "Untitled Project"
	DefaultProjectDescription = "No description available."
	DefaultProjectIcon        = "🚀"
	DefaultProjectCategory    = "Web Development"
)

// Project collapses alias pairs and fills cosmetic defaults. The input is not
// modified. Project(Project(p)) == Project(p).
func Project(p models.ProjectModel) models.ProjectModel {
	out := p
	out.Technologies = slices.Clone(p.Technologies)
	out.Tags = slices.Clone(p.Tags)
	out.SyncAliases()

	if strings.TrimSpace(out.Title) == "" {
		out.Title = DefaultProjectTitle
	}
	if strings.TrimSpace(out.Description) == "" {
		out.Description = DefaultProjectDescription
	}
	if strings.TrimSpace(out.Icon) == "" {
		out.Icon = DefaultProjectIcon
	}
	if strings.TrimSpace(out.Category) == "" {
		out.Category = DefaultProjectCategory
	}
	return out
}

// Projects normalizes every element into a new slice.
func Projects(in []models.ProjectModel) []models.ProjectModel {
	out := make([]models.ProjectModel, len(in))
	for i, p := range in {
		out[i] = Project(p)
	}
	return out
}

// Prefer picks the canonical value of an alias pair from a partial update:
// canonical when present, else legacy. nil means neither was sent.
func Prefer[T any](canonical, legacy *T) *T {
	if canonical != nil {
		return canonical
	}
	return legacy
}
