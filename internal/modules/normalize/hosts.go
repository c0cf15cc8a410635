package normalize

import (
	"net/url"
	"strings"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/models"
)

// HostRewriter points image URLs on retired hosts at their replacement.
// A nil or empty rewriter returns URLs unchanged.
type HostRewriter struct {
	rules map[string]string
}

func NewHostRewriter(rules []config.HostRewrite) *HostRewriter {
	m := make(map[string]string, len(rules))
	for _, r := range rules {
		from := strings.ToLower(strings.TrimSpace(r.From))
		to := strings.ToLower(strings.TrimSpace(r.To))
		if from != "" && to != "" {
			m[from] = to
		}
	}
	return &HostRewriter{rules: m}
}

// Rewrite swaps the host of raw when it matches a rule; anything unparsable
// or relative is returned as is.
func (h *HostRewriter) Rewrite(raw string) string {
	if h == nil || len(h.rules) == 0 || raw == "" {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	to, ok := h.rules[strings.ToLower(u.Hostname())]
	if !ok {
		return raw
	}
	if port := u.Port(); port != "" && !strings.Contains(to, ":") {
		to += ":" + port
	}
	u.Host = to
	return u.String()
}

// Project rewrites both image aliases of an already normalized project.
func (h *HostRewriter) Project(p models.ProjectModel) models.ProjectModel {
	p.ImageURL = h.Rewrite(p.ImageURL)
	p.Image = p.ImageURL
	return p
}
