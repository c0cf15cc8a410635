// Package catalog holds the static fallback content served when the store has
// no eligible record, and the demo content used for seeding. It is fixture
// data: keep catalog.yml in step with the model shapes.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"github.com/mx-space/portfolio/internal/models"
	"gopkg.in/yaml.v3"
)

// Kind names an entity type served by the public read surface.
type Kind string

const (
	KindProfile      Kind = "profile"
	KindAbout        Kind = "about"
	KindSkills       Kind = "skills"
	KindCertificates Kind = "certificates"
	KindContact      Kind = "contact"
	KindProjects     Kind = "projects"
	KindResume       Kind = "resume"
)

// Set is one complete batch of content.
type Set struct {
	Profile      *models.ProfileModel      `yaml:"profile"`
	About        *models.AboutModel        `yaml:"about"`
	Skills       []models.SkillModel       `yaml:"skills"`
	Certificates []models.CertificateModel `yaml:"certificates"`
	Contact      *models.ContactModel      `yaml:"contact"`
	Projects     []models.ProjectModel     `yaml:"projects"`
}

type document struct {
	Defaults Set `yaml:"defaults"`
	Demo     Set `yaml:"demo"`
}

//go:embed catalog.yml
var source []byte

var load = sync.OnceValue(func() document {
	doc, err := parse(source)
	if err != nil {
		panic(err)
	}
	return doc
})

func parse(b []byte) (document, error) {
	var doc document
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return doc, fmt.Errorf("catalog: %w", err)
	}
	d := doc.Defaults
	if d.Profile == nil || d.About == nil || d.Contact == nil || len(d.Skills) == 0 || len(d.Certificates) == 0 {
		return doc, fmt.Errorf("catalog: defaults must define profile, about, contact, skills and certificates")
	}
	// One canonical project fallback shared by every project listing.
	if len(d.Projects) != 1 {
		return doc, fmt.Errorf("catalog: defaults must define exactly one project, got %d", len(d.Projects))
	}
	for i := range doc.Defaults.Projects {
		doc.Defaults.Projects[i].SyncAliases()
	}
	for i := range doc.Demo.Projects {
		doc.Demo.Projects[i].SyncAliases()
	}
	return doc, nil
}

// Profile returns the fallback profile.
func Profile() models.ProfileModel { return *load().Defaults.Profile }

// About returns the fallback about section.
func About() models.AboutModel { return cloneAbout(*load().Defaults.About) }

// Skills returns the fallback skill list.
func Skills() []models.SkillModel { return slices.Clone(load().Defaults.Skills) }

// Certificates returns the fallback certificate list.
func Certificates() []models.CertificateModel { return slices.Clone(load().Defaults.Certificates) }

// Contact returns the fallback contact section.
func Contact() models.ContactModel { return *load().Defaults.Contact }

// Projects returns the single-element fallback project list.
func Projects() []models.ProjectModel { return cloneProjects(load().Defaults.Projects) }

// DefaultFor returns the fallback for kind, or nil when the kind has none
// (Resume: a placeholder resume would be misleading).
func DefaultFor(kind Kind) interface{} {
	switch kind {
	case KindProfile:
		return Profile()
	case KindAbout:
		return About()
	case KindSkills:
		return Skills()
	case KindCertificates:
		return Certificates()
	case KindContact:
		return Contact()
	case KindProjects:
		return Projects()
	default:
		return nil
	}
}

// Demo returns the content written by the seed command. Singletons missing
// from the demo block are taken from the defaults.
func Demo() Set {
	doc := load()
	demo := Set{
		Profile:      doc.Demo.Profile,
		About:        doc.Demo.About,
		Contact:      doc.Demo.Contact,
		Skills:       slices.Clone(doc.Demo.Skills),
		Certificates: slices.Clone(doc.Demo.Certificates),
		Projects:     cloneProjects(doc.Demo.Projects),
	}
	if demo.Profile == nil {
		demo.Profile = doc.Defaults.Profile
	}
	if demo.About == nil {
		demo.About = doc.Defaults.About
	}
	if demo.Contact == nil {
		demo.Contact = doc.Defaults.Contact
	}
	p, a, c := *demo.Profile, cloneAbout(*demo.About), *demo.Contact
	demo.Profile, demo.About, demo.Contact = &p, &a, &c
	return demo
}

func cloneAbout(a models.AboutModel) models.AboutModel {
	a.WhatIDo = slices.Clone(a.WhatIDo)
	a.TechStacks = slices.Clone(a.TechStacks)
	return a
}

func cloneProjects(in []models.ProjectModel) []models.ProjectModel {
	out := slices.Clone(in)
	for i := range out {
		out[i].Technologies = slices.Clone(out[i].Technologies)
		out[i].Tags = slices.Clone(out[i].Tags)
	}
	return out
}
