// Package resolve implements the public read protocol: try the primary store,
// fall back to the volatile cache when the primary is unreachable, and finally
// to the static catalog. Read methods never return store errors; Resume is the
// one type whose absence is reported (ErrNotFound) instead of masked.
package resolve

import (
	"context"
	"errors"
	"time"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/catalog"
	"github.com/mx-space/portfolio/internal/modules/normalize"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Source is the read side of a store.Repo.
type Source[T any] interface {
	Latest(ctx context.Context, q store.Query) (*T, error)
	List(ctx context.Context, q store.Query) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
}

// Sources groups the per-type readers the resolver consults.
type Sources struct {
	Profiles     Source[models.ProfileModel]
	Abouts       Source[models.AboutModel]
	Skills       Source[models.SkillModel]
	Certificates Source[models.CertificateModel]
	Contacts     Source[models.ContactModel]
	Projects     Source[models.ProjectModel]
	Resumes      Source[models.ResumeModel]
}

// NewSources builds GORM-backed sources for every type.
func NewSources(db *gorm.DB) Sources {
	return Sources{
		Profiles:     store.NewRepo[models.ProfileModel](db),
		Abouts:       store.NewRepo[models.AboutModel](db),
		Skills:       store.NewRepo[models.SkillModel](db),
		Certificates: store.NewRepo[models.CertificateModel](db),
		Contacts:     store.NewRepo[models.ContactModel](db),
		Projects:     store.NewRepo[models.ProjectModel](db),
		Resumes:      store.NewRepo[models.ResumeModel](db),
	}
}

var (
	activeOnly = map[string]interface{}{"is_active": true}

	skillOrder       = []string{"sort_order ASC", "created_at ASC", "id ASC"}
	certificateOrder = []string{"sort_order ASC", "created_at DESC", "id DESC"}
	projectOrder     = []string{"created_at DESC", "id DESC"}
)

// Resolver is safe for concurrent use.
type Resolver struct {
	src   Sources
	cache store.VolatileCache
	ttl   time.Duration
	hosts *normalize.HostRewriter
	log   *zap.Logger
}

type Option func(*Resolver)

// WithCacheTTL bounds how long last-known-good copies are kept.
func WithCacheTTL(ttl time.Duration) Option { return func(r *Resolver) { r.ttl = ttl } }

// WithHostRewriter applies stale image host rewriting to resolved records.
func WithHostRewriter(h *normalize.HostRewriter) Option { return func(r *Resolver) { r.hosts = h } }

func New(src Sources, cache store.VolatileCache, log *zap.Logger, opts ...Option) *Resolver {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Resolver{src: src, cache: cache, log: log}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Profile returns the most recently updated profile, else the catalog profile.
func (r *Resolver) Profile(ctx context.Context) models.ProfileModel {
	p := one(ctx, r, catalog.KindProfile, r.src.Profiles, store.Query{}, catalog.Profile)
	p.AvatarURL = r.hosts.Rewrite(p.AvatarURL)
	return p
}

// About returns the most recently updated about section, else the catalog one.
func (r *Resolver) About(ctx context.Context) models.AboutModel {
	a := one(ctx, r, catalog.KindAbout, r.src.Abouts, store.Query{}, catalog.About)
	a.ImageURL = r.hosts.Rewrite(a.ImageURL)
	return a
}

// Contact returns the most recently updated active contact, else the catalog one.
func (r *Resolver) Contact(ctx context.Context) models.ContactModel {
	return one(ctx, r, catalog.KindContact, r.src.Contacts, store.Query{Where: activeOnly}, catalog.Contact)
}

// Skills returns every skill row, else the catalog list. There is no active flag.
func (r *Resolver) Skills(ctx context.Context) []models.SkillModel {
	return list(ctx, r, catalog.KindSkills, r.src.Skills, store.Query{Order: skillOrder}, catalog.Skills)
}

// Certificates returns active certificates, else the catalog list.
func (r *Resolver) Certificates(ctx context.Context) []models.CertificateModel {
	items := list(ctx, r, catalog.KindCertificates, r.src.Certificates,
		store.Query{Where: activeOnly, Order: certificateOrder}, catalog.Certificates)
	for i := range items {
		items[i].Image = r.hosts.Rewrite(items[i].Image)
	}
	return items
}

// Projects returns normalized projects, newest first, else the normalized
// single-element catalog list.
func (r *Resolver) Projects(ctx context.Context) []models.ProjectModel {
	items := list(ctx, r, catalog.KindProjects, r.src.Projects, store.Query{Order: projectOrder}, catalog.Projects)
	out := normalize.Projects(items)
	for i := range out {
		out[i] = r.hosts.Project(out[i])
	}
	return out
}

// Project returns one normalized project by id. Fallback projects have no id,
// so any failure to load the record is reported as store.ErrNotFound.
func (r *Resolver) Project(ctx context.Context, id string) (models.ProjectModel, error) {
	rec, err := r.src.Projects.Get(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			r.log.Warn("project lookup failed", zap.String("id", id), zap.Error(err))
		}
		return models.ProjectModel{}, store.ErrNotFound
	}
	return r.hosts.Project(normalize.Project(*rec)), nil
}

// Resume returns the active resume. Absence, including an unreachable store
// with nothing cached, is store.ErrNotFound.
func (r *Resolver) Resume(ctx context.Context) (*models.ResumeModel, error) {
	rec, err := r.src.Resumes.Latest(ctx, store.Query{Where: activeOnly})
	key := cacheKey(catalog.KindResume)
	switch {
	case err == nil:
		r.remember(ctx, key, rec)
		return rec, nil
	case errors.Is(err, store.ErrNotFound):
		r.forget(ctx, key)
		return nil, store.ErrNotFound
	}

	r.log.Warn("resume lookup failed, trying volatile cache", zap.Error(err))
	var cached models.ResumeModel
	if r.recall(ctx, key, &cached) {
		return &cached, nil
	}
	return nil, store.ErrNotFound
}

func one[T any](ctx context.Context, r *Resolver, kind catalog.Kind, src Source[T], q store.Query, fallback func() T) T {
	key := cacheKey(kind)
	rec, err := src.Latest(ctx, q)
	switch {
	case err == nil:
		r.remember(ctx, key, rec)
		return *rec
	case errors.Is(err, store.ErrNotFound):
		r.forget(ctx, key)
		return fallback()
	}

	r.log.Warn("primary store read failed, trying volatile cache", zap.String("kind", string(kind)), zap.Error(err))
	var cached T
	if r.recall(ctx, key, &cached) {
		return cached
	}
	return fallback()
}

func list[T any](ctx context.Context, r *Resolver, kind catalog.Kind, src Source[T], q store.Query, fallback func() []T) []T {
	key := cacheKey(kind)
	items, err := src.List(ctx, q)
	switch {
	case err == nil && len(items) > 0:
		r.remember(ctx, key, items)
		return items
	case err == nil, errors.Is(err, store.ErrNotFound):
		r.forget(ctx, key)
		return fallback()
	}

	r.log.Warn("primary store read failed, trying volatile cache", zap.String("kind", string(kind)), zap.Error(err))
	var cached []T
	if r.recall(ctx, key, &cached) && len(cached) > 0 {
		return cached
	}
	return fallback()
}

func cacheKey(kind catalog.Kind) string { return store.Key("resolve", string(kind)) }

func (r *Resolver) remember(ctx context.Context, key string, v interface{}) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Set(ctx, key, v, r.ttl); err != nil {
		r.log.Debug("volatile cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Resolver) forget(ctx context.Context, key string) {
	if r.cache == nil {
		return
	}
	if err := r.cache.Delete(ctx, key); err != nil {
		r.log.Debug("volatile cache delete failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *Resolver) recall(ctx context.Context, key string, dest interface{}) bool {
	if r.cache == nil {
		return false
	}
	ok, err := r.cache.Get(ctx, key, dest)
	if err != nil {
		r.log.Warn("volatile cache read failed", zap.String("key", key), zap.Error(err))
		return false
	}
	return ok
}
