// Package seed writes the demo content set into an empty database.
package seed

import (
	"context"
	"fmt"

	"github.com/mx-space/portfolio/internal/models"
	"github.com/mx-space/portfolio/internal/modules/catalog"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CredentialsEnsurer creates the admin login when none exists.
type CredentialsEnsurer interface {
	EnsureCredentials(ctx context.Context) (bool, error)
}

type Options struct {
	// Reset removes existing content rows before writing the demo set.
	// Messages, resumes and credentials are never touched.
	Reset bool
}

// Result reports how many rows were written per table.
type Result map[string]int

type Seeder struct {
	db    *gorm.DB
	creds CredentialsEnsurer
	log   *zap.Logger
}

func New(db *gorm.DB, creds CredentialsEnsurer, log *zap.Logger) *Seeder {
	if log == nil {
		log = zap.NewNop()
	}
	return &Seeder{db: db, creds: creds, log: log}
}

// Run writes every demo entity whose table is empty (or was reset). Tables
// that already hold rows are left alone.
func (s *Seeder) Run(ctx context.Context, opts Options) (Result, error) {
	demo := catalog.Demo()
	res := Result{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		steps := []struct {
			table string
			model interface{}
			rows  func() interface{}
			n     int
		}{
			{"profiles", &models.ProfileModel{}, func() interface{} { return []models.ProfileModel{*demo.Profile} }, 1},
			{"abouts", &models.AboutModel{}, func() interface{} { return []models.AboutModel{*demo.About} }, 1},
			{"contacts", &models.ContactModel{}, func() interface{} {
				c := *demo.Contact
				c.IsActive = true
				return []models.ContactModel{c}
			}, 1},
			{"skills", &models.SkillModel{}, func() interface{} { return demo.Skills }, len(demo.Skills)},
			{"certificates", &models.CertificateModel{}, func() interface{} { return demo.Certificates }, len(demo.Certificates)},
			{"projects", &models.ProjectModel{}, func() interface{} { return syncProjects(demo.Projects) }, len(demo.Projects)},
		}
		for _, step := range steps {
			if opts.Reset {
				if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(step.model).Error; err != nil {
					return fmt.Errorf("reset %s: %w", step.table, store.Classify(err))
				}
			}
			var count int64
			if err := tx.Model(step.model).Count(&count).Error; err != nil {
				return fmt.Errorf("count %s: %w", step.table, store.Classify(err))
			}
			if count > 0 || step.n == 0 {
				s.log.Info("seed skipped", zap.String("table", step.table), zap.Int64("existing", count))
				continue
			}
			if err := tx.Create(step.rows()).Error; err != nil {
				return fmt.Errorf("seed %s: %w", step.table, store.Classify(err))
			}
			res[step.table] = step.n
			s.log.Info("seeded", zap.String("table", step.table), zap.Int("rows", step.n))
		}
		return nil
	})
	if err != nil {
		return res, err
	}

	if s.creds != nil {
		created, err := s.creds.EnsureCredentials(ctx)
		if err != nil {
			return res, fmt.Errorf("ensure credentials: %w", err)
		}
		if created {
			res["credentials"] = 1
		}
	}
	return res, nil
}

func syncProjects(in []models.ProjectModel) []models.ProjectModel {
	out := make([]models.ProjectModel, len(in))
	for i, p := range in {
		p.SyncAliases()
		out[i] = p
	}
	return out
}
