package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/models"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open returns a GORM handle without touching the network. Queries fail with
// a store-unavailable error until the server is reachable.
func Open(cfg *config.AppConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Database.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.Database.DSNValue())
	case config.DriverMySQL:
		dialector = mysql.New(mysql.Config{
			DSN:                       cfg.Database.DSNValue(),
			DefaultStringSize:         191,
			SkipInitializeWithVersion: true,
		})
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:               logger.Default.LogMode(resolveLogLevel(cfg)),
		TranslateError:       true,
		DisableAutomaticPing: true,
	})
	if err != nil {
		return nil, fmt.Errorf("database open failed: %w", err)
	}
	return db, nil
}

// Connect pings db until it answers, waiting delay between attempts. attempts
// <= 0 retries until ctx is cancelled. On success the schema is migrated.
func Connect(ctx context.Context, db *gorm.DB, attempts int, delay time.Duration, log *zap.Logger) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("resolve sql db: %w", err)
	}

	for attempt := 1; ; attempt++ {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = sqlDB.PingContext(pingCtx)
		cancel()
		if err == nil {
			break
		}
		if attempts > 0 && attempt >= attempts {
			return fmt.Errorf("database unreachable after %d attempts: %w", attempt, err)
		}
		log.Warn("database not reachable, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		select {
		case <-ctx.Done():
			return errors.Join(ctx.Err(), err)
		case <-time.After(delay):
		}
	}

	if err := Migrate(db); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	log.Info("database connected")
	return nil
}

// Migrate runs GORM auto-migration for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(models.All()...)
}

func resolveLogLevel(cfg *config.AppConfig) logger.LogLevel {
	if cfg.IsDev() {
		return logger.Info
	}
	return logger.Warn
}
