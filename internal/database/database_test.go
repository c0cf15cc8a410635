package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/mx-space/portfolio/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func sqliteConfig(path string) *config.AppConfig {
	return &config.AppConfig{
		Env: "test",
		Database: config.DatabaseConfig{
			Driver: config.DriverSQLite,
			Path:   path,
		},
	}
}

func TestConnectMigratesSchema(t *testing.T) {
	db, err := Open(sqliteConfig(filepath.Join(t.TempDir(), "portfolio.db")))
	require.NoError(t, err)

	require.NoError(t, Connect(context.Background(), db, 1, time.Millisecond, zap.NewNop()))

	for _, table := range []string{"profiles", "abouts", "skills", "certificates", "projects", "contacts", "resumes", "messages", "credentials"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
}

func closedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(sqliteConfig(filepath.Join(t.TempDir(), "portfolio.db")))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
	return db
}

func TestConnectGivesUpAfterAttempts(t *testing.T) {
	db := closedDB(t)

	err := Connect(context.Background(), db, 2, time.Millisecond, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "after 2 attempts")
}

func TestConnectStopsOnCancel(t *testing.T) {
	db := closedDB(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Connect(ctx, db, 0, time.Hour, zap.NewNop())
	require.ErrorIs(t, err, context.Canceled)
}
