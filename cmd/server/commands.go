package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mx-space/portfolio/internal/app"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/database"
	"github.com/mx-space/portfolio/internal/modules/auth"
	"github.com/mx-space/portfolio/internal/modules/legacy"
	"github.com/mx-space/portfolio/internal/modules/seed"
	"github.com/mx-space/portfolio/internal/pkg/nativelog"
	"github.com/mx-space/portfolio/internal/store"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	configPath string
	envFiles   []string

	seedReset bool

	mongoURI string
	mongoDB  string
)

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Portfolio content API",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var serverCmd = &cobra.Command{
	Use:     "server",
	Aliases: []string{"serve"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the demo content into empty tables",
	Long: `Write the demo content set into every content table that is empty, then
create the admin credentials from config if none exist.

Examples:
  portfolio seed            # fill empty tables only
  portfolio seed --reset    # replace existing content with the demo set`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSeed(cmd.Context())
	},
}

var importCmd = &cobra.Command{
	Use:   "import-legacy",
	Short: "Import content from the legacy MongoDB database",
	Long: `Copy every collection of the legacy MongoDB database into the SQL store.
Document ids are kept, so running the import again overwrites instead of
duplicating.

Example:
  portfolio import-legacy --mongo-uri mongodb://localhost:27017 --mongo-db portfolio`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runImport(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultConfigPath, "Path to YAML config file")
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "Dotenv files loaded before the config")

	seedCmd.Flags().BoolVar(&seedReset, "reset", false, "Remove existing content rows first")

	importCmd.Flags().StringVar(&mongoURI, "mongo-uri", "", "MongoDB connection URI")
	importCmd.Flags().StringVar(&mongoDB, "mongo-db", "", "MongoDB database name")
	_ = importCmd.MarkFlagRequired("mongo-uri")
	_ = importCmd.MarkFlagRequired("mongo-db")

	rootCmd.AddCommand(serverCmd, seedCmd, importCmd)
}

// bootstrap loads the environment and config and builds the logger.
func bootstrap() (*config.AppConfig, *zap.Logger, error) {
	if err := config.LoadDotEnv(envFiles...); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	logger, err := nativelog.NewZapLogger(nativelog.ResolveDir(cfg.Paths.Logs), cfg.IsDev())
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("native log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}
	return cfg, logger, nil
}

func runServer() error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	application, err := app.New(logger, cfg)
	if err != nil {
		return fmt.Errorf("initialize app: %w", err)
	}

	srv := &http.Server{
		Addr:              application.Addr(),
		Handler:           application.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", zap.String("addr", srv.Addr), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
	case err := <-errCh:
		application.Shutdown()
		return fmt.Errorf("server error: %w", err)
	}

	logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err = srv.Shutdown(ctx)
	application.Shutdown()
	if err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	logger.Info("server exited")
	return nil
}

// openStore connects synchronously; one-shot commands have nothing to serve
// while the database is down.
func openStore(ctx context.Context, cfg *config.AppConfig, logger *zap.Logger) (*gorm.DB, error) {
	db, err := database.Open(cfg)
	if err != nil {
		return nil, err
	}
	attempts := cfg.Database.ConnectRetries
	if attempts <= 0 {
		attempts = 1
	}
	if err := database.Connect(ctx, db, attempts, cfg.Database.RetryDelay, logger); err != nil {
		return nil, err
	}
	return db, nil
}

func closeStore(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func runSeed(ctx context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore(db)

	creds := auth.NewService(db, store.NewMemoryCache(time.Minute), cfg.Admin, logger.Named("auth"))
	res, err := seed.New(db, creds, logger.Named("seed")).Run(ctx, seed.Options{Reset: seedReset})
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	logger.Info("seed finished", zap.Any("rows", map[string]int(res)))
	return nil
}

func runImport(ctx context.Context) error {
	cfg, logger, err := bootstrap()
	if err != nil {
		return err
	}
	defer logger.Sync()

	db, err := openStore(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore(db)

	client, err := legacy.Connect(ctx, mongoURI)
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	report, err := legacy.NewImporter(db, logger.Named("legacy")).Run(ctx, client.Database(mongoDB))
	if err != nil {
		return err
	}
	logger.Info("legacy import finished", zap.Any("documents", map[string]int(report)))
	return nil
}
