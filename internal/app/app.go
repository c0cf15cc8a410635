package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/database"
	"github.com/mx-space/portfolio/internal/middleware"
	"github.com/mx-space/portfolio/internal/modules/auth"
	"github.com/mx-space/portfolio/internal/modules/normalize"
	"github.com/mx-space/portfolio/internal/modules/resolve"
	"github.com/mx-space/portfolio/internal/pkg/imagehost"
	"github.com/mx-space/portfolio/internal/pkg/jwt"
	pkgredis "github.com/mx-space/portfolio/internal/pkg/redis"
	"github.com/mx-space/portfolio/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App holds all application dependencies.
type App struct {
	cfg      *config.AppConfig
	router   *gin.Engine
	db       *gorm.DB
	cache    store.VolatileCache
	rc       *pkgredis.Client
	signer   *jwt.Signer
	resolver *resolve.Resolver
	uploader *imagehost.Uploader
	auth     *auth.Service
	logger   *zap.Logger
	cancel   context.CancelFunc
	dbReady  atomic.Bool
	started  time.Time
}

// New initializes the application: config → DB → cache → routes. The
// database is connected in the background; until it answers, reads are
// served from the cache tier and the catalog.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &App{cfg: cfg, db: db, logger: logger, cancel: cancel, started: time.Now()}

	a.cache = a.openCache()
	a.signer = jwt.NewSigner(cfg.JWTSecret)
	if cfg.JWTSecret == "" {
		logger.Warn("jwt_secret is empty, using built-in default secret")
	}
	a.resolver = resolve.New(resolve.NewSources(db), a.cache, logger.Named("resolve"),
		resolve.WithCacheTTL(cfg.Cache.TTL),
		resolve.WithHostRewriter(normalize.NewHostRewriter(cfg.ImageHosts)),
	)
	a.uploader, err = imagehost.FromConfig(ctx, cfg.Upload)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("upload: %w", err)
	}
	a.auth = auth.NewService(db, a.cache, cfg.Admin, logger.Named("auth"))

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))
	router.Use(cors.New(corsConfig(cfg)))
	a.router = router
	a.registerRoutes()

	go a.connect(ctx)
	return a, nil
}

// connect retries the database with a fixed delay, then creates the admin
// credentials if the store has none.
func (a *App) connect(ctx context.Context) {
	dbc := a.cfg.Database
	if err := database.Connect(ctx, a.db, dbc.ConnectRetries, dbc.RetryDelay, a.logger); err != nil {
		if !errors.Is(err, context.Canceled) {
			a.logger.Error("database unavailable, serving fallback content", zap.Error(err))
		}
		return
	}
	a.dbReady.Store(true)
	a.logger.Info("database connected", zap.String("driver", dbc.Driver))

	if created, err := a.auth.EnsureCredentials(ctx); err != nil {
		a.logger.Warn("ensure admin credentials failed", zap.Error(err))
	} else if created {
		a.logger.Warn("admin credentials created from config, rotate the password")
	}
}

func (a *App) openCache() store.VolatileCache {
	if a.cfg.Redis.Enable {
		rc, err := pkgredis.Connect(a.cfg.Redis.URLValue())
		if err == nil {
			a.rc = rc
			a.logger.Info("using redis cache tier")
			return store.NewRedisCache(rc)
		}
		a.logger.Warn("redis unavailable, using in-memory cache tier", zap.Error(err))
	}
	return store.NewMemoryCache(10 * time.Minute)
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Shutdown stops the connect loop and releases connections.
func (a *App) Shutdown() {
	a.cancel()
	if a.rc != nil {
		_ = a.rc.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
