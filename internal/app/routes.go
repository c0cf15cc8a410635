package app

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/portfolio/internal/config"
	"github.com/mx-space/portfolio/internal/middleware"
	"github.com/mx-space/portfolio/internal/modules/auth"
	"github.com/mx-space/portfolio/internal/modules/content/about"
	"github.com/mx-space/portfolio/internal/modules/content/certificate"
	"github.com/mx-space/portfolio/internal/modules/content/contact"
	"github.com/mx-space/portfolio/internal/modules/content/message"
	"github.com/mx-space/portfolio/internal/modules/content/profile"
	"github.com/mx-space/portfolio/internal/modules/content/project"
	"github.com/mx-space/portfolio/internal/modules/content/resume"
	"github.com/mx-space/portfolio/internal/modules/content/skill"
	"github.com/mx-space/portfolio/internal/modules/upload"
	"github.com/mx-space/portfolio/internal/pkg/imagehost"
	"github.com/mx-space/portfolio/internal/pkg/response"
)

const apiPrefix = "/api"

var appInfo = gin.H{
	"name":    "portfolio-api",
	"version": "1.0.0",
}

func (a *App) registerRoutes() {
	r := a.router
	db := a.db
	log := a.logger

	r.NoRoute(func(c *gin.Context) { response.NotFound(c) })
	r.NoMethod(func(c *gin.Context) { response.MethodNotAllowed(c) })

	if path, ok := localUploadPath(a.cfg.Upload); ok {
		r.Static(path, a.cfg.Upload.Dir)
	}

	api := r.Group(apiPrefix)
	admin := api.Group("/admin", middleware.Auth(a.signer))

	rl := a.cfg.RateLimit
	messageLimit := middleware.RateLimit(a.cache, "messages", rl.Messages, rl.Window, log)
	loginLimit := middleware.RateLimit(a.cache, "login", rl.Login, rl.Window, log)

	api.GET("", func(c *gin.Context) { c.PureJSON(http.StatusOK, appInfo) })
	api.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"data": "pong"}) })
	api.GET("/health", a.health)

	profile.NewHandler(profile.NewService(db, a.resolver)).RegisterRoutes(api, admin)
	about.NewHandler(about.NewService(db, a.resolver, log.Named("about"))).RegisterRoutes(api, admin)
	contact.NewHandler(contact.NewService(db, a.resolver)).RegisterRoutes(api, admin)
	skill.NewHandler(skill.NewService(db, a.resolver)).RegisterRoutes(api, admin)
	certificate.NewHandler(certificate.NewService(db, a.resolver)).RegisterRoutes(api, admin)
	project.NewHandler(project.NewService(db, a.resolver)).RegisterRoutes(api, admin)
	resume.NewHandler(resume.NewService(db, a.resolver, a.uploader, log.Named("resume"))).RegisterRoutes(api, admin)
	message.NewHandler(message.NewService(db)).RegisterRoutes(api, admin, messageLimit)
	upload.NewHandler(a.uploader, log.Named("upload")).RegisterRoutes(admin)
	auth.NewHandler(a.auth, a.signer, a.cfg.TokenTTL).RegisterRoutes(api, admin, loginLimit)
}

// GET /health
func (a *App) health(c *gin.Context) {
	database := "up"
	if !a.pingDB(c.Request.Context()) {
		database = "down"
	}
	cache := "memory"
	if a.rc != nil {
		cache = "redis"
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"database": database,
		"cache":    cache,
		"uptime":   time.Since(a.started).Round(time.Second).String(),
	})
}

func (a *App) pingDB(ctx context.Context) bool {
	if !a.dbReady.Load() {
		return false
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx) == nil
}

// localUploadPath returns the route the local upload dir is served on. A
// public base URL pointing elsewhere means something else serves the files.
func localUploadPath(up config.UploadConfig) (string, bool) {
	if up.Driver != config.UploadLocal && up.Driver != "" {
		return "", false
	}
	base := strings.TrimRight(strings.TrimSpace(up.PublicBaseURL), "/")
	if base == "" {
		return imagehost.DefaultLocalBaseURL, true
	}
	if strings.HasPrefix(base, "/") {
		return base, true
	}
	return "", false
}
