package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads the YAML file at configPath, applies it over the defaults and then
// applies PORTFOLIO_* environment overrides. A missing file is only tolerated
// for the default path, so a container can run from the environment alone.
func Load(configPath string) (*AppConfig, error) {
	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}

	cfg := defaultAppConfig()
	content, err := os.ReadFile(path)
	switch {
	case err == nil:
		raw, err := parse(content)
		if err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
		if err := applyRawAppConfig(&cfg, raw); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && path == DefaultConfigPath:
	default:
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	normalize(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func parse(content []byte) (rawAppConfig, error) {
	raw := rawAppConfig{}
	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return raw, err
	}
	return raw, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		TokenTTL: defaultTokenTTL,
		Database: DatabaseConfig{
			Driver:         defaultDBDriver,
			Host:           defaultDBHost,
			Port:           defaultDBPort,
			User:           defaultDBUser,
			Password:       defaultDBPassword,
			Name:           defaultDBName,
			Charset:        defaultDBCharset,
			Loc:            defaultDBLoc,
			ParseTime:      true,
			Path:           defaultSQLitePath,
			ConnectRetries: defaultConnectRetries,
			RetryDelay:     defaultRetryDelay,
		},
		Redis: RedisConfig{
			Host: defaultRedisHost,
			Port: defaultRedisPort,
		},
		Admin: AdminConfig{
			Email:    defaultAdminEmail,
			Password: defaultAdminPassword,
		},
		Upload: UploadConfig{
			Driver:    defaultUploadDriver,
			Dir:       defaultUploadDir,
			MaxSizeMB: defaultUploadMaxMB,
		},
		RateLimit: RateLimitConfig{
			Messages: defaultMessageLimit,
			Login:    defaultLoginLimit,
			Window:   defaultLimitWindow,
		},
	}
}

func applyRawAppConfig(cfg *AppConfig, raw rawAppConfig) error {
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.Env); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(raw.JWTSecret); v != "" {
		cfg.JWTSecret = v
	}
	if err := setDuration(&cfg.TokenTTL, raw.TokenTTL, "token_ttl"); err != nil {
		return err
	}
	if raw.AllowedOrigins != nil {
		cfg.AllowedOrigins = raw.AllowedOrigins
	}
	if err := applyRawDatabase(&cfg.Database, raw.Database); err != nil {
		return err
	}
	applyRawRedis(&cfg.Redis, raw.Redis)
	if err := setDuration(&cfg.Cache.TTL, raw.Cache.TTL, "cache.ttl"); err != nil {
		return err
	}

	if v := strings.TrimSpace(raw.Admin.Email); v != "" {
		cfg.Admin.Email = v
	}
	if raw.Admin.Password != "" {
		cfg.Admin.Password = raw.Admin.Password
	}
	if raw.Admin.HashPasswords != nil {
		cfg.Admin.HashPasswords = *raw.Admin.HashPasswords
	}

	applyRawUpload(&cfg.Upload, raw.Upload)

	for _, r := range raw.ImageHosts {
		cfg.ImageHosts = append(cfg.ImageHosts, HostRewrite{From: r.From, To: r.To})
	}

	if raw.RateLimit.Messages != nil {
		cfg.RateLimit.Messages = *raw.RateLimit.Messages
	}
	if raw.RateLimit.Login != nil {
		cfg.RateLimit.Login = *raw.RateLimit.Login
	}
	if err := setDuration(&cfg.RateLimit.Window, raw.RateLimit.Window, "rate_limit.window"); err != nil {
		return err
	}

	if v := strings.TrimSpace(raw.Paths.Logs); v != "" {
		cfg.Paths.Logs = v
	}
	return nil
}

func applyRawDatabase(db *DatabaseConfig, raw rawDatabase) error {
	if v := strings.TrimSpace(raw.Driver); v != "" {
		db.Driver = v
	}
	if v := strings.TrimSpace(raw.DSN); v != "" {
		db.DSN = v
	}
	if v := strings.TrimSpace(raw.Host); v != "" {
		db.Host = v
	}
	if raw.Port != 0 {
		db.Port = raw.Port
	}
	if v := strings.TrimSpace(raw.User); v != "" {
		db.User = v
	}
	if raw.Password != "" {
		db.Password = raw.Password
	}
	if v := strings.TrimSpace(raw.Name); v != "" {
		db.Name = v
	}
	if v := strings.TrimSpace(raw.Charset); v != "" {
		db.Charset = v
	}
	if v := strings.TrimSpace(raw.Loc); v != "" {
		db.Loc = v
	}
	if raw.ParseTime != nil {
		db.ParseTime = *raw.ParseTime
	}
	if raw.Params != nil {
		db.Params = raw.Params
	}
	if v := strings.TrimSpace(raw.Path); v != "" {
		db.Path = v
	}
	if raw.ConnectRetries != nil {
		db.ConnectRetries = *raw.ConnectRetries
	}
	return setDuration(&db.RetryDelay, raw.RetryDelay, "database.retry_delay")
}

func applyRawRedis(rc *RedisConfig, raw rawRedis) {
	if raw.Enable != nil {
		rc.Enable = *raw.Enable
	}
	if v := strings.TrimSpace(raw.URL); v != "" {
		rc.URL = v
	}
	if v := strings.TrimSpace(raw.Host); v != "" {
		rc.Host = v
	}
	if raw.Port != 0 {
		rc.Port = raw.Port
	}
	if raw.Password != "" {
		rc.Password = raw.Password
	}
	if raw.DB != nil {
		rc.DB = *raw.DB
	}
}

func applyRawUpload(up *UploadConfig, raw rawUpload) {
	if v := strings.TrimSpace(raw.Driver); v != "" {
		up.Driver = v
	}
	if v := strings.TrimSpace(raw.Dir); v != "" {
		up.Dir = v
	}
	if v := strings.TrimSpace(raw.PublicBaseURL); v != "" {
		up.PublicBaseURL = v
	}
	if raw.MaxSizeMB != 0 {
		up.MaxSizeMB = raw.MaxSizeMB
	}
	s3 := raw.S3
	if v := strings.TrimSpace(s3.Bucket); v != "" {
		up.S3.Bucket = v
	}
	if v := strings.TrimSpace(s3.Region); v != "" {
		up.S3.Region = v
	}
	if v := strings.TrimSpace(s3.Endpoint); v != "" {
		up.S3.Endpoint = v
	}
	if v := strings.TrimSpace(s3.AccessKeyID); v != "" {
		up.S3.AccessKeyID = v
	}
	if v := strings.TrimSpace(s3.SecretAccessKey); v != "" {
		up.S3.SecretAccessKey = v
	}
	if s3.PathStyle != nil {
		up.S3.PathStyle = *s3.PathStyle
	}
	if v := strings.TrimSpace(s3.PublicURL); v != "" {
		up.S3.PublicURL = v
	}
	if v := strings.TrimSpace(s3.Prefix); v != "" {
		up.S3.Prefix = v
	}
}

func setDuration(dst *time.Duration, raw, name string) error {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid %s %q: %w", name, raw, err)
	}
	*dst = d
	return nil
}

func normalize(cfg *AppConfig) {
	cfg.Env = normalizeEnv(cfg.Env)
	cfg.Database.Driver = strings.ToLower(strings.TrimSpace(cfg.Database.Driver))
	cfg.Upload.Driver = strings.ToLower(strings.TrimSpace(cfg.Upload.Driver))
	cfg.Upload.PublicBaseURL = strings.TrimRight(cfg.Upload.PublicBaseURL, "/")
	cfg.Upload.S3.PublicURL = strings.TrimRight(cfg.Upload.S3.PublicURL, "/")
	cfg.Upload.S3.Prefix = strings.Trim(cfg.Upload.S3.Prefix, "/")
	cfg.AllowedOrigins = normalizeOrigins(cfg.AllowedOrigins)

	hosts := cfg.ImageHosts[:0]
	for _, h := range cfg.ImageHosts {
		h.From = strings.ToLower(strings.TrimSpace(h.From))
		h.To = strings.ToLower(strings.TrimSpace(h.To))
		if h.From != "" && h.To != "" && h.From != h.To {
			hosts = append(hosts, h)
		}
	}
	cfg.ImageHosts = hosts
}

func normalizeEnv(env string) string {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "prod", "production":
		return "production"
	case "test":
		return "test"
	default:
		return "development"
	}
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	seen := map[string]struct{}{}
	for _, o := range origins {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o == "" {
			continue
		}
		if _, ok := seen[o]; ok {
			continue
		}
		seen[o] = struct{}{}
		out = append(out, o)
	}
	return out
}

func validateConfig(cfg *AppConfig) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}
	switch cfg.Database.Driver {
	case DriverMySQL:
		if cfg.Database.Port < 1 || cfg.Database.Port > 65535 {
			return fmt.Errorf("invalid database.port %d, expected 1-65535", cfg.Database.Port)
		}
	case DriverSQLite:
	default:
		return fmt.Errorf("unsupported database.driver %q, expected mysql or sqlite", cfg.Database.Driver)
	}
	if cfg.Database.ConnectRetries < 0 {
		return fmt.Errorf("invalid database.connect_retries %d, expected >= 0", cfg.Database.ConnectRetries)
	}
	if cfg.Database.RetryDelay <= 0 {
		return fmt.Errorf("invalid database.retry_delay %s, expected > 0", cfg.Database.RetryDelay)
	}
	if cfg.Redis.DB < 0 {
		return fmt.Errorf("invalid redis.db %d, expected >= 0", cfg.Redis.DB)
	}
	if cfg.TokenTTL <= 0 {
		return fmt.Errorf("invalid token_ttl %s, expected > 0", cfg.TokenTTL)
	}
	if strings.TrimSpace(cfg.Admin.Email) == "" || cfg.Admin.Password == "" {
		return errors.New("admin.email and admin.password are required")
	}
	switch cfg.Upload.Driver {
	case UploadLocal:
	case UploadS3:
		s3 := cfg.Upload.S3
		if s3.Bucket == "" || s3.Region == "" || s3.AccessKeyID == "" || s3.SecretAccessKey == "" {
			return errors.New("upload.s3: bucket/region/access_key_id/secret_access_key are required")
		}
	default:
		return fmt.Errorf("unsupported upload.driver %q, expected local or s3", cfg.Upload.Driver)
	}
	from := map[string]struct{}{}
	for _, h := range cfg.ImageHosts {
		from[h.From] = struct{}{}
	}
	for _, h := range cfg.ImageHosts {
		if _, ok := from[h.To]; ok {
			return fmt.Errorf("image_hosts: %q is both a source and a target", h.To)
		}
	}
	return nil
}
