package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "PORTFOLIO_"

// LoadDotEnv loads .env style files into the process environment without
// overriding variables that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *AppConfig, lookup lookupFunc) error {
	get := func(name string) (string, bool) {
		v, ok := lookup(EnvPrefix + name)
		if !ok {
			return "", false
		}
		v = strings.TrimSpace(v)
		return v, v != ""
	}

	if v, ok := get("PORT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sPORT: %w", EnvPrefix, err)
		}
		cfg.Port = n
	}
	if v, ok := get("ENV"); ok {
		cfg.Env = v
	}
	if v, ok := get("JWT_SECRET"); ok {
		cfg.JWTSecret = v
	}
	if v, ok := get("ALLOWED_ORIGINS"); ok {
		cfg.AllowedOrigins = strings.Split(v, ",")
	}
	if v, ok := get("DB_DRIVER"); ok {
		cfg.Database.Driver = v
	}
	if v, ok := get("DB_DSN"); ok {
		cfg.Database.DSN = v
	}
	if v, ok := get("DB_PATH"); ok {
		cfg.Database.Path = v
	}
	if v, ok := get("REDIS_URL"); ok {
		cfg.Redis.URL = v
		cfg.Redis.Enable = true
	}
	if v, ok := get("ADMIN_EMAIL"); ok {
		cfg.Admin.Email = v
	}
	if v, ok := get("ADMIN_PASSWORD"); ok {
		cfg.Admin.Password = v
	}
	if v, ok := get("UPLOAD_DRIVER"); ok {
		cfg.Upload.Driver = v
	}
	if v, ok := get("S3_BUCKET"); ok {
		cfg.Upload.S3.Bucket = v
	}
	if v, ok := get("S3_REGION"); ok {
		cfg.Upload.S3.Region = v
	}
	if v, ok := get("S3_ENDPOINT"); ok {
		cfg.Upload.S3.Endpoint = v
	}
	if v, ok := get("S3_ACCESS_KEY_ID"); ok {
		cfg.Upload.S3.AccessKeyID = v
	}
	if v, ok := get("S3_SECRET_ACCESS_KEY"); ok {
		cfg.Upload.S3.SecretAccessKey = v
	}
	if v, ok := get("LOG_DIR"); ok {
		cfg.Paths.Logs = v
	}
	return nil
}
