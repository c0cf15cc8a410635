package config

import "time"

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"

	defaultPort           = 5000
	defaultEnv            = "development"
	defaultDBDriver       = DriverMySQL
	defaultDBHost         = "127.0.0.1"
	defaultDBPort         = 3306
	defaultDBUser         = "root"
	defaultDBPassword     = "password"
	defaultDBName         = "portfolio"
	defaultDBCharset      = "utf8mb4"
	defaultDBLoc          = "Local"
	defaultSQLitePath     = "portfolio.db"
	defaultConnectRetries = 5
	defaultRetryDelay     = 5 * time.Second
	defaultRedisHost      = "localhost"
	defaultRedisPort      = 6379
	defaultTokenTTL       = 24 * time.Hour
	defaultAdminEmail     = "admin@example.com"
	defaultAdminPassword  = "admin123"
	defaultUploadDriver   = UploadLocal
	defaultUploadDir      = "uploads"
	defaultUploadMaxMB    = 10
	defaultMessageLimit   = 5
	defaultLoginLimit     = 10
	defaultLimitWindow    = time.Minute
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	UploadLocal = "local"
	UploadS3    = "s3"
)
