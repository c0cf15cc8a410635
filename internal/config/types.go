package config

import "time"

// AppConfig holds runtime startup configuration loaded from YAML and the environment.
type AppConfig struct {
	Port           int
	Env            string
	JWTSecret      string
	TokenTTL       time.Duration
	AllowedOrigins []string
	Database       DatabaseConfig
	Redis          RedisConfig
	Cache          CacheConfig
	Admin          AdminConfig
	Upload         UploadConfig
	ImageHosts     []HostRewrite
	RateLimit      RateLimitConfig
	Paths          PathsConfig
}

// IsDev reports whether the server runs in development mode.
func (c *AppConfig) IsDev() bool { return c.Env == "development" }

type DatabaseConfig struct {
	Driver    string
	DSN       string
	Host      string
	Port      int
	User      string
	Password  string
	Name      string
	Charset   string
	Loc       string
	ParseTime bool
	Params    map[string]string
	// Path is the sqlite database file.
	Path string
	// ConnectRetries caps boot-time connection attempts; 0 keeps retrying in the background.
	ConnectRetries int
	RetryDelay     time.Duration
}

type RedisConfig struct {
	Enable   bool
	URL      string
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	// TTL bounds how long last-known-good records are kept; 0 keeps them until replaced.
	TTL time.Duration
}

// AdminConfig seeds the admin credentials when the store has none and serves
// as the last login fallback while the store is unreachable.
type AdminConfig struct {
	Email         string
	Password      string
	HashPasswords bool
}

type UploadConfig struct {
	Driver        string
	Dir           string
	PublicBaseURL string
	MaxSizeMB     int
	S3            S3Config
}

type S3Config struct {
	Bucket          string
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	PathStyle       bool
	PublicURL       string
	Prefix          string
}

// HostRewrite replaces the host of stored image URLs that point at a retired host.
type HostRewrite struct {
	From string
	To   string
}

type RateLimitConfig struct {
	Messages int
	Login    int
	Window   time.Duration
}

type PathsConfig struct {
	Logs string
}

type rawAppConfig struct {
	Port           int              `yaml:"port"`
	Env            string           `yaml:"env"`
	JWTSecret      string           `yaml:"jwt_secret"`
	TokenTTL       string           `yaml:"token_ttl"`
	AllowedOrigins []string         `yaml:"allowed_origins"`
	Database       rawDatabase      `yaml:"database"`
	Redis          rawRedis         `yaml:"redis"`
	Cache          rawCache         `yaml:"cache"`
	Admin          rawAdmin         `yaml:"admin"`
	Upload         rawUpload        `yaml:"upload"`
	ImageHosts     []rawHostRewrite `yaml:"image_hosts"`
	RateLimit      rawRateLimit     `yaml:"rate_limit"`
	Paths          rawPaths         `yaml:"paths"`
}

type rawDatabase struct {
	Driver         string            `yaml:"driver"`
	DSN            string            `yaml:"dsn"`
	Host           string            `yaml:"host"`
	Port           int               `yaml:"port"`
	User           string            `yaml:"user"`
	Password       string            `yaml:"password"`
	Name           string            `yaml:"name"`
	Charset        string            `yaml:"charset"`
	Loc            string            `yaml:"loc"`
	ParseTime      *bool             `yaml:"parse_time"`
	Params         map[string]string `yaml:"params"`
	Path           string            `yaml:"path"`
	ConnectRetries *int              `yaml:"connect_retries"`
	RetryDelay     string            `yaml:"retry_delay"`
}

type rawRedis struct {
	Enable   *bool  `yaml:"enable"`
	URL      string `yaml:"url"`
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Password string `yaml:"password"`
	DB       *int   `yaml:"db"`
}

type rawCache struct {
	TTL string `yaml:"ttl"`
}

type rawAdmin struct {
	Email         string `yaml:"email"`
	Password      string `yaml:"password"`
	HashPasswords *bool  `yaml:"hash_passwords"`
}

type rawUpload struct {
	Driver        string `yaml:"driver"`
	Dir           string `yaml:"dir"`
	PublicBaseURL string `yaml:"public_base_url"`
	MaxSizeMB     int    `yaml:"max_size_mb"`
	S3            rawS3  `yaml:"s3"`
}

type rawS3 struct {
	Bucket          string `yaml:"bucket"`
	Region          string `yaml:"region"`
	Endpoint        string `yaml:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key"`
	PathStyle       *bool  `yaml:"path_style"`
	PublicURL       string `yaml:"public_url"`
	Prefix          string `yaml:"prefix"`
}

type rawHostRewrite struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

type rawRateLimit struct {
	Messages *int   `yaml:"messages"`
	Login    *int   `yaml:"login"`
	Window   string `yaml:"window"`
}

type rawPaths struct {
	Logs string `yaml:"logs"`
}
