// Package config loads donorsync configuration from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	Database  DatabaseConfig
	Auth      AuthConfig
	Processor ProcessorConfig
	Sync      SyncConfig
	Archive   ArchiveConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds database connection configuration
type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	ConnMaxLifetime time.Duration
	MaxOpenConns    int
	MaxIdleConns    int
}

// AuthConfig holds staff session verification settings
type AuthConfig struct {
	SessionSecret string
	SessionCookie string
}

// ProcessorConfig holds the payment processor endpoint and credentials.
// Credentials have no defaults; at least one set must be supplied.
type ProcessorConfig struct {
	BaseURL           string
	SearchPath        string
	APIToken          string
	PublicKey         string
	PrivateKey        string
	AccessKeyID       string
	SecretAccessKey   string
	SigningRegion     string
	SigningService    string
	OAuthClientID     string
	OAuthClientSecret string
	OAuthTokenURL     string
	OAuthScopes       []string
	RequestTimeout    time.Duration
	PageSize          int
}

// SyncConfig holds sync engine and scheduler limits
type SyncConfig struct {
	JobName           string
	Timeout           time.Duration
	MaxPages          int
	LookbackDays      int
	OverlapDays       int
	MaxReportedErrors int
	SchedulerEnabled  bool
}

// ArchiveConfig holds the optional S3 destination for sync run reports
type ArchiveConfig struct {
	Bucket string
	Prefix string
	Region string
}

// LoggerConfig holds logging configuration
type LoggerConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// Load loads configuration from environment variables, falling back to the
// YAML file named by DONORSYNC_CONFIG and then to defaults.
func Load() (*Config, error) {
	src, err := newSource()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            src.getEnv("PORT", "8080"),
			ReadTimeout:     src.getEnvAsDuration("SERVER_READ_TIMEOUT", "15s"),
			WriteTimeout:    src.getEnvAsDuration("SERVER_WRITE_TIMEOUT", "15m"),
			IdleTimeout:     src.getEnvAsDuration("SERVER_IDLE_TIMEOUT", "60s"),
			ShutdownTimeout: src.getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", "30s"),
		},
		Database: loadDatabase(src),
		Auth: AuthConfig{
			SessionSecret: src.getEnv("SESSION_SECRET", ""),
			SessionCookie: src.getEnv("SESSION_COOKIE", "donorsync_session"),
		},
		Processor: ProcessorConfig{
			BaseURL:           src.getEnv("PROCESSOR_BASE_URL", ""),
			SearchPath:        src.getEnv("PROCESSOR_SEARCH_PATH", "/api/v1/transactions/search"),
			APIToken:          src.getEnv("PROCESSOR_API_TOKEN", ""),
			PublicKey:         src.getEnv("PROCESSOR_PUBLIC_KEY", ""),
			PrivateKey:        src.getEnv("PROCESSOR_PRIVATE_KEY", ""),
			AccessKeyID:       src.getEnv("PROCESSOR_ACCESS_KEY_ID", ""),
			SecretAccessKey:   src.getEnv("PROCESSOR_SECRET_ACCESS_KEY", ""),
			SigningRegion:     src.getEnv("PROCESSOR_SIGNING_REGION", "us-east-1"),
			SigningService:    src.getEnv("PROCESSOR_SIGNING_SERVICE", "execute-api"),
			OAuthClientID:     src.getEnv("PROCESSOR_OAUTH_CLIENT_ID", ""),
			OAuthClientSecret: src.getEnv("PROCESSOR_OAUTH_CLIENT_SECRET", ""),
			OAuthTokenURL:     src.getEnv("PROCESSOR_OAUTH_TOKEN_URL", ""),
			OAuthScopes:       src.getEnvAsList("PROCESSOR_OAUTH_SCOPES"),
			RequestTimeout:    src.getEnvAsDuration("PROCESSOR_REQUEST_TIMEOUT", "30s"),
			PageSize:          src.getEnvAsInt("PROCESSOR_PAGE_SIZE", 100),
		},
		Sync: SyncConfig{
			JobName:           src.getEnv("SYNC_JOB_NAME", "processor_transactions"),
			Timeout:           src.getEnvAsDuration("SYNC_TIMEOUT", "30m"),
			MaxPages:          src.getEnvAsInt("SYNC_MAX_PAGES", 100),
			LookbackDays:      src.getEnvAsInt("SYNC_LOOKBACK_DAYS", 7),
			OverlapDays:       src.getEnvAsInt("SYNC_OVERLAP_DAYS", 1),
			MaxReportedErrors: src.getEnvAsInt("SYNC_MAX_REPORTED_ERRORS", 10),
			SchedulerEnabled:  src.getEnvAsBool("SYNC_SCHEDULER_ENABLED", true),
		},
		Archive: ArchiveConfig{
			Bucket: src.getEnv("ARCHIVE_BUCKET", ""),
			Prefix: src.getEnv("ARCHIVE_PREFIX", "sync-reports"),
			Region: src.getEnv("AWS_REGION", "us-east-1"),
		},
		Logger: LoggerConfig{
			Level:  src.getEnv("LOG_LEVEL", "info"),
			Format: src.getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// LoadDatabase loads only the database section. It is used by tooling and
// tests that need a connection without processor credentials.
func LoadDatabase() (DatabaseConfig, error) {
	src, err := newSource()
	if err != nil {
		return DatabaseConfig{}, err
	}
	return loadDatabase(src), nil
}

func loadDatabase(src source) DatabaseConfig {
	return DatabaseConfig{
		Host:            src.getEnv("DB_HOST", "localhost"),
		Port:            src.getEnv("DB_PORT", "5432"),
		User:            src.getEnv("DB_USER", "postgres"),
		Password:        src.getEnv("DB_PASSWORD", "postgres"),
		DBName:          src.getEnv("DB_NAME", "donorsync"),
		SSLMode:         src.getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns:    src.getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    src.getEnvAsInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: src.getEnvAsDuration("DB_CONN_MAX_LIFETIME", "5m"),
	}
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port cannot be empty")
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host cannot be empty")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("database name cannot be empty")
	}

	if len(c.Auth.SessionSecret) < 32 {
		return fmt.Errorf("SESSION_SECRET must be at least 32 characters")
	}

	if err := c.Processor.Validate(); err != nil {
		return err
	}

	if c.Sync.JobName == "" {
		return fmt.Errorf("sync job name cannot be empty")
	}
	if c.Sync.MaxPages < 1 {
		return fmt.Errorf("sync max pages must be at least 1, got %d", c.Sync.MaxPages)
	}
	if c.Sync.LookbackDays < 1 {
		return fmt.Errorf("sync lookback days must be at least 1, got %d", c.Sync.LookbackDays)
	}
	if c.Sync.OverlapDays < 0 {
		return fmt.Errorf("sync overlap days cannot be negative")
	}
	if c.Sync.Timeout <= 0 {
		return fmt.Errorf("sync timeout must be positive")
	}
	if c.Sync.MaxReportedErrors < 1 {
		return fmt.Errorf("sync max reported errors must be at least 1")
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}
	if c.Logger.Format != "json" && c.Logger.Format != "text" {
		return fmt.Errorf("invalid log format: %s (must be json or text)", c.Logger.Format)
	}

	return nil
}

// Validate checks the processor endpoint and that some credential is present
func (p *ProcessorConfig) Validate() error {
	if p.BaseURL == "" {
		return fmt.Errorf("PROCESSOR_BASE_URL is required")
	}
	u, err := url.Parse(p.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid PROCESSOR_BASE_URL: %q", p.BaseURL)
	}
	if !strings.HasPrefix(p.SearchPath, "/") {
		return fmt.Errorf("processor search path must start with /, got %q", p.SearchPath)
	}
	if !p.HasCredentials() {
		return fmt.Errorf("no processor credentials configured: set PROCESSOR_API_TOKEN, a key pair, signing keys or OAuth client credentials")
	}
	if (p.PublicKey == "") != (p.PrivateKey == "") {
		return fmt.Errorf("PROCESSOR_PUBLIC_KEY and PROCESSOR_PRIVATE_KEY must be set together")
	}
	if (p.AccessKeyID == "") != (p.SecretAccessKey == "") {
		return fmt.Errorf("PROCESSOR_ACCESS_KEY_ID and PROCESSOR_SECRET_ACCESS_KEY must be set together")
	}
	if p.OAuthClientID != "" && (p.OAuthClientSecret == "" || p.OAuthTokenURL == "") {
		return fmt.Errorf("OAuth client credentials require PROCESSOR_OAUTH_CLIENT_SECRET and PROCESSOR_OAUTH_TOKEN_URL")
	}
	if p.PageSize < 1 || p.PageSize > 1000 {
		return fmt.Errorf("processor page size must be between 1 and 1000, got %d", p.PageSize)
	}
	if p.RequestTimeout <= 0 {
		return fmt.Errorf("processor request timeout must be positive")
	}
	return nil
}

// HasCredentials reports whether any authentication scheme can be attempted
func (p *ProcessorConfig) HasCredentials() bool {
	return p.APIToken != "" ||
		(p.PublicKey != "" && p.PrivateKey != "") ||
		(p.AccessKeyID != "" && p.SecretAccessKey != "") ||
		p.OAuthClientID != ""
}

// DSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}
