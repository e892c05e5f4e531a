package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	DB        DBConfig
	JWT       JWTConfig
	S3        S3Config
	Log       LogConfig
	CORS      CORSConfig
	Queue     QueueConfig
	Email     EmailConfig
	Extractor ExtractorConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret             string        `mapstructure:"secret"`
	AccessTokenExpiry  time.Duration `mapstructure:"access_expiry"`
	RefreshTokenExpiry time.Duration `mapstructure:"refresh_expiry"`
	Issuer             string        `mapstructure:"issuer"`
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
	ShareExpiry   int64  `mapstructure:"share_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// QueueConfig holds extraction queue worker settings.
type QueueConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
}

// EmailConfig holds email delivery settings for export sharing.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
}

// ProviderConfig holds settings for a single vision-model provider.
type ProviderConfig struct {
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// ExtractorConfig holds the primary and backup vision-model providers.
// An empty backup API key means provider fallback is unconfigured.
type ExtractorConfig struct {
	Primary ProviderConfig `mapstructure:"primary"`
	Backup  ProviderConfig `mapstructure:"backup"`
}

// Load reads configuration from environment variables with the DOCKLOGGER_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCKLOGGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "docklogger")
	v.SetDefault("db.password", "docklogger_secret")
	v.SetDefault("db.name", "docklogger_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "docklogger")

	// S3 defaults
	v.SetDefault("s3.region", "us-west-2")
	v.SetDefault("s3.bucket", "docklogger-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 25)
	v.SetDefault("s3.share_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (capacitor + localhost origins for development)
	v.SetDefault("cors.allowed_origins", "capacitor://localhost,http://localhost,http://localhost:3000,http://127.0.0.1:3000")

	// Queue defaults
	v.SetDefault("queue.poll_interval_secs", 10)
	v.SetDefault("queue.max_retries", 3)
	v.SetDefault("queue.concurrency", 3)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-west-2")
	v.SetDefault("email.from_address", "noreply@docklogger.app")
	v.SetDefault("email.from_name", "DockLogger")

	// Extractor defaults
	v.SetDefault("extractor.primary.api_key", "")
	v.SetDefault("extractor.primary.model", "claude-sonnet-4-20250514")
	v.SetDefault("extractor.primary.timeout_secs", 120)
	v.SetDefault("extractor.backup.api_key", "")
	v.SetDefault("extractor.backup.model", "gemini-2.0-flash")
	v.SetDefault("extractor.backup.timeout_secs", 120)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                    "DOCKLOGGER_SERVER_PORT",
		"server.read_timeout":            "DOCKLOGGER_SERVER_READ_TIMEOUT",
		"server.write_timeout":           "DOCKLOGGER_SERVER_WRITE_TIMEOUT",
		"server.environment":             "DOCKLOGGER_SERVER_ENVIRONMENT",
		"db.host":                        "DOCKLOGGER_DB_HOST",
		"db.port":                        "DOCKLOGGER_DB_PORT",
		"db.user":                        "DOCKLOGGER_DB_USER",
		"db.password":                    "DOCKLOGGER_DB_PASSWORD",
		"db.name":                        "DOCKLOGGER_DB_NAME",
		"db.sslmode":                     "DOCKLOGGER_DB_SSLMODE",
		"db.max_open":                    "DOCKLOGGER_DB_MAX_OPEN",
		"db.max_idle":                    "DOCKLOGGER_DB_MAX_IDLE",
		"jwt.secret":                     "DOCKLOGGER_JWT_SECRET",
		"jwt.access_expiry":              "DOCKLOGGER_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":             "DOCKLOGGER_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                     "DOCKLOGGER_JWT_ISSUER",
		"s3.region":                      "DOCKLOGGER_S3_REGION",
		"s3.bucket":                      "DOCKLOGGER_S3_BUCKET",
		"s3.endpoint":                    "DOCKLOGGER_S3_ENDPOINT",
		"s3.access_key":                  "DOCKLOGGER_S3_ACCESS_KEY",
		"s3.secret_key":                  "DOCKLOGGER_S3_SECRET_KEY",
		"s3.max_file_size_mb":            "DOCKLOGGER_S3_MAX_FILE_SIZE_MB",
		"s3.share_expiry":                "DOCKLOGGER_S3_SHARE_EXPIRY",
		"log.level":                      "DOCKLOGGER_LOG_LEVEL",
		"log.format":                     "DOCKLOGGER_LOG_FORMAT",
		"cors.allowed_origins":           "DOCKLOGGER_CORS_ALLOWED_ORIGINS",
		"queue.poll_interval_secs":       "DOCKLOGGER_QUEUE_POLL_INTERVAL_SECS",
		"queue.max_retries":              "DOCKLOGGER_QUEUE_MAX_RETRIES",
		"queue.concurrency":              "DOCKLOGGER_QUEUE_CONCURRENCY",
		"email.provider":                 "DOCKLOGGER_EMAIL_PROVIDER",
		"email.region":                   "DOCKLOGGER_EMAIL_REGION",
		"email.from_address":             "DOCKLOGGER_EMAIL_FROM_ADDRESS",
		"email.from_name":                "DOCKLOGGER_EMAIL_FROM_NAME",
		"extractor.primary.api_key":      "DOCKLOGGER_EXTRACTOR_PRIMARY_API_KEY",
		"extractor.primary.model":        "DOCKLOGGER_EXTRACTOR_PRIMARY_MODEL",
		"extractor.primary.timeout_secs": "DOCKLOGGER_EXTRACTOR_PRIMARY_TIMEOUT_SECS",
		"extractor.backup.api_key":       "DOCKLOGGER_EXTRACTOR_BACKUP_API_KEY",
		"extractor.backup.model":         "DOCKLOGGER_EXTRACTOR_BACKUP_MODEL",
		"extractor.backup.timeout_secs":  "DOCKLOGGER_EXTRACTOR_BACKUP_TIMEOUT_SECS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCKLOGGER_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCKLOGGER_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:             v.GetString("jwt.secret"),
		AccessTokenExpiry:  v.GetDuration("jwt.access_expiry"),
		RefreshTokenExpiry: v.GetDuration("jwt.refresh_expiry"),
		Issuer:             v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
		ShareExpiry:   v.GetInt64("s3.share_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	cfg.Queue = QueueConfig{
		PollIntervalSecs: v.GetInt("queue.poll_interval_secs"),
		MaxRetries:       v.GetInt("queue.max_retries"),
		Concurrency:      v.GetInt("queue.concurrency"),
	}

	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
	}

	cfg.Extractor = ExtractorConfig{
		Primary: ProviderConfig{
			APIKey:      v.GetString("extractor.primary.api_key"),
			Model:       v.GetString("extractor.primary.model"),
			TimeoutSecs: v.GetInt("extractor.primary.timeout_secs"),
		},
		Backup: ProviderConfig{
			APIKey:      v.GetString("extractor.backup.api_key"),
			Model:       v.GetString("extractor.backup.model"),
			TimeoutSecs: v.GetInt("extractor.backup.timeout_secs"),
		},
	}

	return cfg, nil
}
