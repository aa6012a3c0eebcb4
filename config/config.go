package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// PostgreSQL - Health records, report export ledger
	Postgres PostgresConfig

	// Redis - Rate limiting
	Redis RedisConfig

	// MinIO - Report artifact storage
	MinIO MinIOConfig

	// Kafka - Report lifecycle events
	Kafka KafkaConfig

	// JWT - Authentication
	JWT JWTConfig

	// Report - Link lifecycle settings
	Report ReportConfig

	// Resend - Transactional email
	Resend ResendConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string
}

// KafkaConfig is the configuration for Kafka
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// RedisConfig is the configuration for Redis
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// MinIOConfig is the configuration for MinIO
type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
	Bucket    string
}

// JWTConfig is used to verify tokens (same secret/issuer as auth service). This service does not issue tokens.
type JWTConfig struct {
	Algorithm string
	Issuer    string
	Audience  []string
	SecretKey string
	TTL       int // in seconds
}

// HTTPServerConfig is the configuration for the HTTP server
type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// PostgresConfig is the configuration for Postgres
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	Schema   string
}

// ReportConfig controls the report link lifecycle.
type ReportConfig struct {
	// BaseURL is the public base URL tokenized links are built on.
	BaseURL string
	// LinkTTLSeconds is how long an emailed link stays valid.
	LinkTTLSeconds int
	// SignedURLTTLSeconds is the presigned artifact URL validity.
	SignedURLTTLSeconds int
	// DevReturnLink echoes the raw link in the issue response. Development only.
	DevReturnLink bool
	// PDFCommand is the external HTML-to-PDF converter binary.
	PDFCommand string
	// ResolveRateLimit is max public resolve requests per IP per minute. 0 disables.
	ResolveRateLimit int
}

// ResendConfig is the configuration for the Resend email API.
type ResendConfig struct {
	APIKey    string
	FromEmail string
	BaseURL   string
}

type DiscordConfig struct {
	WebhookID    string
	WebhookToken string
}

// Load loads configuration using Viper
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("lungtracker-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/lungtracker/")

	// Enable environment variable override
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults()

	// Read config file (optional - will use env vars if file not found)
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// PostgreSQL - Health records, report export ledger
	cfg.Postgres.Host = viper.GetString("postgres.host")
	cfg.Postgres.Port = viper.GetInt("postgres.port")
	cfg.Postgres.User = viper.GetString("postgres.user")
	cfg.Postgres.Password = viper.GetString("postgres.password")
	cfg.Postgres.DBName = viper.GetString("postgres.dbname")
	cfg.Postgres.SSLMode = viper.GetString("postgres.sslmode")
	cfg.Postgres.Schema = viper.GetString("postgres.schema")

	// Redis - Rate limiting
	cfg.Redis.Host = viper.GetString("redis.host")
	cfg.Redis.Port = viper.GetInt("redis.port")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")

	// MinIO - Report artifact storage (PDF)
	cfg.MinIO.Endpoint = viper.GetString("minio.endpoint")
	cfg.MinIO.AccessKey = viper.GetString("minio.access_key")
	cfg.MinIO.SecretKey = viper.GetString("minio.secret_key")
	cfg.MinIO.UseSSL = viper.GetBool("minio.use_ssl")
	cfg.MinIO.Region = viper.GetString("minio.region")
	cfg.MinIO.Bucket = viper.GetString("minio.bucket")

	// Kafka - Report lifecycle events (optional)
	cfg.Kafka.Brokers = viper.GetStringSlice("kafka.brokers")
	cfg.Kafka.Topic = viper.GetString("kafka.topic")

	// JWT
	cfg.JWT.Algorithm = viper.GetString("jwt.algorithm")
	cfg.JWT.Issuer = viper.GetString("jwt.issuer")
	cfg.JWT.Audience = viper.GetStringSlice("jwt.audience")
	cfg.JWT.SecretKey = viper.GetString("jwt.secret_key")
	cfg.JWT.TTL = viper.GetInt("jwt.ttl")

	// Report link lifecycle
	cfg.Report.BaseURL = viper.GetString("report.base_url")
	cfg.Report.LinkTTLSeconds = viper.GetInt("report.link_ttl_seconds")
	cfg.Report.SignedURLTTLSeconds = viper.GetInt("report.signed_url_ttl_seconds")
	cfg.Report.DevReturnLink = viper.GetBool("report.dev_return_link")
	cfg.Report.PDFCommand = viper.GetString("report.pdf_command")
	cfg.Report.ResolveRateLimit = viper.GetInt("report.resolve_rate_limit")

	// Resend
	cfg.Resend.APIKey = viper.GetString("resend.api_key")
	cfg.Resend.FromEmail = viper.GetString("resend.from_email")
	cfg.Resend.BaseURL = viper.GetString("resend.base_url")

	// Discord
	cfg.Discord.WebhookID = viper.GetString("discord.webhook_id")
	cfg.Discord.WebhookToken = viper.GetString("discord.webhook_token")

	// Validate required fields
	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	// Environment
	viper.SetDefault("environment.name", "production")

	// HTTP Server
	viper.SetDefault("http_server.host", "")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	// Logger
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// 1. PostgreSQL
	viper.SetDefault("postgres.host", "localhost")
	viper.SetDefault("postgres.port", 5432)
	viper.SetDefault("postgres.user", "postgres")
	viper.SetDefault("postgres.password", "postgres")
	viper.SetDefault("postgres.dbname", "postgres")
	viper.SetDefault("postgres.sslmode", "prefer")
	viper.SetDefault("postgres.schema", "lungtracker")

	// 2. Redis
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.password", "")
	viper.SetDefault("redis.db", 0)

	// 3. MinIO
	viper.SetDefault("minio.endpoint", "localhost:9000")
	viper.SetDefault("minio.access_key", "minioadmin")
	viper.SetDefault("minio.secret_key", "minioadmin")
	viper.SetDefault("minio.use_ssl", false)
	viper.SetDefault("minio.region", "us-east-1")
	viper.SetDefault("minio.bucket", "reports")

	// 4. Kafka
	viper.SetDefault("kafka.brokers", []string{"localhost:9092"})
	viper.SetDefault("kafka.topic", "report.events")

	// JWT
	viper.SetDefault("jwt.algorithm", "HS256")
	viper.SetDefault("jwt.issuer", "lungtracker-auth")
	viper.SetDefault("jwt.audience", []string{"lungtracker-srv"})
	viper.SetDefault("jwt.ttl", 28800) // 8 hours

	// Report link lifecycle
	viper.SetDefault("report.base_url", "http://localhost:8080")
	viper.SetDefault("report.link_ttl_seconds", 3600)
	viper.SetDefault("report.signed_url_ttl_seconds", 300)
	viper.SetDefault("report.dev_return_link", false)
	viper.SetDefault("report.pdf_command", "chromium")
	viper.SetDefault("report.resolve_rate_limit", 60)

	// Resend
	viper.SetDefault("resend.base_url", "https://api.resend.com")
}

func validate(cfg *Config) error {
	// Validate JWT fields
	if cfg.JWT.SecretKey == "" {
		return fmt.Errorf("jwt.secret_key is required")
	}
	if len(cfg.JWT.SecretKey) < 32 {
		return fmt.Errorf("jwt.secret_key must be at least 32 characters for security")
	}
	if cfg.JWT.Issuer == "" {
		return fmt.Errorf("jwt.issuer is required")
	}
	if len(cfg.JWT.Audience) == 0 {
		return fmt.Errorf("jwt.audience must have at least one value")
	}
	if cfg.JWT.TTL <= 0 {
		return fmt.Errorf("jwt.ttl must be greater than 0")
	}

	// Validate Report fields
	if cfg.Report.BaseURL == "" {
		return fmt.Errorf("report.base_url is required")
	}
	if cfg.Report.LinkTTLSeconds <= 0 {
		return fmt.Errorf("report.link_ttl_seconds must be greater than 0")
	}
	if cfg.Report.SignedURLTTLSeconds <= 0 {
		return fmt.Errorf("report.signed_url_ttl_seconds must be greater than 0")
	}

	// Validate Resend fields
	if cfg.Resend.APIKey == "" {
		return fmt.Errorf("resend.api_key is required")
	}
	if cfg.Resend.FromEmail == "" {
		return fmt.Errorf("resend.from_email is required")
	}

	// Validate Postgres fields
	if cfg.Postgres.Host == "" {
		return fmt.Errorf("postgres.host is required")
	}
	if cfg.Postgres.DBName == "" {
		return fmt.Errorf("postgres.dbname is required")
	}

	// Validate MinIO fields
	if cfg.MinIO.Endpoint == "" {
		return fmt.Errorf("minio.endpoint is required")
	}
	if cfg.MinIO.Bucket == "" {
		return fmt.Errorf("minio.bucket is required")
	}

	return nil
}
