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
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	LLM     LLMConfig
	Extract ExtractConfig
	Limiter LimiterConfig
	Cache   CacheConfig
	CORS    CORSConfig
	Log     LogConfig
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

// S3Config holds AWS S3 settings for raw document text storage.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LLMConfig holds settings for the completion-API gateway.
type LLMConfig struct {
	APIKey           string `mapstructure:"api_key"`
	Model            string `mapstructure:"model"`
	BaseURL          string `mapstructure:"base_url"`
	TimeoutSecs      int    `mapstructure:"timeout_secs"`
	MaxAttempts      int    `mapstructure:"max_attempts"`
	DefaultMaxTokens int    `mapstructure:"default_max_tokens"`
	MaxTokenCeiling  int    `mapstructure:"max_token_ceiling"`
}

// ExtractConfig holds extraction orchestration settings.
// Policy overrides the per-document-type default when set to "sequential" or
// "concurrent"; "auto" keeps the per-type defaults.
type ExtractConfig struct {
	Policy             string `mapstructure:"policy"`
	RequestTimeoutSecs int    `mapstructure:"request_timeout_secs"`
}

// RequestTimeout returns the deadline applied to one whole extraction run.
func (e *ExtractConfig) RequestTimeout() time.Duration {
	return time.Duration(e.RequestTimeoutSecs) * time.Second
}

// LimiterConfig holds shared admission-control settings for outbound model calls.
type LimiterConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
	MaxConcurrent     int     `mapstructure:"max_concurrent"`
}

// CacheConfig holds result-cache settings.
type CacheConfig struct {
	TTL             time.Duration `mapstructure:"ttl"`
	CleanupInterval time.Duration `mapstructure:"cleanup_interval"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the FREIGHTDOC_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FREIGHTDOC")
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
	v.SetDefault("db.user", "freightdoc")
	v.SetDefault("db.password", "freightdoc_secret")
	v.SetDefault("db.name", "freightdoc_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "15m")
	v.SetDefault("jwt.refresh_expiry", "168h")
	v.SetDefault("jwt.issuer", "freightdoc")

	// S3 defaults
	v.SetDefault("s3.region", "ap-south-1")
	v.SetDefault("s3.bucket", "freightdoc-documents")
	v.SetDefault("s3.endpoint", "")

	// LLM defaults
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.model", "gpt-4o")
	v.SetDefault("llm.base_url", "https://api.openai.com/v1/chat/completions")
	v.SetDefault("llm.timeout_secs", 120)
	v.SetDefault("llm.max_attempts", 4)
	v.SetDefault("llm.default_max_tokens", 4096)
	v.SetDefault("llm.max_token_ceiling", 8192)

	// Extraction defaults
	v.SetDefault("extract.policy", "auto")
	v.SetDefault("extract.request_timeout_secs", 600)

	// Limiter defaults
	v.SetDefault("limiter.requests_per_second", 2.0)
	v.SetDefault("limiter.burst", 4)
	v.SetDefault("limiter.max_concurrent", 8)

	// Cache defaults
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.cleanup_interval", "15m")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "FREIGHTDOC_SERVER_PORT",
		"server.read_timeout":          "FREIGHTDOC_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "FREIGHTDOC_SERVER_WRITE_TIMEOUT",
		"server.environment":           "FREIGHTDOC_SERVER_ENVIRONMENT",
		"db.host":                      "FREIGHTDOC_DB_HOST",
		"db.port":                      "FREIGHTDOC_DB_PORT",
		"db.user":                      "FREIGHTDOC_DB_USER",
		"db.password":                  "FREIGHTDOC_DB_PASSWORD",
		"db.name":                      "FREIGHTDOC_DB_NAME",
		"db.sslmode":                   "FREIGHTDOC_DB_SSLMODE",
		"db.max_open":                  "FREIGHTDOC_DB_MAX_OPEN",
		"db.max_idle":                  "FREIGHTDOC_DB_MAX_IDLE",
		"jwt.secret":                   "FREIGHTDOC_JWT_SECRET",
		"jwt.access_expiry":            "FREIGHTDOC_JWT_ACCESS_EXPIRY",
		"jwt.refresh_expiry":           "FREIGHTDOC_JWT_REFRESH_EXPIRY",
		"jwt.issuer":                   "FREIGHTDOC_JWT_ISSUER",
		"s3.region":                    "FREIGHTDOC_S3_REGION",
		"s3.bucket":                    "FREIGHTDOC_S3_BUCKET",
		"s3.endpoint":                  "FREIGHTDOC_S3_ENDPOINT",
		"s3.access_key":                "FREIGHTDOC_S3_ACCESS_KEY",
		"s3.secret_key":                "FREIGHTDOC_S3_SECRET_KEY",
		"llm.api_key":                  "FREIGHTDOC_LLM_API_KEY",
		"llm.model":                    "FREIGHTDOC_LLM_MODEL",
		"llm.base_url":                 "FREIGHTDOC_LLM_BASE_URL",
		"llm.timeout_secs":             "FREIGHTDOC_LLM_TIMEOUT_SECS",
		"llm.max_attempts":             "FREIGHTDOC_LLM_MAX_ATTEMPTS",
		"llm.default_max_tokens":       "FREIGHTDOC_LLM_DEFAULT_MAX_TOKENS",
		"llm.max_token_ceiling":        "FREIGHTDOC_LLM_MAX_TOKEN_CEILING",
		"extract.policy":               "FREIGHTDOC_EXTRACT_POLICY",
		"extract.request_timeout_secs": "FREIGHTDOC_EXTRACT_REQUEST_TIMEOUT_SECS",
		"limiter.requests_per_second":  "FREIGHTDOC_LIMITER_REQUESTS_PER_SECOND",
		"limiter.burst":                "FREIGHTDOC_LIMITER_BURST",
		"limiter.max_concurrent":       "FREIGHTDOC_LIMITER_MAX_CONCURRENT",
		"cache.ttl":                    "FREIGHTDOC_CACHE_TTL",
		"cache.cleanup_interval":       "FREIGHTDOC_CACHE_CLEANUP_INTERVAL",
		"cors.allowed_origins":         "FREIGHTDOC_CORS_ALLOWED_ORIGINS",
		"log.level":                    "FREIGHTDOC_LOG_LEVEL",
		"log.format":                   "FREIGHTDOC_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FREIGHTDOC_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FREIGHTDOC_SERVER_PORT") == "" {
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
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.LLM = LLMConfig{
		APIKey:           v.GetString("llm.api_key"),
		Model:            v.GetString("llm.model"),
		BaseURL:          v.GetString("llm.base_url"),
		TimeoutSecs:      v.GetInt("llm.timeout_secs"),
		MaxAttempts:      v.GetInt("llm.max_attempts"),
		DefaultMaxTokens: v.GetInt("llm.default_max_tokens"),
		MaxTokenCeiling:  v.GetInt("llm.max_token_ceiling"),
	}
	cfg.Extract = ExtractConfig{
		Policy:             v.GetString("extract.policy"),
		RequestTimeoutSecs: v.GetInt("extract.request_timeout_secs"),
	}
	cfg.Limiter = LimiterConfig{
		RequestsPerSecond: v.GetFloat64("limiter.requests_per_second"),
		Burst:             v.GetInt("limiter.burst"),
		MaxConcurrent:     v.GetInt("limiter.max_concurrent"),
	}
	cfg.Cache = CacheConfig{
		TTL:             v.GetDuration("cache.ttl"),
		CleanupInterval: v.GetDuration("cache.cleanup_interval"),
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

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
