package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingAPIKey is returned when no completion API credential is configured.
var ErrMissingAPIKey = errors.New("completion API key is not configured")

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	DB         DBConfig
	S3         S3Config
	Log        LogConfig
	Completion CompletionConfig
	Schema     SchemaConfig
	Pipeline   PipelineConfig
	CORS       CORSConfig
	Auth       AuthConfig
	Upload     UploadConfig
}

// ProviderConfig holds settings for a single completion API provider.
type ProviderConfig struct {
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`
}

// CompletionConfig holds completion API settings with optional failover providers.
type CompletionConfig struct {
	// Legacy flat fields
	Provider     string `mapstructure:"provider"`
	APIKey       string `mapstructure:"api_key"`
	DefaultModel string `mapstructure:"default_model"`
	TimeoutSecs  int    `mapstructure:"timeout_secs"`

	Primary   ProviderConfig `mapstructure:"primary"`
	Secondary ProviderConfig `mapstructure:"secondary"`
	Tertiary  ProviderConfig `mapstructure:"tertiary"`
}

// PrimaryConfig returns the primary provider config, falling back to legacy flat fields.
func (c *CompletionConfig) PrimaryConfig() *ProviderConfig {
	if c.Primary.Provider != "" {
		return &c.Primary
	}
	return &ProviderConfig{
		Provider:     c.Provider,
		APIKey:       c.APIKey,
		DefaultModel: c.DefaultModel,
		TimeoutSecs:  c.TimeoutSecs,
	}
}

// SecondaryConfig returns the secondary provider config, or nil if not configured.
func (c *CompletionConfig) SecondaryConfig() *ProviderConfig {
	if c.Secondary.Provider != "" {
		return &c.Secondary
	}
	return nil
}

// TertiaryConfig returns the tertiary provider config, or nil if not configured.
func (c *CompletionConfig) TertiaryConfig() *ProviderConfig {
	if c.Tertiary.Provider != "" {
		return &c.Tertiary
	}
	return nil
}

// SchemaConfig points at the master schema file. An empty path selects the
// built-in schemas.
type SchemaConfig struct {
	Path string `mapstructure:"path"`
}

// PipelineConfig holds the bounds used by the classification, extraction and
// validation pipeline.
type PipelineConfig struct {
	ClassifyPrefixChars   int `mapstructure:"classify_prefix_chars"`
	AIPrefixChars         int `mapstructure:"ai_prefix_chars"`
	MinPatternFields      int `mapstructure:"min_pattern_fields"`
	CompletionTimeoutSecs int `mapstructure:"completion_timeout_secs"`
	ValidationTimeoutSecs int `mapstructure:"validation_timeout_secs"`
}

// CompletionTimeout returns the bound for classifier and extractor completion calls.
func (p PipelineConfig) CompletionTimeout() time.Duration {
	return secondsOr(p.CompletionTimeoutSecs, 60)
}

// ValidationTimeout returns the bound for deep validation completion calls.
func (p PipelineConfig) ValidationTimeout() time.Duration {
	return secondsOr(p.ValidationTimeoutSecs, 60)
}

func secondsOr(secs, def int) time.Duration {
	if secs <= 0 {
		secs = def
	}
	return time.Duration(secs) * time.Second
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

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
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

// AuthConfig holds settings for verifying bearer tokens issued by the
// authentication service. An empty secret disables verification.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// UploadConfig holds upload limits.
type UploadConfig struct {
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// Validate reports configuration the service cannot start without.
func (c *Config) Validate() error {
	primary := c.Completion.PrimaryConfig()
	if primary.Provider == "" {
		return fmt.Errorf("completion provider is not configured")
	}
	if primary.APIKey == "" {
		return ErrMissingAPIKey
	}
	for _, p := range []*ProviderConfig{c.Completion.SecondaryConfig(), c.Completion.TertiaryConfig()} {
		if p != nil && p.APIKey == "" {
			return fmt.Errorf("%s provider: %w", p.Provider, ErrMissingAPIKey)
		}
	}
	return nil
}

// Load reads configuration and validates it. The API server uses Load.
func Load() (*Config, error) {
	cfg := Read()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Read reads configuration from an optional .env file and environment
// variables with the TERMSHEET_ prefix without validating it. Tools that
// never call the completion API (migrations, the offline CLI) use Read.
func Read() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config.Read: ignoring .env: %v", err)
	}

	v := viper.New()
	v.SetEnvPrefix("TERMSHEET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "150s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "termsheet")
	v.SetDefault("db.password", "termsheet_secret")
	v.SetDefault("db.name", "termsheet_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "termsheet-uploads")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")

	v.SetDefault("upload.max_file_size_mb", 25)

	v.SetDefault("schema.path", "")

	// Pipeline defaults
	v.SetDefault("pipeline.classify_prefix_chars", 10000)
	v.SetDefault("pipeline.ai_prefix_chars", 6000)
	v.SetDefault("pipeline.min_pattern_fields", 5)
	v.SetDefault("pipeline.completion_timeout_secs", 60)
	v.SetDefault("pipeline.validation_timeout_secs", 60)

	// Completion defaults (legacy flat)
	v.SetDefault("completion.provider", "gemini")
	v.SetDefault("completion.api_key", "")
	v.SetDefault("completion.default_model", "gemini-2.5-flash")
	v.SetDefault("completion.timeout_secs", 60)

	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		v.SetDefault("completion."+tier+".provider", "")
		v.SetDefault("completion."+tier+".api_key", "")
		v.SetDefault("completion."+tier+".default_model", "")
		v.SetDefault("completion."+tier+".timeout_secs", 60)
	}

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                      "TERMSHEET_SERVER_PORT",
		"server.read_timeout":              "TERMSHEET_SERVER_READ_TIMEOUT",
		"server.write_timeout":             "TERMSHEET_SERVER_WRITE_TIMEOUT",
		"server.environment":               "TERMSHEET_SERVER_ENVIRONMENT",
		"db.host":                          "TERMSHEET_DB_HOST",
		"db.port":                          "TERMSHEET_DB_PORT",
		"db.user":                          "TERMSHEET_DB_USER",
		"db.password":                      "TERMSHEET_DB_PASSWORD",
		"db.name":                          "TERMSHEET_DB_NAME",
		"db.sslmode":                       "TERMSHEET_DB_SSLMODE",
		"db.max_open":                      "TERMSHEET_DB_MAX_OPEN",
		"db.max_idle":                      "TERMSHEET_DB_MAX_IDLE",
		"s3.region":                        "TERMSHEET_S3_REGION",
		"s3.bucket":                        "TERMSHEET_S3_BUCKET",
		"s3.endpoint":                      "TERMSHEET_S3_ENDPOINT",
		"s3.access_key":                    "TERMSHEET_S3_ACCESS_KEY",
		"s3.secret_key":                    "TERMSHEET_S3_SECRET_KEY",
		"log.level":                        "TERMSHEET_LOG_LEVEL",
		"log.format":                       "TERMSHEET_LOG_FORMAT",
		"cors.allowed_origins":             "TERMSHEET_CORS_ALLOWED_ORIGINS",
		"auth.jwt_secret":                  "TERMSHEET_AUTH_JWT_SECRET",
		"auth.issuer":                      "TERMSHEET_AUTH_ISSUER",
		"upload.max_file_size_mb":          "TERMSHEET_UPLOAD_MAX_FILE_SIZE_MB",
		"schema.path":                      "TERMSHEET_SCHEMA_PATH",
		"pipeline.classify_prefix_chars":   "TERMSHEET_PIPELINE_CLASSIFY_PREFIX_CHARS",
		"pipeline.ai_prefix_chars":         "TERMSHEET_PIPELINE_AI_PREFIX_CHARS",
		"pipeline.min_pattern_fields":      "TERMSHEET_PIPELINE_MIN_PATTERN_FIELDS",
		"pipeline.completion_timeout_secs": "TERMSHEET_PIPELINE_COMPLETION_TIMEOUT_SECS",
		"pipeline.validation_timeout_secs": "TERMSHEET_PIPELINE_VALIDATION_TIMEOUT_SECS",
		"completion.provider":              "TERMSHEET_COMPLETION_PROVIDER",
		"completion.api_key":               "TERMSHEET_COMPLETION_API_KEY",
		"completion.default_model":         "TERMSHEET_COMPLETION_DEFAULT_MODEL",
		"completion.timeout_secs":          "TERMSHEET_COMPLETION_TIMEOUT_SECS",
	}
	for _, tier := range []string{"primary", "secondary", "tertiary"} {
		for _, field := range []string{"provider", "api_key", "default_model", "timeout_secs"} {
			key := "completion." + tier + "." + field
			envBindings[key] = "TERMSHEET_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		}
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if TERMSHEET_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("TERMSHEET_SERVER_PORT") == "" {
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
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
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
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Auth = AuthConfig{
		JWTSecret: v.GetString("auth.jwt_secret"),
		Issuer:    v.GetString("auth.issuer"),
	}
	cfg.Upload = UploadConfig{MaxFileSizeMB: v.GetInt64("upload.max_file_size_mb")}
	cfg.Schema = SchemaConfig{Path: v.GetString("schema.path")}

	cfg.Pipeline = PipelineConfig{
		ClassifyPrefixChars:   v.GetInt("pipeline.classify_prefix_chars"),
		AIPrefixChars:         v.GetInt("pipeline.ai_prefix_chars"),
		MinPatternFields:      v.GetInt("pipeline.min_pattern_fields"),
		CompletionTimeoutSecs: v.GetInt("pipeline.completion_timeout_secs"),
		ValidationTimeoutSecs: v.GetInt("pipeline.validation_timeout_secs"),
	}

	cfg.Completion = CompletionConfig{
		Provider:     v.GetString("completion.provider"),
		APIKey:       v.GetString("completion.api_key"),
		DefaultModel: v.GetString("completion.default_model"),
		TimeoutSecs:  v.GetInt("completion.timeout_secs"),
		Primary:      providerFromViper(v, "primary"),
		Secondary:    providerFromViper(v, "secondary"),
		Tertiary:     providerFromViper(v, "tertiary"),
	}

	return cfg
}

func providerFromViper(v *viper.Viper, tier string) ProviderConfig {
	prefix := "completion." + tier + "."
	return ProviderConfig{
		Provider:     v.GetString(prefix + "provider"),
		APIKey:       v.GetString(prefix + "api_key"),
		DefaultModel: v.GetString(prefix + "default_model"),
		TimeoutSecs:  v.GetInt(prefix + "timeout_secs"),
	}
}
