package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Auth      AuthConfig      `yaml:"auth"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	Consent   ConsentConfig   `yaml:"consent"`
	AI        AIConfig        `yaml:"ai"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Erasure   ErasureConfig   `yaml:"erasure"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"6m"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token settings. Tokens are issued by the identity
// provider; this service only validates them.
type AuthConfig struct {
	JWTSecret      string        `yaml:"jwt_secret"       env:"AUTH_JWT_SECRET"       env-required:"true"`
	JWTIssuer      string        `yaml:"jwt_issuer"       env:"AUTH_JWT_ISSUER"       env-default:"ecomind"`
	AccessTokenTTL time.Duration `yaml:"access_token_ttl" env:"AUTH_ACCESS_TOKEN_TTL" env-default:"1h"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// ConsentConfig pins the consent policy version and deletion grace period.
type ConsentConfig struct {
	CurrentVersion      string        `yaml:"current_version"       env:"CONSENT_CURRENT_VERSION"       env-default:"1.0.0"`
	DeletionGracePeriod time.Duration `yaml:"deletion_grace_period" env:"CONSENT_DELETION_GRACE_PERIOD" env-default:"720h"`
}

// AIConfig holds Gemini / Vertex AI settings.
type AIConfig struct {
	Backend               string        `yaml:"backend"                  env:"AI_BACKEND"                  env-default:"gemini"`
	APIKey                string        `yaml:"api_key"                  env:"AI_API_KEY"`
	Project               string        `yaml:"project"                  env:"AI_PROJECT"`
	Location              string        `yaml:"location"                 env:"AI_LOCATION"                 env-default:"us-central1"`
	BaseURL               string        `yaml:"base_url"                 env:"AI_BASE_URL"`
	TextModel             string        `yaml:"text_model"               env:"AI_TEXT_MODEL"               env-default:"gemini-2.0-flash"`
	EmbeddingModel        string        `yaml:"embedding_model"          env:"AI_EMBEDDING_MODEL"          env-default:"text-embedding-004"`
	AnalysisTemperature   float32       `yaml:"analysis_temperature"     env:"AI_ANALYSIS_TEMPERATURE"     env-default:"0.3"`
	GenerativeTemperature float32       `yaml:"generative_temperature"   env:"AI_GENERATIVE_TEMPERATURE"   env-default:"0.4"`
	MaxOutputTokens       int32         `yaml:"max_output_tokens"        env:"AI_MAX_OUTPUT_TOKENS"        env-default:"1024"`
	RequestTimeout        time.Duration `yaml:"request_timeout"          env:"AI_REQUEST_TIMEOUT"          env-default:"30s"`
	BatchTimeout          time.Duration `yaml:"batch_timeout"            env:"AI_BATCH_TIMEOUT"            env-default:"5m"`
	EmbeddingSubBatchSize int           `yaml:"embedding_sub_batch_size" env:"AI_EMBEDDING_SUB_BATCH_SIZE" env-default:"5"`
	MaxBatchTexts         int           `yaml:"max_batch_texts"          env:"AI_MAX_BATCH_TEXTS"          env-default:"100"`
	MaxInputChars         int           `yaml:"max_input_chars"          env:"AI_MAX_INPUT_CHARS"          env-default:"10000"`
}

// RateLimitConfig holds per-user AI request limits. An empty RedisAddr keeps
// the limiter in-process.
type RateLimitConfig struct {
	AIRequestsPerMinute int    `yaml:"ai_requests_per_minute" env:"RATE_LIMIT_AI_PER_MINUTE"  env-default:"30"`
	RedisAddr           string `yaml:"redis_addr"             env:"RATE_LIMIT_REDIS_ADDR"`
	RedisPassword       string `yaml:"redis_password"         env:"RATE_LIMIT_REDIS_PASSWORD"`
	RedisDB             int    `yaml:"redis_db"               env:"RATE_LIMIT_REDIS_DB"        env-default:"0"`
}

// ErasureConfig bounds account erasure batches.
type ErasureConfig struct {
	MaxBatchSize int `yaml:"max_batch_size" env:"ERASURE_MAX_BATCH_SIZE" env-default:"500"`
}

// AI backends.
const (
	AIBackendGemini = "gemini"
	AIBackendVertex = "vertex"
)

// Configured reports whether credentials for the selected backend are present.
func (c AIConfig) Configured() bool {
	switch c.Backend {
	case AIBackendGemini:
		return c.APIKey != ""
	case AIBackendVertex:
		return c.Project != "" && c.Location != ""
	}
	return false
}

// UsesRedis reports whether the shared Redis limiter is configured.
func (c RateLimitConfig) UsesRedis() bool {
	return c.RedisAddr != ""
}
