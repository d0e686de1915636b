package config

import (
	"os"
	"strconv"
	"time"
)

// LikeStatusPolicy controls what GET /api/tokens/:address/likes reports in
// the hasLiked field.
type LikeStatusPolicy string

const (
	// LikeStatusRealCheck reports whether the requesting IP has a like row.
	LikeStatusRealCheck LikeStatusPolicy = "real_check"
	// LikeStatusAlwaysFalse always reports false, permitting repeat likes.
	LikeStatusAlwaysFalse LikeStatusPolicy = "always_false"
)

// Config holds all configuration values
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Upstream UpstreamConfig
	Likes    LikesConfig
	Chat     ChatConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration. ConnString, when set, wins
// over the discrete fields (hosted providers hand out a single URL).
type DatabaseConfig struct {
	ConnString string
	Host       string
	Port       int
	User       string
	Password   string
	DBName     string
	SSLMode    string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	if c.ConnString != "" {
		return c.ConnString
	}
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&connect_timeout=2"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// UpstreamConfig holds the external token price API settings
type UpstreamConfig struct {
	BaseURL string
	Timeout time.Duration
}

// LikesConfig holds like-endpoint policy settings
type LikesConfig struct {
	StatusPolicy     LikeStatusPolicy
	RateLimitEnabled bool
	RateLimitMax     int
	RateLimitWindow  time.Duration
}

// ChatConfig holds chat backlog and retention settings
type ChatConfig struct {
	BacklogLimit   int
	RetentionLimit int
}

// Load loads configuration from environment variables
func Load() *Config {
	env := getEnv("SERVER_ENV", "development")

	// TLS to the database is required only in production.
	sslDefault := "disable"
	if env == "production" {
		sslDefault = "require"
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "3000"),
			Env:  env,
		},
		Database: DatabaseConfig{
			ConnString: getEnv("DB_URL", ""),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnvAsInt("DB_PORT", 5432),
			User:       getEnv("DB_USER", "postgres"),
			Password:   getEnv("DB_PASSWORD", ""),
			DBName:     getEnv("DB_NAME", "paluminiapp"),
			SSLMode:    getEnv("DB_SSLMODE", sslDefault),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		Upstream: UpstreamConfig{
			BaseURL: getEnv("UPSTREAM_TOKEN_API_URL", "https://four.meme/meme-api/v1/private/token/get/v2"),
			Timeout: getEnvAsDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		Likes: LikesConfig{
			StatusPolicy:     likeStatusPolicy(getEnv("LIKE_STATUS_POLICY", string(LikeStatusRealCheck))),
			RateLimitEnabled: getEnvAsBool("LIKE_RATE_LIMIT_ENABLED", false),
			RateLimitMax:     getEnvAsInt("LIKE_RATE_LIMIT_MAX", 3),
			RateLimitWindow:  getEnvAsDuration("LIKE_RATE_LIMIT_WINDOW", 24*time.Hour),
		},
		Chat: ChatConfig{
			BacklogLimit:   getEnvAsInt("CHAT_BACKLOG_LIMIT", 50),
			RetentionLimit: getEnvAsInt("CHAT_RETENTION_LIMIT", 100),
		},
	}
}

func likeStatusPolicy(value string) LikeStatusPolicy {
	if value == string(LikeStatusAlwaysFalse) {
		return LikeStatusAlwaysFalse
	}
	return LikeStatusRealCheck
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
