package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string

	RedisAddr string
	RedisDB   int
	RedisPass string

	JWTSecret     string
	TokenTTL      time.Duration
	AdminUsername string
	AdminPassword string

	S3Bucket     string
	S3Region     string
	AWSAccessKey string
	AWSSecretKey string
	UploadDir    string
	UploadPath   string

	ReportCacheTTL time.Duration
	SwaggerHost    string
}

// Load builds Config from environment with sensible defaults.
// The admin identity is configuration, never a literal in code.
func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		MySQLDSN:   getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/csat?charset=utf8mb4&parseTime=True&loc=Local"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:   getEnvInt("REDIS_DB", 0),
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:     getEnv("JWT_SECRET", "change-me"),
		TokenTTL:      getEnvDuration("TOKEN_TTL", 30*time.Minute),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "change-me"),

		S3Bucket:     os.Getenv("AWS_BUCKET_NAME"),
		S3Region:     getEnv("AWS_REGION", "us-east-1"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		UploadDir:    getEnv("UPLOAD_DIR", "./uploads"),
		UploadPath:   getEnv("UPLOAD_PATH", "/uploads"),

		ReportCacheTTL: getEnvDuration("REPORT_CACHE_TTL", 30*time.Second),
		SwaggerHost:    os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
