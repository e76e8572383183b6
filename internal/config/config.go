package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	LLM       LLMConfig
	Upload    UploadConfig
	Security  SecurityConfig
	RateLimit RateLimitConfig
	Report    ReportConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type LLMConfig struct {
	Provider        string
	AnthropicAPIKey string
	AnthropicModel  string
	GeminiAPIKey    string
	GeminiModel     string
	MaxTokens       int
	MaxRetries      int
}

type UploadConfig struct {
	MaxPDFSize   int64
	MaxImageSize int64
}

type SecurityConfig struct {
	TurnstileSecretKey string
	AdminKey           string
}

type RateLimitConfig struct {
	GlobalMax     int
	GlobalWindow  time.Duration
	AnalyzeMax    int
	AnalyzeWindow time.Duration
}

type ReportConfig struct {
	ChromePath string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3001"),
			Env:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Enabled:  getEnvAsBool("DB_ENABLED", true),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "linkedin_analyzer"),
		},
		LLM: LLMConfig{
			Provider:        getEnv("LLM_PROVIDER", "anthropic"),
			AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
			GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
			MaxTokens:       getEnvAsInt("LLM_MAX_TOKENS", 4096),
			MaxRetries:      getEnvAsInt("LLM_MAX_RETRIES", 1),
		},
		Upload: UploadConfig{
			MaxPDFSize:   getEnvAsInt64("MAX_PDF_SIZE", 10*1024*1024),
			MaxImageSize: getEnvAsInt64("MAX_IMAGE_SIZE", 5*1024*1024),
		},
		Security: SecurityConfig{
			TurnstileSecretKey: getEnv("TURNSTILE_SECRET_KEY", ""),
			AdminKey:           strings.TrimSpace(getEnv("ADMIN_KEY", "")),
		},
		RateLimit: RateLimitConfig{
			GlobalMax:     getEnvAsInt("RATE_LIMIT_GLOBAL_MAX", 100),
			GlobalWindow:  getEnvAsDuration("RATE_LIMIT_GLOBAL_WINDOW", "1m"),
			AnalyzeMax:    getEnvAsInt("RATE_LIMIT_ANALYZE_MAX", 5),
			AnalyzeWindow: getEnvAsDuration("RATE_LIMIT_ANALYZE_WINDOW", "1h"),
		},
		Report: ReportConfig{
			ChromePath: getEnv("CHROME_PATH", ""),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.Server.Env == "production"
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseInt(valueStr, 10, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
