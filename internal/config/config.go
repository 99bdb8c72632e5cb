package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	History  HistoryConfig
	Gemini   GeminiConfig
	Upload   UploadConfig
	Analyzer AnalyzerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type LogConfig struct {
	Level  string
	Format string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// HistoryConfig toggles persistence of analysis reports. Disabled by default so the
// service runs without a database.
type HistoryConfig struct {
	Enabled bool
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

// UploadConfig caps analysis uploads. MaxFileSize applies per file and 0 disables
// it; MaxBodySize is the floor for the whole request body.
type UploadConfig struct {
	MaxFileSize int64
	MaxFiles    int
	MaxBodySize int64
}

type AnalyzerConfig struct {
	DefaultSkills string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "resume_ats"),
		},
		History: HistoryConfig{
			Enabled: getEnvAsBool("HISTORY_ENABLED", false),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Upload: UploadConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			MaxFiles:    getEnvAsInt("MAX_FILES", 50),
			MaxBodySize: getEnvAsInt64("MAX_BODY_SIZE", 104857600),
		},
		Analyzer: AnalyzerConfig{
			DefaultSkills: getEnv("DEFAULT_SKILLS", "Python, SQL, Machine Learning"),
		},
	}
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

// BodyLimit is the largest request body the server accepts. It never drops below
// MaxBodySize, and with a per-file cap it also fits every file at that cap plus room
// for form fields, so an oversized file is rejected on its own rather than failing
// the whole request.
func (c *Config) BodyLimit() int {
	limit := c.Upload.MaxBodySize
	if c.Upload.MaxFileSize > 0 && c.Upload.MaxFiles > 0 {
		perRequest := c.Upload.MaxFileSize*int64(c.Upload.MaxFiles) + 1<<20
		if perRequest > limit {
			limit = perRequest
		}
	}
	if limit <= 0 {
		limit = fiber.DefaultBodyLimit
	}
	return int(limit)
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
	valueStr := strings.TrimSpace(getEnv(key, ""))
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
