package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	AWS       AWSConfig
	Gemini    GeminiConfig
	Auth      AuthConfig
	Endpoints EndpointConfig
	Storage   StorageConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type AWSConfig struct {
	Region string
	Bucket string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

type AuthConfig struct {
	JWTSecret       string
	TokenExpiration time.Duration
}

type EndpointConfig struct {
	FaceVerifyURL  string
	QuestionGenURL string
	HTTPTimeout    time.Duration
}

type StorageConfig struct {
	MaxFileSize int64
	// Extractor selects the resume text source: "textract" or "local" (PDF parser).
	Extractor string
}

type WorkerConfig struct {
	Concurrency      int
	RetryMaxAttempts int
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
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "career_copilot"),
		},
		AWS: AWSConfig{
			Region: getEnv("AWS_REGION", "ap-south-1"),
			Bucket: getEnv("S3_BUCKET", "career-copilot-docsverification"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Auth: AuthConfig{
			JWTSecret:       getEnv("JWT_SECRET", "dev-secret-change-me"),
			TokenExpiration: getEnvAsDuration("TOKEN_EXPIRATION", "12h"),
		},
		Endpoints: EndpointConfig{
			FaceVerifyURL:  getEnv("FACE_VERIFY_URL", ""),
			QuestionGenURL: getEnv("QUESTION_GEN_URL", ""),
			HTTPTimeout:    getEnvAsDuration("ENDPOINT_TIMEOUT", "30s"),
		},
		Storage: StorageConfig{
			MaxFileSize: getEnvAsInt64("MAX_FILE_SIZE", 10485760),
			Extractor:   getEnv("EXTRACTOR", "textract"),
		},
		Worker: WorkerConfig{
			Concurrency:      getEnvAsInt("WORKER_CONCURRENCY", 1),
			RetryMaxAttempts: getEnvAsInt("RETRY_MAX_ATTEMPTS", 3),
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

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
