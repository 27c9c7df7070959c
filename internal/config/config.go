package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken  string        `validate:"required"`
	GeminiAPIKey   string        // пустой ключ = ассистент всегда отвечает fallback
	GeminiModel    string        `validate:"required"`
	DBDSN          string        // пустой DSN = очередь оплат в памяти
	MigrationsDir  string        `validate:"required_with=DBDSN"`
	Environment    string        `validate:"oneof=development production test"`
	OpsAddr        string        `validate:"required"`
	SessionIdleTTL time.Duration `validate:"gt=0"`
}

const (
	defaultGeminiModel    = "gemini-3-flash-preview"
	defaultMigrationsDir  = "migrations"
	defaultOpsAddr        = ":8081"
	defaultSessionIdleTTL = 12 * time.Hour
)

var validate = validator.New()

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_TOKEN"),
		GeminiAPIKey:  firstNonEmpty(os.Getenv("API_KEY"), os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   envOrDefault("GEMINI_MODEL", defaultGeminiModel),
		DBDSN:         os.Getenv("DB_DSN"),
		MigrationsDir: envOrDefault("MIGRATIONS_DIR", defaultMigrationsDir),
		Environment:   envOrDefault("ENV", "development"),
		OpsAddr:       envOrDefault("OPS_ADDR", defaultOpsAddr),
	}

	ttl, err := durationOrDefault("SESSION_IDLE_TTL", defaultSessionIdleTTL)
	if err != nil {
		return nil, err
	}
	cfg.SessionIdleTTL = ttl

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.Printf("Config loaded (env=%s, storage=%s)\n", cfg.Environment, cfg.StorageKind())

	return cfg, nil
}

// Validate проверяет обязательные поля
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// StorageKind описывает где хранится очередь оплат
func (c *Config) StorageKind() string {
	if c.DBDSN == "" {
		return "memory"
	}
	return "postgres"
}

func (c *Config) AssistantEnabled() bool {
	return c.GeminiAPIKey != ""
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationOrDefault(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return d, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
