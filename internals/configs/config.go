package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)

// Config holds every knob the chat-assistant pipeline reads. Loaded
// once at startup and passed down explicitly; nothing below the
// controller reads the environment on its own.
type Config struct {
	AppEnv string `validate:"required,oneof=production development"`
	Port   string `validate:"required"`

	// Gateway. APIKey may be empty: the assistant degrades to canned
	// replies instead of refusing to start.
	APIKey       string
	EndpointBase string `validate:"required,url"`
	FastModel    string `validate:"required"`
	VisionModel  string `validate:"required"`
	Timeout      time.Duration

	// Generation defaults.
	Temperature     float64 `validate:"gte=0,lte=2"`
	TopK            int     `validate:"gt=0"`
	TopP            float64 `validate:"gt=0,lte=1"`
	MaxOutputTokens int     `validate:"gt=0"`

	// Upload ceilings.
	MaxUploadBytes    int64 `validate:"gt=0"`
	MaxImageDimension int   `validate:"gt=0"`

	// Session store.
	SessionTTL time.Duration
}

var validate = validator.New()

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ no .env file found, using system ENV")
		} else {
			log.Println("✅ .env file loaded")
		}
	} else {
		log.Println("🚀 running on Railway, using system ENV")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			return parsed
		}
	}
	return def
}

// Load reads the environment into a Config and validates it. A missing
// AI_API_KEY only logs a warning; everything else fails fast.
func Load() (*Config, error) {
	cfg := &Config{
		AppEnv: GetEnv("APP_ENV", EnvProduction),
		Port:   GetEnv("PORT", "3000"),

		APIKey:       GetEnv("AI_API_KEY"),
		EndpointBase: GetEnv("AI_ENDPOINT_BASE", "https://generativelanguage.googleapis.com/v1beta"),
		FastModel:    GetEnv("AI_FAST_MODEL", "gemini-1.5-flash"),
		VisionModel:  GetEnv("AI_VISION_MODEL", "gemini-1.5-pro"),
		Timeout:      time.Duration(getEnvInt("AI_TIMEOUT_SECONDS", 30)) * time.Second,

		Temperature:     getEnvFloat("AI_TEMPERATURE", 0.7),
		TopK:            getEnvInt("AI_TOP_K", 40),
		TopP:            getEnvFloat("AI_TOP_P", 0.95),
		MaxOutputTokens: getEnvInt("AI_MAX_OUTPUT_TOKENS", 2048),

		MaxUploadBytes:    int64(getEnvInt("UPLOAD_MAX_BYTES", 10<<20)),
		MaxImageDimension: getEnvInt("UPLOAD_MAX_DIMENSION", 1024),

		SessionTTL: time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if cfg.APIKey == "" {
		log.Println("⚠️ AI_API_KEY not set, assistant will answer with canned replies only")
	} else {
		log.Println("✅ AI_API_KEY loaded")
	}

	return cfg, nil
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == EnvDevelopment
}
