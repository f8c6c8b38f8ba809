package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"github.com/yourusername/career-advisor/internal/domain/constants"
)

// Cache backend nomlari
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

// Config ilovaning konfiguratsiyasi
type Config struct {
	GeminiAPIKey      string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string        `mapstructure:"GEMINI_MODEL"`
	GeminiMaxRetries  int           `mapstructure:"GEMINI_MAX_RETRIES"`
	GeminiRetryDelay  time.Duration `mapstructure:"GEMINI_RETRY_DELAY"`
	HTTPPort          string        `mapstructure:"HTTP_PORT"`
	CacheSize         int           `mapstructure:"SUGGESTION_CACHE_SIZE"`
	CacheBackend      string        `mapstructure:"CACHE_BACKEND"`
	Redis             RedisConfig   `mapstructure:",squash"`
	TranscriptMax     int           `mapstructure:"TRANSCRIPT_MAX_TURNS"`
	TelegramToken     string        `mapstructure:"TELEGRAM_BOT_TOKEN"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	LogFormat         string        `mapstructure:"LOG_FORMAT"`
	AllowEmptySecrets bool          `mapstructure:"ALLOW_EMPTY_SECRETS"`
}

// RedisConfig faqat CACHE_BACKEND=redis bo'lganda ishlatiladi
type RedisConfig struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// TelegramEnabled token berilgan bo'lsa bot ham ishga tushadi
func (c *Config) TelegramEnabled() bool {
	return strings.TrimSpace(c.TelegramToken) != ""
}

var keys = []string{
	"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_MAX_RETRIES", "GEMINI_RETRY_DELAY",
	"HTTP_PORT", "SUGGESTION_CACHE_SIZE", "CACHE_BACKEND",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB",
	"TRANSCRIPT_MAX_TURNS", "TELEGRAM_BOT_TOKEN",
	"LOG_LEVEL", "LOG_FORMAT", "ALLOW_EMPTY_SECRETS",
}

// Load konfiguratsiyani yuklash: .env -> config.yaml -> environment
func Load() (*Config, error) {
	// .env faylini yuklash (mavjud bo'lsa)
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("config.yaml o'qib bo'lmadi: %w", err)
		}
	}
	return loadFrom(v)
}

func loadFrom(v *viper.Viper) (*Config, error) {
	applyDefaults(v)
	v.AutomaticEnv()
	// Unmarshal AutomaticEnv kalitlarini faqat bind qilinganda ko'radi
	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("konfiguratsiyani o'qib bo'lmadi: %w", err)
	}
	normalize(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("GEMINI_MODEL", constants.GeminiModelName)
	v.SetDefault("GEMINI_MAX_RETRIES", constants.MaxRetries)
	v.SetDefault("GEMINI_RETRY_DELAY", constants.RetryDelay)
	v.SetDefault("HTTP_PORT", constants.DefaultHTTPPort)
	v.SetDefault("SUGGESTION_CACHE_SIZE", constants.DefaultSuggestionCacheSize)
	v.SetDefault("CACHE_BACKEND", CacheBackendMemory)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("TRANSCRIPT_MAX_TURNS", constants.DefaultTranscriptMaxTurns)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")
	v.SetDefault("ALLOW_EMPTY_SECRETS", false)
}

func normalize(cfg *Config) {
	cfg.GeminiAPIKey = strings.TrimSpace(cfg.GeminiAPIKey)
	cfg.TelegramToken = strings.TrimSpace(cfg.TelegramToken)
	cfg.CacheBackend = strings.ToLower(strings.TrimSpace(cfg.CacheBackend))
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
}

func validateConfig(cfg *Config) error {
	if !cfg.AllowEmptySecrets && cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable bo'sh")
	}
	if cfg.CacheSize <= 0 {
		return fmt.Errorf("SUGGESTION_CACHE_SIZE musbat bo'lishi kerak: %d", cfg.CacheSize)
	}
	if cfg.TranscriptMax <= 0 {
		return fmt.Errorf("TRANSCRIPT_MAX_TURNS musbat bo'lishi kerak: %d", cfg.TranscriptMax)
	}
	if cfg.GeminiMaxRetries < 1 {
		return fmt.Errorf("GEMINI_MAX_RETRIES kamida 1 bo'lishi kerak: %d", cfg.GeminiMaxRetries)
	}
	if cfg.GeminiRetryDelay < 0 {
		return fmt.Errorf("GEMINI_RETRY_DELAY manfiy bo'lmasligi kerak")
	}
	switch cfg.CacheBackend {
	case CacheBackendMemory:
	case CacheBackendRedis:
		if strings.TrimSpace(cfg.Redis.Addr) == "" {
			return fmt.Errorf("CACHE_BACKEND=redis uchun REDIS_ADDR kerak")
		}
	default:
		return fmt.Errorf("noma'lum CACHE_BACKEND: %q", cfg.CacheBackend)
	}
	return nil
}
