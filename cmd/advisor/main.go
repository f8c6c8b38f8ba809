package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/yourusername/career-advisor/config"
	"github.com/yourusername/career-advisor/internal/app"
	"github.com/yourusername/career-advisor/internal/delivery/telegram"
	"github.com/yourusername/career-advisor/internal/domain/repository"
	"github.com/yourusername/career-advisor/internal/infrastructure/cache"
	"github.com/yourusername/career-advisor/internal/infrastructure/gemini"
	"github.com/yourusername/career-advisor/internal/infrastructure/metrics"
	"github.com/yourusername/career-advisor/internal/infrastructure/storage"
	"github.com/yourusername/career-advisor/internal/usecase"
	"github.com/yourusername/career-advisor/pkg/logger"
)

const (
	redisNamespace  = "career-advisor"
	shutdownTimeout = 10 * time.Second
)

func main() {
	// Konfiguratsiyani yuklash
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	appLog := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// run ichidagi defer lar os.Exit dan oldin ishlab bo'ladi
	if err := run(cfg, appLog, sigChan); err != nil {
		appLog.WithError(err).Error("career advisor failed", nil)
		_ = appLog.Sync()
		os.Exit(1)
	}
	_ = appLog.Sync()
}

// run servislarni yig'adi va stop kelguncha yoki server xatosigacha ishlaydi
func run(cfg *config.Config, appLog logger.Logger, stop <-chan os.Signal) error {
	appLog.Info("starting career advisor", map[string]interface{}{
		"port":          cfg.HTTPPort,
		"cache_backend": cfg.CacheBackend,
		"telegram":      cfg.TelegramEnabled(),
	})

	if cfg.AllowEmptySecrets && isEmptyOrDisabled(cfg.GeminiAPIKey) {
		appLog.Warn("GEMINI_API_KEY missing, service idle until stopped", nil)
		<-stop
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Dependencies ni yaratish (Dependency Injection)

	// 1. Sessiya tarixi
	transcript := storage.NewMemoryTranscriptRepository(cfg.TranscriptMax)

	// 2. Suggestion kesh
	suggestionCache, closeCache, err := buildCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("suggestion cache init: %w", err)
	}
	defer closeCache()

	// 3. Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	pipelineMetrics := metrics.NewPipeline(registry)

	// 4. Gemini chat session (jarayon davomida bitta)
	session, err := gemini.NewChatSession(ctx, gemini.Options{
		APIKey:     cfg.GeminiAPIKey,
		Model:      cfg.GeminiModel,
		MaxRetries: cfg.GeminiMaxRetries,
		RetryDelay: cfg.GeminiRetryDelay,
	}, transcript, appLog)
	if err != nil {
		return fmt.Errorf("gemini session init: %w", err)
	}
	defer session.Close()

	// 5. Use cases
	grading := usecase.NewGradingUseCase()
	suggestions := usecase.NewSuggestionUseCase(session, suggestionCache, grading, pipelineMetrics, appLog)

	// 6. HTTP
	web := app.New(app.Deps{
		Grading:     grading,
		Suggestions: suggestions,
		Transcript:  transcript,
		Gatherer:    registry,
		Log:         appLog,
	})
	addr, err := app.ListenAddr(cfg.HTTPPort)
	if err != nil {
		return fmt.Errorf("invalid HTTP port: %w", err)
	}

	// 7. Telegram bot (ixtiyoriy), listen dan oldin: xato bo'lsa server ochilmaydi
	var botHandler *telegram.BotHandler
	if cfg.TelegramEnabled() && !isEmptyOrDisabled(cfg.TelegramToken) {
		botHandler, err = telegram.NewBotHandler(cfg.TelegramToken, grading, suggestions, appLog)
		if err != nil {
			return fmt.Errorf("telegram bot init: %w", err)
		}
		appLog.Info("telegram bot ready", map[string]interface{}{"username": botHandler.GetBotUsername()})
	}

	errCh := make(chan error, 2)
	go func() {
		errCh <- web.Fiber.Listen(addr)
	}()
	if botHandler != nil {
		go func() {
			if err := botHandler.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				errCh <- err
			}
		}()
	}

	// Signal kutish
	var runErr error
	select {
	case err := <-errCh:
		if err != nil {
			runErr = fmt.Errorf("server: %w", err)
		}
	case <-stop:
		appLog.Info("shutdown signal received", nil)
	}

	// Graceful shutdown
	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := web.Fiber.ShutdownWithContext(shutdownCtx); err != nil {
		appLog.WithError(err).Warn("shutdown error", nil)
	}
	appLog.Info("stopped", nil)
	return runErr
}

// buildCache CACHE_BACKEND bo'yicha kesh va uni yopuvchi funksiya
func buildCache(ctx context.Context, cfg *config.Config) (repository.SuggestionCache, func(), error) {
	if cfg.CacheBackend != config.CacheBackendRedis {
		c, err := storage.NewMemorySuggestionCache(cfg.CacheSize)
		return c, func() {}, err
	}
	client, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	return cache.NewRedisSuggestionCache(client, redisNamespace, cfg.CacheSize), func() { _ = client.Close() }, nil
}

func isEmptyOrDisabled(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return true
	}
	return strings.EqualFold(value, "disabled")
}
