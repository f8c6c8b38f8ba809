package app

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yourusername/career-advisor/internal/delivery/http/middleware"
	"github.com/yourusername/career-advisor/internal/delivery/http/routes"
	"github.com/yourusername/career-advisor/internal/domain/repository"
	"github.com/yourusername/career-advisor/internal/usecase"
	"github.com/yourusername/career-advisor/pkg/logger"
)

// Deps HTTP ilovasi uchun bog'liqliklar
type Deps struct {
	Grading     usecase.GradingUseCase
	Suggestions usecase.SuggestionUseCase
	Transcript  repository.TranscriptRepository
	Gatherer    prometheus.Gatherer
	Log         logger.Logger
}

type App struct {
	Fiber *fiber.App
}

func New(deps Deps) *App {
	f := fiber.New(fiber.Config{AppName: "career-advisor"})

	registerGlobalMiddleware(f, deps.Log)
	routes.NewRegistry(deps.Grading, deps.Suggestions, deps.Transcript, deps.Gatherer).Register(f)

	return &App{Fiber: f}
}

func registerGlobalMiddleware(app *fiber.App, log logger.Logger) {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	app.Use(middleware.NewAccessLogMiddleware(log.With(map[string]interface{}{"component": "http"})).Middleware())
	app.Use(middleware.NewErrorMiddleware(log).Middleware())
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
