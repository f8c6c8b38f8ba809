package routes

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yourusername/career-advisor/internal/delivery/http/handler"
	"github.com/yourusername/career-advisor/internal/domain/repository"
	"github.com/yourusername/career-advisor/internal/usecase"
)

type Registry struct {
	health   *handler.HealthHandler
	form     *handler.FormHandler
	api      *handler.APIHandler
	gatherer prometheus.Gatherer
}

// NewRegistry gatherer nil bo'lsa /metrics ro'yxatdan o'tmaydi
func NewRegistry(
	grading usecase.GradingUseCase,
	suggestions usecase.SuggestionUseCase,
	transcript repository.TranscriptRepository,
	gatherer prometheus.Gatherer,
) *Registry {
	return &Registry{
		health:   handler.NewHealthHandler(),
		form:     handler.NewFormHandler(grading, suggestions),
		api:      handler.NewAPIHandler(grading, suggestions, transcript),
		gatherer: gatherer,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	r.form.RegisterRoutes(app)
	r.api.RegisterRoutes(app.Group("/api/v1"))

	if r.gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})))
	}
}
