package handler

import (
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v3"

	"github.com/yourusername/career-advisor/internal/delivery/http/middleware"
	"github.com/yourusername/career-advisor/internal/delivery/http/response"
	"github.com/yourusername/career-advisor/internal/domain/constants"
	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/domain/repository"
	"github.com/yourusername/career-advisor/internal/i18n"
	"github.com/yourusername/career-advisor/internal/usecase"
)

type suggestionRequest struct {
	Interests     string             `json:"interests"`
	Skills        string             `json:"skills"`
	Country       string             `json:"country"`
	IsStudent     bool               `json:"is_student"`
	Language      string             `json:"language"`
	SubjectGrades map[string]float64 `json:"subject_grades"`
}

// APIHandler JSON API: mamlakatlar, tavsiyalar, tarjimalar, sessiya
type APIHandler struct {
	grading     usecase.GradingUseCase
	suggestions usecase.SuggestionUseCase
	transcript  repository.TranscriptRepository
}

func NewAPIHandler(grading usecase.GradingUseCase, suggestions usecase.SuggestionUseCase, transcript repository.TranscriptRepository) *APIHandler {
	return &APIHandler{grading: grading, suggestions: suggestions, transcript: transcript}
}

func (h *APIHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/countries", h.HandleListCountries)
	r.Get("/countries/export.xlsx", h.HandleExportCountries)
	r.Get("/countries/:id", h.HandleGetCountry)
	r.Post("/suggestions", h.HandleSuggest)
	r.Get("/translations/:lang", h.HandleTranslations)
	r.Get("/session/turns", h.HandleSessionTurns)
}

func (h *APIHandler) HandleListCountries(c fiber.Ctx) error {
	return response.Success(c, fiber.StatusOK, response.MessageOK, h.grading.Countries())
}

func (h *APIHandler) HandleGetCountry(c fiber.Ctx) error {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid country id", nil, err)
	}
	country, ok := h.grading.Country(id)
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, "country not found", nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, country)
}

func (h *APIHandler) HandleExportCountries(c fiber.Ctx) error {
	lang := i18n.Resolve(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
	data, err := usecase.BuildGradingTableXLSX(h.grading.Countries(), lang)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	c.Attachment("grading-scales.xlsx")
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	return c.Send(data)
}

func (h *APIHandler) HandleSuggest(c fiber.Ctx) error {
	body := c.Body()
	violations, err := validateBody(suggestionSchema, body)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid JSON body", nil, err)
	}
	if len(violations) > 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid request", violations, nil)
	}

	var req suggestionRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid JSON body", nil, err)
	}

	lang := i18n.Resolve(req.Language, c.Get(fiber.HeaderAcceptLanguage))
	profile := entity.UserProfile{
		Interests: req.Interests,
		Skills:    req.Skills,
		Country:   req.Country,
		IsStudent: req.IsStudent,
		Language:  lang,
	}
	if req.IsStudent {
		profile.SubjectGrades = clampGrades(h.grading, req.Country, req.SubjectGrades)
	}

	res, err := h.suggestions.Suggest(c.Context(), profile)
	if errors.Is(err, usecase.ErrMissingInput) {
		return middleware.NewAppError(fiber.StatusBadRequest, i18n.Translate(lang, "input_warning"), nil, err)
	}
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, res)
}

func (h *APIHandler) HandleTranslations(c fiber.Ctx) error {
	lang := entity.Language(c.Params("lang"))
	table := i18n.Table(lang)
	if table == nil {
		return middleware.NewAppError(fiber.StatusNotFound, "language not supported", i18n.Languages(), nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, table)
}

func (h *APIHandler) HandleSessionTurns(c fiber.Ctx) error {
	limit := constants.DefaultTranscriptPageSize
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return middleware.NewAppError(fiber.StatusBadRequest, "invalid limit", nil, err)
		}
		limit = n
	}
	turns, err := h.transcript.Recent(c.Context(), limit)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	total, err := h.transcript.Len(c.Context())
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, fiber.Map{
		"total": total,
		"turns": turns,
	})
}

// clampGrades xom baholarni mamlakat shkalasi chegarasiga keltiradi
func clampGrades(grading usecase.GradingUseCase, country string, raw map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for subject, v := range raw {
		out[subject] = grading.Clamp(country, v)
	}
	return out
}
