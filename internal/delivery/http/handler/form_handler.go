package handler

import (
	"bytes"
	"embed"
	"html/template"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/yourusername/career-advisor/internal/delivery/http/middleware"
	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/i18n"
	"github.com/yourusername/career-advisor/internal/usecase"
)

//go:embed templates/form.html
var templatesFS embed.FS

var formTemplate = template.Must(template.ParseFS(templatesFS, "templates/form.html"))

const gradeFieldPrefix = "grade_"

type countryOption struct {
	ID       string
	Label    string
	Selected bool
}

type gradeField struct {
	Subject string
	Label   string
	Value   string
}

type formView struct {
	Lang        entity.Language
	T           map[string]string
	Languages   []i18n.Option
	Countries   []countryOption
	IsStudent   bool
	Interests   string
	Skills      string
	Min         string
	Max         string
	Step        string
	Grades      []gradeField
	Performance string
	Warning     string
	HasResult   bool
	Result      template.HTML
}

// FormHandler server tomonda chiziladigan forma (GET/POST /)
type FormHandler struct {
	grading     usecase.GradingUseCase
	suggestions usecase.SuggestionUseCase
}

func NewFormHandler(grading usecase.GradingUseCase, suggestions usecase.SuggestionUseCase) *FormHandler {
	return &FormHandler{grading: grading, suggestions: suggestions}
}

func (h *FormHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/", h.HandleForm)
	r.Post("/", h.HandleSubmit)
}

// HandleForm bo'sh forma: baholar shkala default qiymatida
func (h *FormHandler) HandleForm(c fiber.Ctx) error {
	lang := i18n.Resolve(c.Query("lang"), c.Get(fiber.HeaderAcceptLanguage))
	profile := entity.UserProfile{
		Country:   h.countryOrDefault(c.Query("country")),
		IsStudent: c.Query("student") != "no",
		Language:  lang,
	}
	profile.SubjectGrades = h.grading.DefaultGrades(profile.Country)
	return h.render(c, h.view(profile))
}

func (h *FormHandler) HandleSubmit(c fiber.Ctx) error {
	lang := i18n.Resolve(c.FormValue("lang"), c.Get(fiber.HeaderAcceptLanguage))
	country := h.countryOrDefault(c.FormValue("country"))
	profile := entity.UserProfile{
		Interests: c.FormValue("interests"),
		Skills:    c.FormValue("skills"),
		Country:   country,
		IsStudent: c.FormValue("student") != "no",
		Language:  lang,
	}
	profile.SubjectGrades = h.readGrades(c, country)

	v := h.view(profile)
	if !profile.HasRequiredInput() {
		v.Warning = i18n.Translate(lang, "input_warning")
		return h.render(c, v)
	}

	if !profile.IsStudent {
		profile.SubjectGrades = nil
	}
	markup := h.suggestions.RequestSuggestions(c.Context(), profile)
	v.HasResult = true
	// pipeline matnni o'zi escape qiladi
	v.Result = template.HTML(markup)
	return h.render(c, v)
}

// readGrades forma qiymatlari shkalaga keltiriladi, bo'sh yoki noto'g'ri bo'lsa default
func (h *FormHandler) readGrades(c fiber.Ctx, country string) map[string]float64 {
	grades := h.grading.DefaultGrades(country)
	for subject := range grades {
		raw := strings.TrimSpace(c.FormValue(gradeFieldPrefix + subject))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(raw, ",", "."), 64)
		if err != nil {
			continue
		}
		grades[subject] = h.grading.Clamp(country, v)
	}
	return grades
}

func (h *FormHandler) countryOrDefault(id string) string {
	if _, ok := h.grading.Country(id); ok {
		return id
	}
	return h.grading.Countries()[0].Name
}

func (h *FormHandler) view(p entity.UserProfile) formView {
	scale := h.grading.Scale(p.Country)
	v := formView{
		Lang:      p.Language,
		T:         i18n.Table(p.Language),
		Languages: i18n.Languages(),
		IsStudent: p.IsStudent,
		Interests: p.Interests,
		Skills:    p.Skills,
		Min:       formatNumber(scale.Min),
		Max:       formatNumber(scale.Max),
		Step:      formatNumber(scale.Step),
	}
	for _, c := range h.grading.Countries() {
		v.Countries = append(v.Countries, countryOption{
			ID:       c.Name,
			Label:    i18n.Translate(p.Language, c.Name),
			Selected: c.Name == p.Country,
		})
	}
	if country, ok := h.grading.Country(p.Country); ok {
		for _, s := range country.Subjects {
			v.Grades = append(v.Grades, gradeField{
				Subject: s,
				Label:   i18n.Translate(p.Language, s),
				Value:   formatNumber(p.SubjectGrades[s]),
			})
		}
	}
	if p.IsStudent {
		v.Performance = i18n.Format(p.Language, "current_performance", map[string]string{
			"performance": h.grading.PerformanceText(p.Country, p.SubjectGrades),
		})
	}
	return v
}

func (h *FormHandler) render(c fiber.Ctx, v formView) error {
	var buf bytes.Buffer
	if err := formTemplate.Execute(&buf, v); err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "", nil, err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
