package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yourusername/career-advisor/internal/domain/constants"
	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/domain/repository"
	"github.com/yourusername/career-advisor/internal/i18n"
	"github.com/yourusername/career-advisor/pkg/apperrors"
	"github.com/yourusername/career-advisor/pkg/logger"
)

// ErrMissingInput interests yoki skills bo'sh
var ErrMissingInput = errors.New("interests and skills are required")

// Request natijalari (metrics label)
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

// Suggestion bitta so'rov natijasi
type Suggestion struct {
	Markup string `json:"markup"`
	// PromptGrades promptga tushgan 0-10 shkaladagi baholar
	PromptGrades map[string]float64 `json:"prompt_grades,omitempty"`
	Cached       bool               `json:"cached"`
	Failed       bool               `json:"failed"`
}

// PipelineMetrics pipeline hodisalarini qayd qiladi
type PipelineMetrics interface {
	RequestServed(result string)
	CacheEntries(n int)
	AICall(outcome string, d time.Duration)
	AIError(code string)
}

// SuggestionUseCase tavsiya so'rovi pipeline'i
type SuggestionUseCase interface {
	// RequestSuggestions har doim ko'rsatsa bo'ladigan matn qaytaradi: markup yoki lokalizatsiyalangan xato.
	RequestSuggestions(ctx context.Context, profile entity.UserProfile) string
	// Suggest validatsiya qiladi, bo'sh input uchun ErrMissingInput.
	Suggest(ctx context.Context, profile entity.UserProfile) (*Suggestion, error)
	BuildPrompt(profile entity.UserProfile) string
}

type suggestionUseCase struct {
	conversation repository.ConversationRepository
	cache        repository.SuggestionCache
	grading      GradingUseCase
	prompts      *PromptBuilder
	metrics      PipelineMetrics
	log          logger.Logger
	group        singleflight.Group
}

// NewSuggestionUseCase yangi SuggestionUseCase yaratish. metrics nil bo'lishi mumkin.
func NewSuggestionUseCase(
	conversation repository.ConversationRepository,
	cache repository.SuggestionCache,
	grading GradingUseCase,
	metrics PipelineMetrics,
	log logger.Logger,
) SuggestionUseCase {
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &suggestionUseCase{
		conversation: conversation,
		cache:        cache,
		grading:      grading,
		prompts:      NewPromptBuilder(grading),
		metrics:      metrics,
		log:          log.With(map[string]interface{}{"component": "suggestions"}),
	}
}

func (u *suggestionUseCase) BuildPrompt(profile entity.UserProfile) string {
	return u.prompts.Build(withDefaults(profile))
}

func (u *suggestionUseCase) RequestSuggestions(ctx context.Context, profile entity.UserProfile) string {
	return u.resolve(ctx, withDefaults(profile)).Markup
}

func (u *suggestionUseCase) Suggest(ctx context.Context, profile entity.UserProfile) (*Suggestion, error) {
	if !profile.HasRequiredInput() {
		return nil, ErrMissingInput
	}
	profile = withDefaults(profile)
	res := u.resolve(ctx, profile)
	if profile.IsStudent {
		res.PromptGrades = u.grading.Normalize(profile.Country, profile.SubjectGrades)
	}
	return res, nil
}

type flightResult struct {
	markup    string
	fromCache bool
}

func (u *suggestionUseCase) resolve(ctx context.Context, profile entity.UserProfile) *Suggestion {
	key := SuggestionCacheKey(profile)

	if markup, ok := u.lookup(ctx, key); ok {
		u.metrics.RequestServed(ResultHit)
		return &Suggestion{Markup: markup, Cached: true}
	}

	// Bir xil kortej bilan parallel so'rovlar bitta tashqi chaqiruvni kutadi
	v, err, shared := u.group.Do(key, func() (interface{}, error) {
		if markup, ok := u.lookup(ctx, key); ok {
			return flightResult{markup: markup, fromCache: true}, nil
		}
		markup, err := u.fetch(ctx, key, profile)
		if err != nil {
			return nil, err
		}
		return flightResult{markup: markup}, nil
	})
	if err != nil {
		code := apperrors.CodeOf(err)
		u.log.WithError(err).Error("AI suggestion request failed", map[string]interface{}{
			"code":     string(code),
			"key":      shortKey(key),
			"country":  profile.Country,
			"language": string(profile.Language),
			"shared":   shared,
		})
		u.metrics.RequestServed(ResultError)
		return &Suggestion{Markup: i18n.Translate(profile.Language, "ai_error"), Failed: true}
	}

	res := v.(flightResult)
	if res.fromCache {
		u.metrics.RequestServed(ResultHit)
	} else {
		u.metrics.RequestServed(ResultMiss)
	}
	return &Suggestion{Markup: res.markup, Cached: res.fromCache}
}

func (u *suggestionUseCase) lookup(ctx context.Context, key string) (string, bool) {
	markup, ok, err := u.cache.Get(ctx, key)
	if err != nil {
		u.log.WithError(err).Warn("suggestion cache read failed", map[string]interface{}{"key": shortKey(key)})
		return "", false
	}
	return markup, ok
}

func (u *suggestionUseCase) fetch(ctx context.Context, key string, profile entity.UserProfile) (string, error) {
	prompt := u.prompts.Build(profile)

	start := time.Now()
	reply, err := u.conversation.Send(ctx, prompt)
	elapsed := time.Since(start)
	if err != nil {
		u.metrics.AICall("error", elapsed)
		u.metrics.AIError(string(apperrors.CodeOf(err)))
		return "", err
	}
	u.metrics.AICall("ok", elapsed)

	markup := FormatSuggestions(reply)

	// Faqat muvaffaqiyatli javob keshlanadi
	if err := u.cache.Set(ctx, key, markup); err != nil {
		u.log.WithError(err).Warn("suggestion cache write failed", map[string]interface{}{"key": shortKey(key)})
	} else if n, err := u.cache.Len(ctx); err == nil {
		u.metrics.CacheEntries(n)
	}

	u.log.Debug("suggestions generated", map[string]interface{}{
		"key":         shortKey(key),
		"duration_ms": elapsed.Milliseconds(),
		"reply_bytes": len(reply),
	})
	return markup, nil
}

func withDefaults(p entity.UserProfile) entity.UserProfile {
	if p.Language == "" {
		p.Language = entity.Language(constants.DefaultLanguage)
	}
	return p
}

type noopMetrics struct{}

func (noopMetrics) RequestServed(string)         {}
func (noopMetrics) CacheEntries(int)             {}
func (noopMetrics) AICall(string, time.Duration) {}
func (noopMetrics) AIError(string)               {}
