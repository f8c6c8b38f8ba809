package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yourusername/career-advisor/internal/domain/entity"
)

func baseProfile() entity.UserProfile {
	return entity.UserProfile{
		Interests: "math",
		Skills:    "coding",
		Country:   "Venezuela",
		IsStudent: true,
		SubjectGrades: map[string]float64{
			"Matemáticas": 15,
			"Historia":    12,
			"Inglés":      18,
		},
		Language: entity.LanguageSpanish,
	}
}

func TestSuggestionCacheKey_OrderIndependent(t *testing.T) {
	a := baseProfile()
	b := baseProfile()
	b.SubjectGrades = map[string]float64{}
	b.SubjectGrades["Inglés"] = 18
	b.SubjectGrades["Historia"] = 12
	b.SubjectGrades["Matemáticas"] = 15

	assert.Equal(t, SuggestionCacheKey(a), SuggestionCacheKey(b))
	assert.True(t, strings.HasPrefix(SuggestionCacheKey(a), "suggestions:"))
}

func TestSuggestionCacheKey_EveryFieldMatters(t *testing.T) {
	base := SuggestionCacheKey(baseProfile())

	mutations := map[string]func(p *entity.UserProfile){
		"interests case": func(p *entity.UserProfile) { p.Interests = "Math" },
		"skills":         func(p *entity.UserProfile) { p.Skills = "coding " },
		"country":        func(p *entity.UserProfile) { p.Country = "México" },
		"language":       func(p *entity.UserProfile) { p.Language = entity.LanguageEnglish },
		"student":        func(p *entity.UserProfile) { p.IsStudent = false },
		"grade":          func(p *entity.UserProfile) { p.SubjectGrades["Historia"] = 13 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			p := baseProfile()
			mutate(&p)
			assert.NotEqual(t, base, SuggestionCacheKey(p))
		})
	}
}

func TestSuggestionCacheKey_NonStudentIgnoresGrades(t *testing.T) {
	a := baseProfile()
	a.IsStudent = false
	b := a
	b.SubjectGrades = nil
	assert.Equal(t, SuggestionCacheKey(a), SuggestionCacheKey(b))
}
