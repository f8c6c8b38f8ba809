package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	"github.com/yourusername/career-advisor/internal/domain/entity"
)

const suggestionKeyPrefix = "suggestions:"

type gradePair struct {
	Subject string  `json:"subject"`
	Grade   float64 `json:"grade"`
}

type suggestionCacheKeyInput struct {
	Interests string          `json:"interests"`
	Skills    string          `json:"skills"`
	Grades    []gradePair     `json:"grades"`
	Country   string          `json:"country"`
	Language  entity.Language `json:"language"`
	IsStudent bool            `json:"is_student"`
}

// SuggestionCacheKey profilning aniq kortejidan kalit. Matn o'zgartirilmaydi
// (katta-kichik harf ham), baholar fan nomi bo'yicha saralanadi.
func SuggestionCacheKey(p entity.UserProfile) string {
	grades := p.EffectiveGrades()
	pairs := make([]gradePair, 0, len(grades))
	for s, g := range grades {
		pairs = append(pairs, gradePair{Subject: s, Grade: g})
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].Subject < pairs[j].Subject })

	in := suggestionCacheKeyInput{
		Interests: p.Interests,
		Skills:    p.Skills,
		Grades:    pairs,
		Country:   p.Country,
		Language:  p.Language,
		IsStudent: p.IsStudent,
	}

	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return suggestionKeyPrefix + hex.EncodeToString(sum[:])
}

// shortKey loglar uchun
func shortKey(key string) string {
	const n = len(suggestionKeyPrefix) + 12
	if len(key) <= n {
		return key
	}
	return key[:n]
}
