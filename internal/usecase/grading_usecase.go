package usecase

import (
	"fmt"
	"math"
	"sort"

	"github.com/yourusername/career-advisor/internal/domain/entity"
)

// GradingUseCase mamlakat baholash tizimlari va 0-10 shkalaga o'tkazish
type GradingUseCase interface {
	Countries() []entity.CountryProfile
	Country(id string) (entity.CountryProfile, bool)
	Scale(id string) entity.GradingScale
	Normalize(id string, grades map[string]float64) map[string]float64
	Clamp(id string, raw float64) float64
	Average(grades map[string]float64) float64
	PerformanceText(id string, grades map[string]float64) string
	DefaultGrades(id string) map[string]float64
	OrderedSubjects(id string, grades map[string]float64) []string
}

// fallbackScale jadvalda yo'q mamlakat uchun 1-10 shkala
var fallbackScale = entity.GradingScale{Min: 1, Max: 10, Step: 1, Default: 5}

const fallbackLabel = "/10"

var (
	scaleHundred = entity.GradingScale{Min: 0, Max: 100, Step: 1, Default: 60}
	scaleTwenty  = entity.GradingScale{Min: 0, Max: 20, Step: 1, Default: 10}
	scaleFive    = entity.GradingScale{Min: 0, Max: 5, Step: 0.1, Default: 3}
	scaleFour    = entity.GradingScale{Min: 0, Max: 4, Step: 0.1, Default: 2}
)

// Koeffitsientlar aniq shu holatda saqlanadi (Brasil x2.5 ham).
var countryTable = []entity.CountryProfile{
	{
		Name:     "México",
		Subjects: []string{"Matemáticas", "Español", "Ciencias", "Historia", "Inglés"},
		Scale:    scaleHundred,
		Factor:   0.1,
		MaxLabel: "/100",
	},
	{
		Name:     "Venezuela",
		Subjects: []string{"Matemáticas", "Castellano", "Ciencias Naturales", "Historia", "Inglés"},
		Scale:    scaleTwenty,
		Factor:   0.5,
		MaxLabel: "/20",
	},
	{
		Name:     "España",
		Subjects: []string{"Matemáticas", "Lengua Castellana y Literatura", "Ciencias Naturales", "Geografía e Historia", "Inglés"},
		Scale:    fallbackScale,
		Factor:   1,
		MaxLabel: fallbackLabel,
	},
	{
		Name:     "Colombia",
		Subjects: []string{"Matemáticas", "Lenguaje", "Ciencias Naturales", "Ciencias Sociales", "Inglés"},
		Scale:    scaleFive,
		Factor:   2,
		MaxLabel: "/5.0",
	},
	{
		Name:     "Estados Unidos",
		Subjects: []string{"Math", "English", "Science", "Social Studies", "Foreign Language"},
		Scale:    scaleFive,
		Factor:   2,
		MaxLabel: "/5.0",
	},
	{
		Name:     "Brasil",
		Subjects: []string{"Matemática", "Português", "Ciências", "História", "Inglês"},
		Scale:    scaleFour,
		Factor:   2.5,
		MaxLabel: "/4.0",
	},
	{
		Name:     "Italia",
		Subjects: []string{"Matematica", "Italiano", "Scienze", "Storia", "Inglese"},
		Scale:    fallbackScale,
		Factor:   1,
		MaxLabel: fallbackLabel,
	},
}

type gradingUseCase struct {
	byName map[string]int
}

// NewGradingUseCase yangi GradingUseCase yaratish
func NewGradingUseCase() GradingUseCase {
	byName := make(map[string]int, len(countryTable))
	for i, c := range countryTable {
		byName[c.Name] = i
	}
	return &gradingUseCase{byName: byName}
}

// Countries jadval tartibida, chaqiruvchi o'zgartira olmasligi uchun nusxa
func (g *gradingUseCase) Countries() []entity.CountryProfile {
	out := make([]entity.CountryProfile, len(countryTable))
	for i, c := range countryTable {
		out[i] = cloneCountry(c)
	}
	return out
}

func (g *gradingUseCase) Country(id string) (entity.CountryProfile, bool) {
	idx, ok := g.byName[id]
	if !ok {
		return entity.CountryProfile{}, false
	}
	return cloneCountry(countryTable[idx]), true
}

func (g *gradingUseCase) Scale(id string) entity.GradingScale {
	if idx, ok := g.byName[id]; ok {
		return countryTable[idx].Scale
	}
	return fallbackScale
}

func (g *gradingUseCase) factor(id string) float64 {
	if idx, ok := g.byName[id]; ok {
		return countryTable[idx].Factor
	}
	return 1
}

// Normalize xom baholarni 0-10 shkalaga o'tkazadi. Noma'lum mamlakat -> o'zgarishsiz.
func (g *gradingUseCase) Normalize(id string, grades map[string]float64) map[string]float64 {
	f := g.factor(id)
	out := make(map[string]float64, len(grades))
	for subject, grade := range grades {
		out[subject] = grade * f
	}
	return out
}

// Clamp qiymatni [min,max] oralig'iga keltirib, min dan boshlab eng yaqin step ga tekislaydi.
func (g *gradingUseCase) Clamp(id string, raw float64) float64 {
	s := g.Scale(id)
	if math.IsNaN(raw) {
		return s.Default
	}
	if raw <= s.Min {
		return s.Min
	}
	if raw >= s.Max {
		return s.Max
	}
	if s.Step <= 0 {
		return raw
	}
	steps := math.Round((raw - s.Min) / s.Step)
	v := s.Min + steps*s.Step
	// 0.1 qadamda float shovqinini kesish (2.3000000000000003)
	v = math.Round(v*1e6) / 1e6
	return math.Min(v, s.Max)
}

func (g *gradingUseCase) Average(grades map[string]float64) float64 {
	if len(grades) == 0 {
		return 0
	}
	var sum float64
	for _, v := range grades {
		sum += v
	}
	return sum / float64(len(grades))
}

// PerformanceText o'rtacha xom baho mamlakat shkalasi yorlig'i bilan, masalan "7.4/20"
func (g *gradingUseCase) PerformanceText(id string, grades map[string]float64) string {
	label := fallbackLabel
	if idx, ok := g.byName[id]; ok {
		label = countryTable[idx].MaxLabel
	}
	return fmt.Sprintf("%.1f%s", g.Average(grades), label)
}

func (g *gradingUseCase) DefaultGrades(id string) map[string]float64 {
	idx, ok := g.byName[id]
	if !ok {
		return map[string]float64{}
	}
	c := countryTable[idx]
	out := make(map[string]float64, len(c.Subjects))
	for _, s := range c.Subjects {
		out[s] = c.Scale.Default
	}
	return out
}

// OrderedSubjects avval mamlakat fanlari tartibida, keyin qolganlari alifbo bo'yicha
func (g *gradingUseCase) OrderedSubjects(id string, grades map[string]float64) []string {
	out := make([]string, 0, len(grades))
	seen := make(map[string]bool, len(grades))
	if idx, ok := g.byName[id]; ok {
		for _, s := range countryTable[idx].Subjects {
			if _, has := grades[s]; has {
				out = append(out, s)
				seen[s] = true
			}
		}
	}
	extra := make([]string, 0, len(grades)-len(out))
	for s := range grades {
		if !seen[s] {
			extra = append(extra, s)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

func cloneCountry(c entity.CountryProfile) entity.CountryProfile {
	c.Subjects = append([]string(nil), c.Subjects...)
	return c
}
