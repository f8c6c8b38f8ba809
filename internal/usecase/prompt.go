package usecase

import (
	"fmt"
	"strings"

	"github.com/yourusername/career-advisor/internal/domain/entity"
)

// promptTemplate javobni formatlash shu tuzilishga tayanadi, matnni o'zgartirmang.
// Indentatsiya va bo'sh qatorlardagi bo'shliqlar ham shablonning bir qismi.
const promptTemplate = `
    Basándote en la siguiente información de %[1]s, sugiere posibles trayectorias educativas y profesionales:
    
    Intereses: %[2]s
    Habilidades: %[3]s
    País: %[4]s
    %[5]s
    %[6]s
    
    Por favor, proporciona 5-8 sugerencias de trayectorias educativas y profesionales que se ajusten al perfil %[7]s y sean relevantes para el mercado laboral en %[4]s.
    Para cada sugerencia, incluye:
    1. El nombre de la carrera o trayectoria profesional.
    2. Una breve explicación de por qué sería adecuada, considerando el contexto de %[4]s.
    3. El rango de ingresos aproximados que se pueden esperar en esta carrera en %[4]s (expresado en la moneda local y en dólares estadounidenses anuales).
    4. Los 2-3 trabajos más comunes o populares dentro de esta trayectoria profesional en %[4]s.

    Proporciona la respuesta en %[8]s.
    `

// PromptBuilder profil -> Gemini uchun matn
type PromptBuilder struct {
	grading GradingUseCase
}

func NewPromptBuilder(grading GradingUseCase) *PromptBuilder {
	return &PromptBuilder{grading: grading}
}

// Build renders the fixed template. Grades are converted to the 0-10 scale and
// listed only for students.
func (b *PromptBuilder) Build(p entity.UserProfile) string {
	subject := "una persona"
	profileRef := "de la persona"
	performance := ""
	subjectsInfo := ""
	if p.IsStudent {
		subject = "un estudiante"
		profileRef = "del estudiante"
		performance = "Rendimiento académico (sistema de " + p.Country + "):"
		subjectsInfo = b.SubjectsInfo(p.Country, p.SubjectGrades)
	}
	return fmt.Sprintf(promptTemplate,
		subject, p.Interests, p.Skills, p.Country,
		performance, subjectsInfo, profileRef, string(p.Language))
}

// SubjectsInfo "<fan>: <baho>/10" qatorlari, mamlakat fanlari tartibida
func (b *PromptBuilder) SubjectsInfo(country string, grades map[string]float64) string {
	canonical := b.grading.Normalize(country, grades)
	lines := make([]string, 0, len(canonical))
	for _, s := range b.grading.OrderedSubjects(country, canonical) {
		lines = append(lines, fmt.Sprintf("%s: %.1f/10", s, canonical[s]))
	}
	return strings.Join(lines, "\n")
}
