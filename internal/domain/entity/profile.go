package entity

import "strings"

// Language suggestion javobi qaytariladigan til kodi
type Language string

const (
	LanguageSpanish    Language = "es"
	LanguageEnglish    Language = "en"
	LanguagePortuguese Language = "pt"
	LanguageItalian    Language = "it"
)

// UserProfile bitta forma yuborilishidagi foydalanuvchi ma'lumotlari.
// SubjectGrades faqat IsStudent bo'lganda ahamiyatga ega va xom (mamlakat shkalasidagi) baholarni saqlaydi.
type UserProfile struct {
	Interests     string             `json:"interests"`
	Skills        string             `json:"skills"`
	Country       string             `json:"country"`
	IsStudent     bool               `json:"is_student"`
	SubjectGrades map[string]float64 `json:"subject_grades,omitempty"`
	Language      Language           `json:"language"`
}

// HasRequiredInput interests va skills bo'sh emasligini tekshiradi
func (p UserProfile) HasRequiredInput() bool {
	return strings.TrimSpace(p.Interests) != "" && strings.TrimSpace(p.Skills) != ""
}

// EffectiveGrades returns the grades that take part in the request: none for non-students.
func (p UserProfile) EffectiveGrades() map[string]float64 {
	if !p.IsStudent {
		return nil
	}
	return p.SubjectGrades
}
