package telegram

import (
	"github.com/yourusername/career-advisor/internal/domain/entity"
)

// Profil to'ldirish bosqichlari
const (
	stageStudent   = "student"
	stageInterests = "interests"
	stageSkills    = "skills"
	stageCountry   = "country"
	stageGrades    = "grades"
	// stageWaiting javob tayyorlanmoqda, yangi input qabul qilinmaydi
	stageWaiting = "waiting"
)

// Callback data prefikslari
const (
	cbLang    = "lang|"
	cbStudent = "student|"
	cbCountry = "country|"
)

// profileSession bitta foydalanuvchi to'ldirayotgan forma holati
type profileSession struct {
	Stage   string
	Profile entity.UserProfile
	// SubjectIdx keyingi so'raladigan fan indeksi (Subjects ichida)
	SubjectIdx int
	Subjects   []string
}

// currentSubject grades bosqichida so'ralayotgan fan
func (s profileSession) currentSubject() (string, bool) {
	if s.SubjectIdx < 0 || s.SubjectIdx >= len(s.Subjects) {
		return "", false
	}
	return s.Subjects[s.SubjectIdx], true
}

// cloneSession map va slice larni nusxalaydi
func cloneSession(s profileSession) profileSession {
	out := s
	if s.Profile.SubjectGrades != nil {
		out.Profile.SubjectGrades = make(map[string]float64, len(s.Profile.SubjectGrades))
		for k, v := range s.Profile.SubjectGrades {
			out.Profile.SubjectGrades[k] = v
		}
	}
	if s.Subjects != nil {
		out.Subjects = append([]string(nil), s.Subjects...)
	}
	return out
}

// suggestionJob worker pool navbatidagi so'rov
type suggestionJob struct {
	userID  int64
	chatID  int64
	profile entity.UserProfile
}
