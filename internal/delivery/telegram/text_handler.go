package telegram

import (
	"context"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/career-advisor/internal/i18n"
)

// handleTextMessage oddiy matnni joriy bosqichga qarab qabul qiladi
func (h *BotHandler) handleTextMessage(ctx context.Context, from *tgbotapi.User, chatID int64, text string) {
	userID := from.ID
	s, ok := h.getSession(userID)
	if !ok {
		h.sendLanguageSelector(chatID)
		return
	}
	lang := s.Profile.Language
	input := strings.TrimSpace(text)

	switch s.Stage {
	case stageInterests, stageSkills:
		if input == "" {
			h.sendMessage(chatID, i18n.Translate(lang, "input_warning"))
			h.askCurrentStep(chatID, s)
			return
		}
		if s.Stage == stageInterests {
			s.Profile.Interests = input
			s.Stage = stageSkills
		} else {
			s.Profile.Skills = input
			s.Stage = stageCountry
		}
		h.saveSession(userID, s)
		h.askCurrentStep(chatID, s)
	case stageGrades:
		h.acceptGrade(ctx, userID, chatID, s, input)
	default:
		// tugma kutilmoqda yoki javob tayyorlanmoqda
		h.askCurrentStep(chatID, s)
	}
}

// acceptGrade bahoni shkalaga keltirib saqlaydi; oxirgi fandan keyin so'rov yuboriladi
func (h *BotHandler) acceptGrade(ctx context.Context, userID, chatID int64, s profileSession, input string) {
	subject, ok := s.currentSubject()
	if !ok {
		h.submit(ctx, userID, chatID, s)
		return
	}
	v, err := parseGrade(input)
	if err != nil {
		h.sendMessage(chatID, i18n.Translate(s.Profile.Language, "bot_invalid_grade"))
		h.askGrade(chatID, s)
		return
	}
	s.Profile.SubjectGrades[subject] = h.grading.Clamp(s.Profile.Country, v)
	s.SubjectIdx++
	if _, more := s.currentSubject(); more {
		h.saveSession(userID, s)
		h.askGrade(chatID, s)
		return
	}
	h.submit(ctx, userID, chatID, s)
}

// parseGrade "7,5" va "7.5" ikkalasini ham qabul qiladi
func parseGrade(input string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(input), ",", "."), 64)
}
