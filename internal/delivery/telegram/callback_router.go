package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/i18n"
)

// Callback query larini qayta ishlash
func (h *BotHandler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	if cq.From == nil || cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	h.answerCallback(cq.ID)

	userID := cq.From.ID
	chatID := cq.Message.Chat.ID
	data := cq.Data

	switch {
	case strings.HasPrefix(data, cbLang):
		h.handleLanguageCallback(userID, chatID, entity.Language(strings.TrimPrefix(data, cbLang)))
	case strings.HasPrefix(data, cbStudent):
		h.handleStudentCallback(userID, chatID, strings.TrimPrefix(data, cbStudent) == "yes")
	case strings.HasPrefix(data, cbCountry):
		h.handleCountryCallback(ctx, userID, chatID, strings.TrimPrefix(data, cbCountry))
	default:
		h.log.Debug("unknown callback", map[string]interface{}{"data": data, "user_id": userID})
	}
}

// handleLanguageCallback tilni saqlaydi; forma ochiq bo'lsa joriy savolni yangi tilda qaytaradi
func (h *BotHandler) handleLanguageCallback(userID, chatID int64, lang entity.Language) {
	if !i18n.Supported(lang) {
		return
	}
	h.setUserLang(userID, lang)

	s, ok := h.getSession(userID)
	if !ok {
		s = h.startSession(userID, lang)
		h.askCurrentStep(chatID, s)
		return
	}
	if s.Stage != stageWaiting {
		s.Profile.Language = lang
		h.saveSession(userID, s)
	}
	h.askCurrentStep(chatID, s)
}

func (h *BotHandler) handleStudentCallback(userID, chatID int64, isStudent bool) {
	s, ok := h.getSession(userID)
	if !ok || s.Stage != stageStudent {
		return
	}
	s.Profile.IsStudent = isStudent
	s.Stage = stageInterests
	h.saveSession(userID, s)
	h.askInterests(chatID, s.Profile.Language)
}

func (h *BotHandler) handleCountryCallback(ctx context.Context, userID, chatID int64, id string) {
	s, ok := h.getSession(userID)
	if !ok || s.Stage != stageCountry {
		return
	}
	country, ok := h.grading.Country(id)
	if !ok {
		h.askCountry(chatID, s.Profile.Language)
		return
	}
	s.Profile.Country = country.Name

	if !s.Profile.IsStudent {
		h.submit(ctx, userID, chatID, s)
		return
	}
	s.Stage = stageGrades
	s.Subjects = country.Subjects
	s.SubjectIdx = 0
	s.Profile.SubjectGrades = make(map[string]float64, len(country.Subjects))
	h.saveSession(userID, s)
	h.askGrade(chatID, s)
}
