package telegram

import (
	"context"

	"github.com/yourusername/career-advisor/internal/i18n"
)

// submit to'ldirilgan profilni worker pool navbatiga qo'yadi
func (h *BotHandler) submit(ctx context.Context, userID, chatID int64, s profileSession) {
	lang := s.Profile.Language
	s.Stage = stageWaiting
	h.saveSession(userID, s)

	if s.Profile.IsStudent {
		h.sendMessage(chatID, i18n.Format(lang, "current_performance", map[string]string{
			"performance": h.grading.PerformanceText(s.Profile.Country, s.Profile.SubjectGrades),
		}))
	}
	h.sendMessage(chatID, i18n.Translate(lang, "generating_suggestions"))

	job := suggestionJob{userID: userID, chatID: chatID, profile: s.Profile}
	if !h.workerPool.submit(job) {
		h.log.Warn("suggestion queue full", map[string]interface{}{"user_id": userID})
		h.dropSession(userID)
		h.sendMessage(chatID, i18n.Translate(lang, "ai_error"))
	}
}

// deliver pipeline natijasini (markup yoki xato matni) foydalanuvchiga yuboradi
func (h *BotHandler) deliver(ctx context.Context, job suggestionJob) {
	markup := h.suggestions.RequestSuggestions(ctx, job.profile)
	h.dropSession(job.userID)

	lang := job.profile.Language
	h.sendHTML(job.chatID, "<b>"+escapeHTML(i18n.Translate(lang, "trajectory_suggestions"))+"</b>\n\n"+toTelegramHTML(markup))
}
