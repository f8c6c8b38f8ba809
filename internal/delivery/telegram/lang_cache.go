package telegram

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/i18n"
)

// Language helpers
func (h *BotHandler) setUserLang(userID int64, lang entity.Language) {
	if !i18n.Supported(lang) {
		lang = entity.LanguageSpanish
	}
	h.langMu.Lock()
	defer h.langMu.Unlock()
	h.userLang[userID] = lang
}

// getUserLang saqlangan til, yo'q bo'lsa Telegram klient tilidan
func (h *BotHandler) getUserLang(user *tgbotapi.User) entity.Language {
	if user == nil {
		return entity.LanguageSpanish
	}
	h.langMu.RLock()
	lang, ok := h.userLang[user.ID]
	h.langMu.RUnlock()
	if ok {
		return lang
	}
	return i18n.Negotiate(user.LanguageCode)
}
