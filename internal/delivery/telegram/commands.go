package telegram

import (
	"context"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/career-advisor/internal/i18n"
)

// handleCommand komandalarni qayta ishlash
func (h *BotHandler) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	userID := message.From.ID
	chatID := message.Chat.ID
	lang := h.getUserLang(message.From)

	switch extractCommand(message) {
	case "start":
		// Har doim til tanlash menyusidan boshlanadi
		if s, ok := h.getSession(userID); ok && s.Stage == stageWaiting {
			h.sendMessage(chatID, i18n.Translate(lang, "bot_busy"))
			return
		}
		h.dropSession(userID)
		h.sendLanguageSelector(chatID)
	case "lang":
		h.sendLanguageSelector(chatID)
	case "cancel":
		if s, ok := h.getSession(userID); ok && s.Stage == stageWaiting {
			h.sendMessage(chatID, i18n.Translate(lang, "bot_busy"))
			return
		}
		h.dropSession(userID)
		h.sendMessage(chatID, i18n.Translate(lang, "bot_cancelled"))
	case "help":
		h.sendMessage(chatID, i18n.Translate(lang, "tool_description")+"\n\n/start /lang /cancel")
	default:
		h.sendMessage(chatID, "/start /lang /cancel")
	}
}

func extractCommand(msg *tgbotapi.Message) string {
	if msg == nil {
		return ""
	}
	if msg.IsCommand() {
		return msg.Command()
	}
	txt := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(txt, "/") {
		return ""
	}
	first := strings.Fields(txt)[0]
	first = strings.TrimPrefix(first, "/")
	if first == "" {
		return ""
	}
	parts := strings.SplitN(first, "@", 2)
	return strings.ToLower(parts[0])
}
