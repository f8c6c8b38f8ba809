package telegram

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sender *tgbotapi.BotAPI ning bizga kerakli qismi
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// messageLimit Telegram bitta xabar uchun ruxsat bergan belgilar soni
const messageLimit = 4096

// sendText sends a message with optional parseMode/replyMarkup.
func (h *BotHandler) sendText(chatID int64, text string, parseMode string, replyMarkup interface{}) (*tgbotapi.Message, error) {
	if h.api == nil {
		return nil, fmt.Errorf("telegram bot is nil")
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = parseMode
	if replyMarkup != nil {
		msg.ReplyMarkup = replyMarkup
	}
	sent, err := h.api.Send(msg)
	if err != nil {
		return nil, err
	}
	return &sent, nil
}

// sendMessage oddiy xabar yuborish
func (h *BotHandler) sendMessage(chatID int64, text string) {
	h.sendChunks(chatID, text, "")
}

// sendHTML Telegram HTML rejimida yuborish
func (h *BotHandler) sendHTML(chatID int64, text string) {
	h.sendChunks(chatID, text, tgbotapi.ModeHTML)
}

func (h *BotHandler) sendWithKeyboard(chatID int64, text string, keyboard tgbotapi.InlineKeyboardMarkup) {
	if _, err := h.sendText(chatID, text, "", keyboard); err != nil {
		h.log.WithError(err).Warn("telegram send failed", map[string]interface{}{"chat_id": chatID})
	}
}

func (h *BotHandler) sendChunks(chatID int64, text, parseMode string) {
	// Bo'sh xabar tekshirish
	if strings.TrimSpace(text) == "" {
		h.log.Warn("empty message skipped", map[string]interface{}{"chat_id": chatID})
		return
	}
	for _, chunk := range splitIntoChunks(text, messageLimit) {
		if _, err := h.sendText(chatID, chunk, parseMode, nil); err != nil {
			h.log.WithError(err).Warn("telegram send failed", map[string]interface{}{"chat_id": chatID})
			return
		}
	}
}

func (h *BotHandler) answerCallback(id string) {
	if h.api == nil {
		return
	}
	// Callback ga javob (spinnerni to'xtatish)
	if _, err := h.api.Request(tgbotapi.NewCallback(id, "")); err != nil {
		h.log.WithError(err).Debug("callback answer failed", nil)
	}
}

// splitIntoChunks matnni qator chegarasida Telegram limitiga mos bo'laklarga ajratadi.
// Limitdan uzun bitta qator rune bo'yicha bo'linadi.
func splitIntoChunks(s string, limit int) []string {
	if limit <= 0 || len(s) <= limit {
		return []string{s}
	}
	var chunks []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimRight(current.String(), "\n"))
			current.Reset()
		}
	}

	for _, line := range strings.SplitAfter(s, "\n") {
		if current.Len()+len(line) <= limit {
			current.WriteString(line)
			continue
		}
		flush()
		if len(line) <= limit {
			current.WriteString(line)
			continue
		}
		for _, r := range line {
			if current.Len()+len(string(r)) > limit {
				flush()
			}
			current.WriteRune(r)
		}
	}
	flush()
	return chunks
}
