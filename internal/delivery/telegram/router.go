package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Start botni ishga tushirish. ctx bekor bo'lguncha bloklanadi.
func (h *BotHandler) Start(ctx context.Context) error {
	if h.bot == nil {
		return fmt.Errorf("telegram bot is nil")
	}
	h.workerPool.start(ctx)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := h.bot.GetUpdatesChan(u)

	h.log.Info("telegram bot started", map[string]interface{}{"username": h.GetBotUsername()})
	for {
		select {
		case <-ctx.Done():
			h.bot.StopReceivingUpdates()
			h.workerPool.shutdown()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				h.workerPool.shutdown()
				return nil
			}
			h.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate bitta foydalanuvchining xabarlari ketma-ket qayta ishlanadi;
// sekin AI chaqiruvi worker pool ga o'tkaziladi.
func (h *BotHandler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(ctx, update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(ctx, update.Message)
	}
}

// handleMessage xabarni qayta ishlash
func (h *BotHandler) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil || message.Chat == nil {
		return
	}
	// Faqat shaxsiy chatlar
	if !message.Chat.IsPrivate() {
		return
	}
	if message.IsCommand() || strings.HasPrefix(strings.TrimSpace(message.Text), "/") {
		h.handleCommand(ctx, message)
		return
	}
	if message.Text != "" {
		h.handleTextMessage(ctx, message.From, message.Chat.ID, message.Text)
	}
}
