package telegram

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/i18n"
)

func (h *BotHandler) sendLanguageSelector(chatID int64) {
	options := i18n.Languages()
	titles := make([]string, 0, len(options))
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, opt := range options {
		titles = append(titles, i18n.Translate(opt.Code, "language_selector"))
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(opt.Name, cbLang+string(opt.Code)))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	h.sendWithKeyboard(chatID, strings.Join(titles, " / "), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (h *BotHandler) askStudent(chatID int64, lang entity.Language) {
	markup := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(i18n.Translate(lang, "yes"), cbStudent+"yes"),
			tgbotapi.NewInlineKeyboardButtonData(i18n.Translate(lang, "no"), cbStudent+"no"),
		),
	)
	h.sendWithKeyboard(chatID, i18n.Translate(lang, "are_you_student"), markup)
}

func (h *BotHandler) askInterests(chatID int64, lang entity.Language) {
	h.sendMessage(chatID, i18n.Translate(lang, "input_instruction")+"\n\n"+i18n.Translate(lang, "interests")+":")
}

func (h *BotHandler) askSkills(chatID int64, lang entity.Language) {
	h.sendMessage(chatID, i18n.Translate(lang, "skills")+":")
}

func (h *BotHandler) askCountry(chatID int64, lang entity.Language) {
	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for _, c := range h.grading.Countries() {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(i18n.Translate(lang, c.Name), cbCountry+c.Name))
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	h.sendWithKeyboard(chatID, i18n.Translate(lang, "select_country"), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (h *BotHandler) askGrade(chatID int64, s profileSession) {
	subject, ok := s.currentSubject()
	if !ok {
		return
	}
	lang := s.Profile.Language
	scale := h.grading.Scale(s.Profile.Country)
	h.sendMessage(chatID, i18n.Format(lang, "bot_grade_prompt", map[string]string{
		"subject": i18n.Translate(lang, subject),
		"min":     strconv.FormatFloat(scale.Min, 'f', -1, 64),
		"max":     strconv.FormatFloat(scale.Max, 'f', -1, 64),
	}))
}

// askCurrentStep sessiya bosqichidagi savolni qayta yuboradi
func (h *BotHandler) askCurrentStep(chatID int64, s profileSession) {
	lang := s.Profile.Language
	switch s.Stage {
	case stageStudent:
		h.askStudent(chatID, lang)
	case stageInterests:
		h.askInterests(chatID, lang)
	case stageSkills:
		h.askSkills(chatID, lang)
	case stageCountry:
		h.askCountry(chatID, lang)
	case stageGrades:
		h.askGrade(chatID, s)
	case stageWaiting:
		h.sendMessage(chatID, i18n.Translate(lang, "bot_busy"))
	}
}
