package telegram

import (
	"fmt"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/usecase"
	"github.com/yourusername/career-advisor/pkg/logger"
)

// BotHandler Telegram orqali profilni bosqichma-bosqich yig'ib, tavsiyalarni yuboradi
type BotHandler struct {
	bot         *tgbotapi.BotAPI
	api         sender
	grading     usecase.GradingUseCase
	suggestions usecase.SuggestionUseCase
	log         logger.Logger

	sessionMu sync.RWMutex
	sessions  map[int64]*profileSession

	// User language preferences
	langMu   sync.RWMutex
	userLang map[int64]entity.Language

	workerPool *workerPool
}

// NewBotHandler yangi bot handler yaratish
func NewBotHandler(
	token string,
	grading usecase.GradingUseCase,
	suggestions usecase.SuggestionUseCase,
	log logger.Logger,
) (*BotHandler, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}

	handler := newBotHandler(bot, grading, suggestions, log)
	handler.bot = bot
	return handler, nil
}

func newBotHandler(
	api sender,
	grading usecase.GradingUseCase,
	suggestions usecase.SuggestionUseCase,
	log logger.Logger,
) *BotHandler {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	handler := &BotHandler{
		api:         api,
		grading:     grading,
		suggestions: suggestions,
		log:         log.With(map[string]interface{}{"component": "telegram"}),
		sessions:    make(map[int64]*profileSession),
		userLang:    make(map[int64]entity.Language),
	}
	handler.workerPool = newWorkerPool(handler, defaultWorkerCount)
	return handler
}

// GetBotUsername returns the bot's username from Telegram API state.
func (h *BotHandler) GetBotUsername() string {
	if h.bot == nil {
		return ""
	}
	return h.bot.Self.UserName
}
