package telegram

import (
	"context"
	"sync"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/usecase"
	"github.com/yourusername/career-advisor/pkg/logger"
)

type sentMessage struct {
	ChatID    int64
	Text      string
	ParseMode string
	Keyboard  *tgbotapi.InlineKeyboardMarkup
}

type fakeSender struct {
	mu        sync.Mutex
	messages  []sentMessage
	callbacks []string
}

func (f *fakeSender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	msg, ok := c.(tgbotapi.MessageConfig)
	if !ok {
		return tgbotapi.Message{}, nil
	}
	sm := sentMessage{ChatID: msg.ChatID, Text: msg.Text, ParseMode: msg.ParseMode}
	if kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup); ok {
		sm.Keyboard = &kb
	}
	f.messages = append(f.messages, sm)
	return tgbotapi.Message{MessageID: len(f.messages)}, nil
}

func (f *fakeSender) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if cb, ok := c.(tgbotapi.CallbackConfig); ok {
		f.callbacks = append(f.callbacks, cb.CallbackQueryID)
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeSender) last() sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.messages) == 0 {
		return sentMessage{}
	}
	return f.messages[len(f.messages)-1]
}

func (f *fakeSender) all() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.messages...)
}

// stubSuggestions pipeline o'rnida: kelgan profillarni yozib boradi
type stubSuggestions struct {
	mu       sync.Mutex
	profiles []entity.UserProfile
	reply    string
}

func (s *stubSuggestions) RequestSuggestions(ctx context.Context, profile entity.UserProfile) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles = append(s.profiles, profile)
	return usecase.FormatSuggestions(s.reply)
}

func (s *stubSuggestions) Suggest(ctx context.Context, profile entity.UserProfile) (*usecase.Suggestion, error) {
	return &usecase.Suggestion{Markup: s.RequestSuggestions(ctx, profile)}, nil
}

func (s *stubSuggestions) BuildPrompt(profile entity.UserProfile) string { return "" }

func (s *stubSuggestions) received() []entity.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.UserProfile(nil), s.profiles...)
}

const testUser = int64(42)

func newTestHandler(t *testing.T) (*BotHandler, *fakeSender, *stubSuggestions) {
	t.Helper()
	api := &fakeSender{}
	sugg := &stubSuggestions{reply: "1. Ingeniería\nSalario: 30.000 USD"}
	h := newBotHandler(api, usecase.NewGradingUseCase(), sugg, logger.NewTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	h.workerPool.start(ctx)
	t.Cleanup(func() {
		cancel()
		h.workerPool.shutdown()
	})
	return h, api, sugg
}

func privateMessage(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		From: &tgbotapi.User{ID: userID, LanguageCode: "en"},
		Chat: &tgbotapi.Chat{ID: userID, Type: "private"},
		Text: text,
	}
}

func sendText(h *BotHandler, text string) {
	h.handleUpdate(context.Background(), tgbotapi.Update{Message: privateMessage(testUser, text)})
}

func press(h *BotHandler, data string) {
	h.handleUpdate(context.Background(), tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb-" + data,
		From:    &tgbotapi.User{ID: testUser},
		Message: privateMessage(testUser, ""),
		Data:    data,
	}})
}

func buttonData(kb *tgbotapi.InlineKeyboardMarkup) []string {
	var out []string
	if kb == nil {
		return out
	}
	for _, row := range kb.InlineKeyboard {
		for _, b := range row {
			if b.CallbackData != nil {
				out = append(out, *b.CallbackData)
			}
		}
	}
	return out
}

func TestStartSendsLanguageSelector(t *testing.T) {
	h, api, _ := newTestHandler(t)

	sendText(h, "/start")

	msg := api.last()
	assert.Equal(t, []string{"lang|es", "lang|en", "lang|pt", "lang|it"}, buttonData(msg.Keyboard))
	assert.Contains(t, msg.Text, "Select language")
}

func TestStudentFlow(t *testing.T) {
	h, api, sugg := newTestHandler(t)

	sendText(h, "/start")
	press(h, "lang|en")
	assert.Equal(t, "Are you a student?", api.last().Text)

	press(h, "student|yes")
	assert.Contains(t, api.last().Text, "Interests:")

	sendText(h, "   ")
	assert.Contains(t, api.all()[len(api.all())-2].Text, "Please fill in your interests and skills.")

	sendText(h, "robots")
	assert.Equal(t, "Skills:", api.last().Text)

	sendText(h, "soldering")
	assert.Contains(t, buttonData(api.last().Keyboard), "country|Venezuela")

	press(h, "country|Venezuela")
	assert.Equal(t, "Grade for Mathematics (0-20):", api.last().Text)

	sendText(h, "abc")
	assert.Equal(t, "Grade for Mathematics (0-20):", api.last().Text)

	for _, g := range []string{"25", "14", "10,4", "8", "20"} {
		sendText(h, g)
	}

	require.Eventually(t, func() bool { return len(sugg.received()) == 1 }, 2*time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool { return api.last().ParseMode == tgbotapi.ModeHTML }, 2*time.Second, 10*time.Millisecond)

	p := sugg.received()[0]
	assert.Equal(t, entity.LanguageEnglish, p.Language)
	assert.True(t, p.IsStudent)
	assert.Equal(t, "robots", p.Interests)
	assert.Equal(t, "soldering", p.Skills)
	assert.Equal(t, "Venezuela", p.Country)
	assert.Equal(t, map[string]float64{
		"Matemáticas":        20, // 25 shkaladan tashqarida
		"Castellano":         14,
		"Ciencias Naturales": 10,
		"Historia":           8,
		"Inglés":             20,
	}, p.SubjectGrades)

	last := api.last()
	assert.Contains(t, last.Text, "<b>Career path suggestions</b>")
	assert.Contains(t, last.Text, "<b>1. Ingeniería</b>")
	assert.Contains(t, last.Text, "<i>Salario: 30.000 USD</i>")

	var sawPerformance bool
	for _, m := range api.all() {
		if m.Text == "Current academic performance: 14.4/20" {
			sawPerformance = true
		}
	}
	assert.True(t, sawPerformance)
	assert.False(t, h.hasSession(testUser))
}

func TestNonStudentSkipsGrades(t *testing.T) {
	h, api, sugg := newTestHandler(t)

	press(h, "lang|es")
	press(h, "student|no")
	sendText(h, "arte")
	sendText(h, "dibujo")
	press(h, "country|Italia")

	require.Eventually(t, func() bool { return len(sugg.received()) == 1 }, 2*time.Second, 10*time.Millisecond)
	p := sugg.received()[0]
	assert.False(t, p.IsStudent)
	assert.Nil(t, p.SubjectGrades)
	assert.Equal(t, entity.LanguageSpanish, p.Language)

	for _, m := range api.all() {
		assert.NotContains(t, m.Text, "Rendimiento académico actual")
	}
}

func TestCancelDropsSession(t *testing.T) {
	h, api, sugg := newTestHandler(t)

	press(h, "lang|pt")
	press(h, "student|no")
	require.True(t, h.hasSession(testUser))

	sendText(h, "/cancel")
	assert.False(t, h.hasSession(testUser))
	assert.Equal(t, "Formulário cancelado. Use /start para recomeçar.", api.last().Text)

	// forma yo'q: matn til tanlashga qaytaradi
	sendText(h, "hello")
	assert.NotEmpty(t, buttonData(api.last().Keyboard))
	assert.Empty(t, sugg.received())
}

func TestLanguageSwitchMidFlowRepeatsQuestion(t *testing.T) {
	h, api, _ := newTestHandler(t)

	press(h, "lang|es")
	press(h, "student|yes")
	sendText(h, "/lang")
	press(h, "lang|it")

	assert.Contains(t, api.last().Text, "Interessi:")
	s, ok := h.getSession(testUser)
	require.True(t, ok)
	assert.Equal(t, entity.LanguageItalian, s.Profile.Language)
	assert.Equal(t, stageInterests, s.Stage)
}

func TestCallbacksOutOfOrderIgnored(t *testing.T) {
	h, api, _ := newTestHandler(t)

	press(h, "country|Brasil")
	press(h, "student|yes")
	assert.False(t, h.hasSession(testUser))
	assert.Empty(t, api.all())

	press(h, "lang|xx")
	assert.False(t, h.hasSession(testUser))

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Len(t, api.callbacks, 3)
}

func TestGroupMessagesIgnored(t *testing.T) {
	h, api, _ := newTestHandler(t)

	msg := privateMessage(testUser, "/start")
	msg.Chat.Type = "supergroup"
	h.handleUpdate(context.Background(), tgbotapi.Update{Message: msg})

	assert.Empty(t, api.all())
}

// TestSessionConcurrency parallel sessiyalar uchun race condition tekshirish
func TestSessionConcurrency(t *testing.T) {
	h, _, _ := newTestHandler(t)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			h.setUserLang(userID, entity.LanguageEnglish)
			s := h.startSession(userID, entity.LanguageEnglish)
			s.Stage = stageInterests
			h.saveSession(userID, s)
			got, ok := h.getSession(userID)
			if !ok || got.Stage != stageInterests {
				t.Errorf("session lost: userID=%d", userID)
			}
		}(int64(i))
	}
	wg.Wait()

	h.sessionMu.RLock()
	defer h.sessionMu.RUnlock()
	assert.Len(t, h.sessions, 100)
}
