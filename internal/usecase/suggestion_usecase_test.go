package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/i18n"
	"github.com/yourusername/career-advisor/pkg/apperrors"
	"github.com/yourusername/career-advisor/pkg/logger"
)

type stubConversation struct {
	mu      sync.Mutex
	reply   string
	err     error
	delay   time.Duration
	calls   int32
	prompts []string
}

func (s *stubConversation) Send(ctx context.Context, prompt string) (string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	s.prompts = append(s.prompts, prompt)
	s.mu.Unlock()
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *stubConversation) callCount() int {
	return int(atomic.LoadInt32(&s.calls))
}

type stubCache struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
}

func newStubCache() *stubCache {
	return &stubCache{data: map[string]string{}}
}

func (c *stubCache) Get(ctx context.Context, key string) (string, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return "", false, c.getErr
	}
	v, ok := c.data[key]
	return v, ok, nil
}

func (c *stubCache) Set(ctx context.Context, key, markup string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = markup
	return nil
}

func (c *stubCache) Len(ctx context.Context) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.data), nil
}

func (c *stubCache) Clear(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = map[string]string{}
	return nil
}

type recordingMetrics struct {
	mu      sync.Mutex
	results []string
	codes   []string
	entries int
}

func (m *recordingMetrics) RequestServed(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

func (m *recordingMetrics) CacheEntries(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = n
}

func (m *recordingMetrics) AICall(string, time.Duration) {}

func (m *recordingMetrics) AIError(code string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes = append(m.codes, code)
}

const sampleReply = "1. Ingeniería\nBuena opción.\nSalario: 20.000 dólares\n2. Economía"

func newTestSuggestionUseCase(t *testing.T, conv *stubConversation, cache *stubCache, m *recordingMetrics) SuggestionUseCase {
	t.Helper()
	var metrics PipelineMetrics
	if m != nil {
		metrics = m
	}
	return NewSuggestionUseCase(conv, cache, NewGradingUseCase(), metrics, logger.NewTestLogger(t))
}

func TestRequestSuggestions_MemoizedAcrossGradeOrder(t *testing.T) {
	conv := &stubConversation{reply: sampleReply}
	cache := newStubCache()
	m := &recordingMetrics{}
	uc := newTestSuggestionUseCase(t, conv, cache, m)

	first := baseProfile()
	second := baseProfile()
	second.SubjectGrades = map[string]float64{"Inglés": 18, "Matemáticas": 15, "Historia": 12}

	a := uc.RequestSuggestions(context.Background(), first)
	b := uc.RequestSuggestions(context.Background(), second)

	assert.Equal(t, 1, conv.callCount())
	assert.Equal(t, a, b)
	assert.Equal(t, FormatSuggestions(sampleReply), a)
	assert.Equal(t, []string{ResultMiss, ResultHit}, m.results)
	assert.Equal(t, 1, m.entries)
}

func TestRequestSuggestions_PromptSentForVenezuela(t *testing.T) {
	conv := &stubConversation{reply: sampleReply}
	uc := newTestSuggestionUseCase(t, conv, newStubCache(), nil)

	p := entity.UserProfile{
		Interests:     "math",
		Skills:        "coding",
		Country:       "Venezuela",
		IsStudent:     true,
		SubjectGrades: map[string]float64{"Matemáticas": 15},
		Language:      entity.LanguageSpanish,
	}
	uc.RequestSuggestions(context.Background(), p)

	require.Len(t, conv.prompts, 1)
	assert.Contains(t, conv.prompts[0], "Matemáticas: 7.5/10")
	assert.Equal(t, uc.BuildPrompt(p), conv.prompts[0])
}

func TestRequestSuggestions_FailureReturnsLocalizedError(t *testing.T) {
	for _, lang := range []entity.Language{entity.LanguageSpanish, entity.LanguageEnglish, entity.LanguagePortuguese, entity.LanguageItalian} {
		t.Run(string(lang), func(t *testing.T) {
			conv := &stubConversation{err: apperrors.NewAIQuotaError(errors.New("429"))}
			cache := newStubCache()
			m := &recordingMetrics{}
			uc := newTestSuggestionUseCase(t, conv, cache, m)

			p := baseProfile()
			p.Language = lang

			var got string
			assert.NotPanics(t, func() { got = uc.RequestSuggestions(context.Background(), p) })
			assert.Equal(t, i18n.Translate(lang, "ai_error"), got)
			assert.Equal(t, []string{string(apperrors.ErrCodeAIQuotaExceeded)}, m.codes)
			assert.Equal(t, []string{ResultError}, m.results)
		})
	}
}

func TestRequestSuggestions_FailureNotCached(t *testing.T) {
	conv := &stubConversation{err: errors.New("network down")}
	cache := newStubCache()
	uc := newTestSuggestionUseCase(t, conv, cache, nil)

	uc.RequestSuggestions(context.Background(), baseProfile())
	n, _ := cache.Len(context.Background())
	assert.Zero(t, n)

	conv.err = nil
	conv.reply = sampleReply
	got := uc.RequestSuggestions(context.Background(), baseProfile())

	assert.Equal(t, FormatSuggestions(sampleReply), got)
	assert.Equal(t, 2, conv.callCount())
}

func TestRequestSuggestions_ConcurrentIdenticalMissesCollapse(t *testing.T) {
	conv := &stubConversation{reply: sampleReply, delay: 50 * time.Millisecond}
	uc := newTestSuggestionUseCase(t, conv, newStubCache(), nil)

	const n = 8
	var wg sync.WaitGroup
	out := make([]string, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			out[i] = uc.RequestSuggestions(context.Background(), baseProfile())
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, conv.callCount())
	for _, s := range out {
		assert.Equal(t, out[0], s)
	}
}

func TestRequestSuggestions_CacheReadErrorFallsThrough(t *testing.T) {
	conv := &stubConversation{reply: sampleReply}
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	uc := newTestSuggestionUseCase(t, conv, cache, nil)

	got := uc.RequestSuggestions(context.Background(), baseProfile())
	assert.Equal(t, FormatSuggestions(sampleReply), got)
}

func TestSuggest_MissingInput(t *testing.T) {
	conv := &stubConversation{reply: sampleReply}
	uc := newTestSuggestionUseCase(t, conv, newStubCache(), nil)

	p := baseProfile()
	p.Skills = "   "
	_, err := uc.Suggest(context.Background(), p)

	assert.ErrorIs(t, err, ErrMissingInput)
	assert.Zero(t, conv.callCount())
}

func TestSuggest_ReportsPromptGradesAndCacheHit(t *testing.T) {
	conv := &stubConversation{reply: sampleReply}
	uc := newTestSuggestionUseCase(t, conv, newStubCache(), nil)

	first, err := uc.Suggest(context.Background(), baseProfile())
	require.NoError(t, err)
	assert.False(t, first.Cached)
	assert.InDelta(t, 7.5, first.PromptGrades["Matemáticas"], 1e-9)

	second, err := uc.Suggest(context.Background(), baseProfile())
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Markup, second.Markup)
}

func TestRequestSuggestions_DefaultLanguage(t *testing.T) {
	conv := &stubConversation{reply: sampleReply}
	uc := newTestSuggestionUseCase(t, conv, newStubCache(), nil)

	p := baseProfile()
	p.Language = ""
	uc.RequestSuggestions(context.Background(), p)

	require.Len(t, conv.prompts, 1)
	assert.Contains(t, conv.prompts[0], "Proporciona la respuesta en es.")
}
