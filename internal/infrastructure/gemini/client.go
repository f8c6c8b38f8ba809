package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/yourusername/career-advisor/internal/domain/constants"
	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/domain/repository"
	"github.com/yourusername/career-advisor/pkg/apperrors"
	"github.com/yourusername/career-advisor/pkg/logger"
)

// Options chat sessiya sozlamalari
type Options struct {
	APIKey     string
	Model      string
	MaxRetries int
	RetryDelay time.Duration
}

// chat genai.ChatSession ustidagi yupqa qatlam (testlarda almashtiriladi)
type chat interface {
	SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type genaiChat struct {
	cs *genai.ChatSession
}

func (g *genaiChat) SendMessage(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	return g.cs.SendMessage(ctx, parts...)
}

// ChatSession butun jarayon uchun bitta Gemini suhbati.
// SDK sessiyasi goroutine-safe emas, shuning uchun turnlar mutex bilan navbatlanadi.
type ChatSession struct {
	mu         sync.Mutex
	client     *genai.Client
	chat       chat
	transcript repository.TranscriptRepository
	maxRetries int
	retryDelay time.Duration
	log        logger.Logger
}

var _ repository.ConversationRepository = (*ChatSession)(nil)

// NewChatSession yangi Gemini client yaratib, sessiyani bir marta ochadi
func NewChatSession(ctx context.Context, opts Options, transcript repository.TranscriptRepository, log logger.Logger) (*ChatSession, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(opts.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	name := opts.Model
	if name == "" {
		name = constants.GeminiModelName
	}
	model := client.GenerativeModel(name)

	// Model konfiguratsiyasi
	model.SetTemperature(constants.AITemperature)
	model.SetTopK(constants.AITopK)
	model.SetTopP(constants.AITopP)
	model.SetMaxOutputTokens(constants.AIMaxOutputTokens)

	s := newChatSession(&genaiChat{cs: model.StartChat()}, opts, transcript, log)
	s.client = client
	return s, nil
}

func newChatSession(c chat, opts Options, transcript repository.TranscriptRepository, log logger.Logger) *ChatSession {
	if opts.MaxRetries < 1 {
		opts.MaxRetries = constants.MaxRetries
	}
	if opts.RetryDelay < 0 {
		opts.RetryDelay = 0
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &ChatSession{
		chat:       c,
		transcript: transcript,
		maxRetries: opts.MaxRetries,
		retryDelay: opts.RetryDelay,
		log:        log.With(map[string]interface{}{"component": "gemini"}),
	}
}

// Send prompt ni sessiyaga yangi turn sifatida yuboradi.
// Tarix faqat o'sadi: muvaffaqiyatsiz urinishlar ham unda qoladi, rollback qilinmaydi.
func (s *ChatSession) Send(ctx context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	turn := entity.Turn{
		ID:        uuid.New().String(),
		Prompt:    prompt,
		StartedAt: time.Now(),
	}

	reply, attempts, err := s.sendWithRetry(ctx, prompt)
	turn.Attempts = attempts
	turn.Duration = time.Since(turn.StartedAt)
	if err != nil {
		turn.Error = err.Error()
	} else {
		turn.Reply = reply
	}
	s.record(ctx, turn)

	return reply, err
}

func (s *ChatSession) sendWithRetry(ctx context.Context, prompt string) (string, int, error) {
	var lastErr error
	attempts := 0
	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		attempts = attempt
		s.log.Debug("Gemini API ga so'rov yuborish", map[string]interface{}{
			"attempt":      attempt,
			"max_attempts": s.maxRetries,
		})

		resp, err := s.chat.SendMessage(ctx, genai.Text(prompt))
		if err == nil {
			text, terr := extractText(resp)
			if terr == nil {
				return text, attempt, nil
			}
			err = terr
		}

		lastErr = classify(ctx, err)
		s.log.WithError(lastErr).Warn("Gemini urinishi muvaffaqiyatsiz", map[string]interface{}{
			"attempt": attempt,
			"code":    string(apperrors.CodeOf(lastErr)),
		})
		if !apperrors.IsRetryable(lastErr) || attempt == s.maxRetries {
			break
		}

		select {
		case <-ctx.Done():
			return "", attempt, apperrors.NewAITimeoutError(ctx.Err())
		case <-time.After(s.retryDelay):
		}
	}
	return "", attempts, lastErr
}

func (s *ChatSession) record(ctx context.Context, turn entity.Turn) {
	if s.transcript == nil {
		return
	}
	// Bekor qilingan so'rov ham transkriptga tushishi kerak
	if err := s.transcript.Append(context.WithoutCancel(ctx), turn); err != nil {
		s.log.WithError(err).Warn("turn transkriptga yozilmadi", map[string]interface{}{"turn_id": turn.ID})
	}
}

// classify SDK xatosini apperrors kodiga o'giradi
func classify(ctx context.Context, err error) error {
	var se *apperrors.StandardError
	if errors.As(err, &se) {
		return err
	}
	if ctx.Err() != nil || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return apperrors.NewAITimeoutError(err)
	}

	var blocked *genai.BlockedError
	if errors.As(err, &blocked) {
		return apperrors.NewAIBlockedError(err)
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch {
		case gerr.Code == http.StatusTooManyRequests:
			return apperrors.NewAIQuotaError(err)
		case gerr.Code >= http.StatusInternalServerError:
			return apperrors.NewAIRequestError(err)
		default:
			e := apperrors.NewAIRequestError(err)
			e.Retryable = false
			return e
		}
	}

	// Tarmoq xatolari
	return apperrors.NewAIRequestError(err)
}

// extractText javobdan textni ajratib olish
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", apperrors.NewAIMalformedError("no response candidates")
	}
	var result strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if t, ok := part.(genai.Text); ok {
				result.WriteString(string(t))
			}
		}
	}
	if strings.TrimSpace(result.String()) == "" {
		return "", apperrors.NewAIMalformedError("empty response text")
	}
	return result.String(), nil
}

// Close client ni yopish
func (s *ChatSession) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}
