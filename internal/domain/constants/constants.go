package constants

import "time"

// Suggestion cache konstantalari
const (
	// DefaultSuggestionCacheSize memoized javoblarning maksimal soni (LRU)
	DefaultSuggestionCacheSize = 100

	// DefaultTranscriptMaxTurns sessiya tarixida saqlanadigan max turnlar
	DefaultTranscriptMaxTurns = 200

	// DefaultTranscriptPageSize API orqali ko'rsatiladigan turnlar
	DefaultTranscriptPageSize = 20
)

// AI Model konstantalari
const (
	// GeminiModelName Gemini AI model nomi
	GeminiModelName = "gemini-1.5-flash"

	// AITemperature AI javob aniqlik darajasi (0.0-1.0)
	AITemperature = 0.7

	// AITopK Top-K sampling parametri
	AITopK = 40

	// AITopP Top-P sampling parametri
	AITopP = 0.95

	// AIMaxOutputTokens bitta javobdagi max tokenlar
	AIMaxOutputTokens = 8192

	// MaxRetries AI ga so'rov yuborish uchun max urinishlar
	MaxRetries = 2

	// RetryDelay har bir urinish o'rtasidagi kutish vaqti
	RetryDelay = 2 * time.Second
)

// HTTP konstantalari
const (
	// DefaultHTTPPort web forma porti
	DefaultHTTPPort = "8501"

	// DefaultLanguage tanlanmagan holatdagi til
	DefaultLanguage = "es"
)
