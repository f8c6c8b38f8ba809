package repository

import (
	"context"

	"github.com/yourusername/career-advisor/internal/domain/entity"
)

// ConversationRepository tashqi generativ matn servisi bilan uzoq muddatli suhbat sessiyasi.
// Har bir Send sessiyaga yangi turn qo'shadi; oldingi turnlar saqlanib qoladi.
type ConversationRepository interface {
	// Send promptni yuboradi va oddiy matnli javobni qaytaradi
	Send(ctx context.Context, prompt string) (string, error)
}

// TranscriptRepository sessiya turnlarini xotirada saqlash uchun interface
type TranscriptRepository interface {
	Append(ctx context.Context, turn entity.Turn) error
	// Recent oxirgi turnlarni eng yangisidan boshlab qaytaradi
	Recent(ctx context.Context, limit int) ([]entity.Turn, error)
	Len(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
