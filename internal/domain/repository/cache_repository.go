package repository

import "context"

// SuggestionCache formatlangan javoblar uchun chegaralangan LRU kesh.
// Faqat suggestion pipeline tomonidan o'zgartiriladi.
type SuggestionCache interface {
	// Get kalit bo'yicha qiymatni qaytaradi va uni eng yangi ishlatilgan deb belgilaydi
	Get(ctx context.Context, key string) (string, bool, error)
	// Set qiymatni saqlaydi; chegaradan oshsa eng eski ishlatilgan yozuv o'chiriladi
	Set(ctx context.Context, key, markup string) error
	Len(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}
