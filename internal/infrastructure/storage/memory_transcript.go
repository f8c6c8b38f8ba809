package storage

import (
	"context"
	"sync"

	"github.com/yourusername/career-advisor/internal/domain/entity"
	"github.com/yourusername/career-advisor/internal/domain/repository"
)

type memoryTranscriptRepository struct {
	mu      sync.RWMutex
	turns   []entity.Turn
	maxSize int
}

// NewMemoryTranscriptRepository sessiya turnlari uchun in-memory repository
func NewMemoryTranscriptRepository(maxTurns int) repository.TranscriptRepository {
	if maxTurns <= 0 {
		maxTurns = 1
	}
	return &memoryTranscriptRepository{
		turns:   make([]entity.Turn, 0, maxTurns),
		maxSize: maxTurns,
	}
}

// Append turnni oxiriga qo'shish
func (m *memoryTranscriptRepository) Append(ctx context.Context, turn entity.Turn) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.turns = append(m.turns, turn)

	// Maksimal hajmni nazorat qilish
	if len(m.turns) > m.maxSize {
		m.turns = append(m.turns[:0:0], m.turns[len(m.turns)-m.maxSize:]...)
	}
	return nil
}

// Recent oxirgi turnlar, eng yangisi birinchi
func (m *memoryTranscriptRepository) Recent(ctx context.Context, limit int) ([]entity.Turn, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := len(m.turns)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]entity.Turn, 0, n)
	for i := len(m.turns) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, m.turns[i])
	}
	return out, nil
}

func (m *memoryTranscriptRepository) Len(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.turns), nil
}

// Clear barcha turnlarni tozalash
func (m *memoryTranscriptRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = m.turns[:0]
	return nil
}
