package telegram

import (
	"github.com/yourusername/career-advisor/internal/domain/entity"
)

// startSession yangi forma ochadi, eskisi bo'lsa tashlab yuboriladi
func (h *BotHandler) startSession(userID int64, lang entity.Language) profileSession {
	s := profileSession{
		Stage:   stageStudent,
		Profile: entity.UserProfile{Language: lang},
	}
	h.saveSession(userID, s)
	return s
}

// getSession helper to copy session without data race
func (h *BotHandler) getSession(userID int64) (profileSession, bool) {
	h.sessionMu.RLock()
	defer h.sessionMu.RUnlock()
	s, ok := h.sessions[userID]
	if !ok {
		return profileSession{}, false
	}
	return cloneSession(*s), true
}

func (h *BotHandler) saveSession(userID int64, s profileSession) {
	c := cloneSession(s)
	h.sessionMu.Lock()
	h.sessions[userID] = &c
	h.sessionMu.Unlock()
}

func (h *BotHandler) dropSession(userID int64) {
	h.sessionMu.Lock()
	delete(h.sessions, userID)
	h.sessionMu.Unlock()
}

// hasSession reports whether the user is in the middle of a form.
func (h *BotHandler) hasSession(userID int64) bool {
	h.sessionMu.RLock()
	defer h.sessionMu.RUnlock()
	_, ok := h.sessions[userID]
	return ok
}
