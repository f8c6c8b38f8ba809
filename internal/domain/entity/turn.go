package entity

import "time"

// Turn suhbat sessiyasidagi bitta prompt/javob juftligi
type Turn struct {
	ID        string        `json:"id"`
	Prompt    string        `json:"prompt"`
	Reply     string        `json:"reply,omitempty"`
	Error     string        `json:"error,omitempty"`
	Attempts  int           `json:"attempts"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

// Failed turn xato bilan tugaganmi
func (t Turn) Failed() bool {
	return t.Error != ""
}
