package session

import (
	"context"
	"sync"
)

// MemoryStorage keeps progress in memory. It is used when no database is
// configured and in tests.
type MemoryStorage struct {
	mu       sync.Mutex
	progress *Progress
	outcomes []*Outcome
}

// NewMemoryStorage returns an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) LoadProgress(_ context.Context) (*Progress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.progress == nil {
		return nil, nil
	}
	p := *m.progress
	p.Answers = m.progress.Answers.Clone()
	return &p, nil
}

func (m *MemoryStorage) SaveProgress(_ context.Context, p *Progress) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *p
	cp.Answers = p.Answers.Clone()
	m.progress = &cp
	return nil
}

func (m *MemoryStorage) ClearProgress(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.progress = nil
	return nil
}

// SaveOutcome records a completed assessment.
func (m *MemoryStorage) SaveOutcome(_ context.Context, o *Outcome) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, o)
	return nil
}

// Outcomes returns the recorded outcomes in completion order.
func (m *MemoryStorage) Outcomes() []*Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Outcome, len(m.outcomes))
	copy(out, m.outcomes)
	return out
}
