// Package memory provides in-memory adapters, primarily for tests and
// embedded use.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/scenic/pkg/domain"
)

// Log implements ports.JourneyLog in memory.
// Safe for concurrent use.
type Log struct {
	mu   sync.RWMutex
	runs map[string][]domain.Hop
}

// NewLog creates an empty in-memory journey log.
func NewLog() *Log {
	return &Log{runs: make(map[string][]domain.Hop)}
}

// Record appends one hop to the run's journey.
func (l *Log) Record(ctx context.Context, hop domain.Hop) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.runs[hop.RunID] = append(l.runs[hop.RunID], hop)
	return nil
}

// History returns a copy of the hops recorded for a run, in order.
func (l *Log) History(ctx context.Context, runID string) ([]domain.Hop, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	hops, ok := l.runs[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	out := make([]domain.Hop, len(hops))
	copy(out, hops)
	return out, nil
}

// Clear removes the journey of a run. Clearing an unknown run is a no-op.
func (l *Log) Clear(ctx context.Context, runID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.runs, runID)
	return nil
}
