package ports

import (
	"context"

	"github.com/aretw0/scenic/pkg/domain"
)

// JourneyLog persists the hops of a traversal run. Exhaustive walks use it to
// leave an artifact trail; the engine only ever appends.
type JourneyLog interface {
	// Record appends one hop to the run's journey.
	Record(ctx context.Context, hop domain.Hop) error

	// History returns the hops recorded for a run, in order.
	// Returns domain.ErrRunNotFound when the run has no journey.
	History(ctx context.Context, runID string) ([]domain.Hop, error)

	// Clear removes the journey of a run.
	Clear(ctx context.Context, runID string) error
}
