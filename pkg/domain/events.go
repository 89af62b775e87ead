package domain

import (
	"context"
	"time"
)

// HopEvent describes one completed hop between two scenes.
type HopEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	From      string    `json:"from"`
	To        string    `json:"to"`
}

// GuardEvent describes an arrival guard that did not become observable within
// the bounded wait.
type GuardEvent struct {
	Timestamp time.Time     `json:"timestamp"`
	RunID     string        `json:"run_id"`
	Scene     string        `json:"scene"`
	Waited    time.Duration `json:"waited"`
}

// BackEdgeEvent describes a back-edge being grafted onto or pruned from the
// route graph during traversal.
type BackEdgeEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Scene     string    `json:"scene"`
	Anchor    string    `json:"anchor"`
	Pruned    bool      `json:"pruned"`
}

// LifecycleHooks defines callbacks for navigator observability.
type LifecycleHooks struct {
	OnDepart       func(context.Context, *HopEvent)
	OnArrive       func(context.Context, *HopEvent)
	OnGuardTimeout func(context.Context, *GuardEvent)
	OnBackEdge     func(context.Context, *BackEdgeEvent)
}
