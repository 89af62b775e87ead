package domain

import "time"

// Hop is one persisted journey entry: a completed transition between two
// scenes within a traversal run.
type Hop struct {
	RunID string    `json:"run_id"`
	From  string    `json:"from"`
	To    string    `json:"to"`
	At    time.Time `json:"at"`
}
