package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/scenic/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunJourneyLogContract runs a suite of tests verifying that a JourneyLog
// implementation adheres to the defined interface contract.
func RunJourneyLogContract(t *testing.T, log JourneyLog) {
	ctx := context.Background()
	runID := "contract-run-" + time.Now().Format("20060102150405")

	t.Run("Record and History", func(t *testing.T) {
		first := domain.Hop{RunID: runID, From: "home", To: "settings", At: time.Now().UTC()}
		second := domain.Hop{RunID: runID, From: "settings", To: "about", At: time.Now().UTC()}

		require.NoError(t, log.Record(ctx, first), "Record should not return error")
		require.NoError(t, log.Record(ctx, second))

		hops, err := log.History(ctx, runID)
		require.NoError(t, err, "History should not return error")
		require.Len(t, hops, 2, "hops must come back in insertion order")
		assert.Equal(t, "home", hops[0].From)
		assert.Equal(t, "settings", hops[0].To)
		assert.Equal(t, "about", hops[1].To)
	})

	t.Run("History Non-Existent", func(t *testing.T) {
		_, err := log.History(ctx, "non-existent-"+runID)
		assert.ErrorIs(t, err, domain.ErrRunNotFound)
	})

	t.Run("Clear", func(t *testing.T) {
		id := runID + "-clear"
		require.NoError(t, log.Record(ctx, domain.Hop{RunID: id, From: "a", To: "b", At: time.Now().UTC()}))

		require.NoError(t, log.Clear(ctx, id), "Clear should not return error")

		_, err := log.History(ctx, id)
		assert.ErrorIs(t, err, domain.ErrRunNotFound, "History after Clear should return ErrRunNotFound")
	})

	t.Run("Run Isolation", func(t *testing.T) {
		a := runID + "-a"
		b := runID + "-b"
		require.NoError(t, log.Record(ctx, domain.Hop{RunID: a, From: "x", To: "y", At: time.Now().UTC()}))
		require.NoError(t, log.Record(ctx, domain.Hop{RunID: b, From: "y", To: "z", At: time.Now().UTC()}))

		hops, err := log.History(ctx, a)
		require.NoError(t, err)
		assert.Len(t, hops, 1)
		assert.Equal(t, "x", hops[0].From)
	})
}
