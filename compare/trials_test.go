package compare_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/compare"
	"github.com/katalvlaran/roadmst/core"
	"github.com/katalvlaran/roadmst/prim_kruskal"
)

func TestTrials_Summary(t *testing.T) {
	clk := newTickClock(
		3*time.Millisecond, 1*time.Millisecond,
		5*time.Millisecond, 1*time.Millisecond,
		4*time.Millisecond, 1*time.Millisecond,
	)
	h, err := compare.New(compare.Config{Clock: clk})
	require.NoError(t, err)

	loads := 0
	load := func() (*core.Graph, error) {
		loads++
		return delhiConnectedGraph(t), nil
	}

	r, err := h.Trials(context.Background(), load, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, loads, "every trial loads a fresh graph")
	assert.NotEqual(t, uuid.Nil, r.ID)
	assert.Equal(t, 3, r.Trials)
	assert.Equal(t, []time.Duration{3 * time.Millisecond, 5 * time.Millisecond, 4 * time.Millisecond}, r.Kruskal)
	assert.Equal(t, compare.Stats{Mean: 4 * time.Millisecond, Min: 3 * time.Millisecond, Max: 5 * time.Millisecond}, r.KruskalStats)
	assert.Equal(t, compare.Stats{Mean: time.Millisecond, Min: time.Millisecond, Max: time.Millisecond}, r.PrimStats)
	assert.Equal(t, prim_kruskal.MethodPrim, r.Faster)
	assert.InDelta(t, 4.0, r.Speedup, 1e-12)
	assert.True(t, r.Passed)
	assert.Zero(t, r.Failures)
	assert.True(t, r.Last.Passed)
}

func TestTrials_CountsFailures(t *testing.T) {
	h, err := compare.New(compare.Config{Clock: newTickClock()})
	require.NoError(t, err)

	r, err := h.Trials(context.Background(), func() (*core.Graph, error) { return delhiGraph(t), nil }, 2)
	require.NoError(t, err)

	assert.False(t, r.Passed)
	assert.Equal(t, 2, r.Failures)
	// The clock never advances: both means are zero and the tie goes to Prim.
	assert.Equal(t, prim_kruskal.MethodPrim, r.Faster)
	assert.Equal(t, 1.0, r.Speedup)
}

func TestTrials_Errors(t *testing.T) {
	h, err := compare.New(compare.Config{})
	require.NoError(t, err)
	load := func() (*core.Graph, error) { return delhiGraph(t), nil }

	_, err = h.Trials(context.Background(), load, 0)
	assert.ErrorIs(t, err, compare.ErrNoTrials)

	_, err = h.Trials(context.Background(), nil, 1)
	assert.ErrorIs(t, err, compare.ErrNilLoader)

	boom := errors.New("boom")
	_, err = h.Trials(context.Background(), func() (*core.Graph, error) { return nil, boom }, 1)
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = h.Trials(ctx, load, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, compare.Stats{}, compare.Summarize(nil))
	assert.Equal(t,
		compare.Stats{Mean: 2 * time.Second, Min: time.Second, Max: 3 * time.Second},
		compare.Summarize([]time.Duration{3 * time.Second, time.Second, 2 * time.Second}),
	)
}
