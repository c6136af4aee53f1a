package compare_test

import (
	"sync"
	"testing"
	"time"

	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadmst/core"
)

// tickClock is a test clock whose every second Now call first advances time by
// the next duration in steps, so each begin/end pair measures one step.
type tickClock struct {
	*testclock.Clock

	mu    sync.Mutex
	calls int
	steps []time.Duration
}

func newTickClock(steps ...time.Duration) *tickClock {
	return &tickClock{
		Clock: testclock.NewClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		steps: steps,
	}
}

func (c *tickClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls++
	if c.calls%2 == 0 && len(c.steps) > 0 {
		c.Clock.Advance(c.steps[0])
		c.steps = c.steps[1:]
	}

	return c.Clock.Now()
}

func delhiEdges() []core.Edge {
	return []core.Edge{
		{ID: 1, From: 1, To: 2, Weight: 3.75432447162338},
		{ID: 2, From: 1, To: 2, Weight: 3.75432447162338},
		{ID: 3, From: 1, To: 3, Weight: 20.4871202876504},
		{ID: 4, From: 1, To: 4, Weight: 19.1877809458002},
		{ID: 5, From: 4, To: 5, Weight: 201.987464765257},
		{ID: 6, From: 4, To: 5, Weight: 131.072874250845},
		{ID: 7, From: 4, To: 5, Weight: 131.072874250845},
		{ID: 8, From: 5, To: 6, Weight: 1008.13308093641},
		{ID: 9, From: 7, To: 8, Weight: 113.853447528611},
		{ID: 10, From: 7, To: 8, Weight: 113.853447528611},
	}
}

const (
	delhiKruskalTotal   = 1296.48862842094
	delhiPrimFrom1Total = 1182.635180892329
	delhiConnectedTotal = delhiKruskalTotal + 500

	// Sum of all ten candidate segments.
	delhiCandidateWeight = 1747.1567394372764
)

func delhiGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(delhiEdges())
	require.NoError(t, err)

	return g
}

// delhiConnectedGraph bridges {1..6} and {7,8} with a 500-weight edge 6–7.
func delhiConnectedGraph(t testing.TB) *core.Graph {
	t.Helper()
	g, err := core.FromEdges(append(delhiEdges(), core.Edge{ID: 11, From: 6, To: 7, Weight: 500}))
	require.NoError(t, err)

	return g
}
