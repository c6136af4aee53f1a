// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/roadmst/compare"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	passStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00AA00"))
	failStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#CC0000"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func weight(w float64) string { return strconv.FormatFloat(w, 'f', 6, 64) }

func ratio(speedup float64) string {
	if math.IsInf(speedup, 1) {
		return "inf"
	}

	return strconv.FormatFloat(speedup, 'f', 2, 64) + "x"
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}

	return d
}

// Tree writes the edges of one run, followed by its total and elapsed time.
func Tree(w io.Writer, title string, run compare.Run) error {
	t := newTable("#", "Edge", "From", "To", "Weight")
	for i, e := range run.Tree.Edges {
		t.Row(
			strconv.Itoa(i+1),
			strconv.Itoa(e.ID),
			strconv.Itoa(int(e.From)),
			strconv.Itoa(int(e.To)),
			weight(e.Weight),
		)
	}

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("%s (%s)", title, run.Method)))
	fmt.Fprintln(&b, t.String())
	fmt.Fprintf(&b, "Total weight: %s\n", weight(run.Tree.Total))
	fmt.Fprintf(&b, "Edges: %d of %d\n", run.Tree.Len(), max(run.Tree.Nodes-1, 0))
	fmt.Fprintf(&b, "Elapsed: %s\n", run.Elapsed)
	if err := run.Tree.Err(); err != nil {
		fmt.Fprintln(&b, failStyle.Render("Not spanning: "+err.Error()))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Comparison writes a side-by-side view of both runs and the verdict.
func Comparison(w io.Writer, c compare.Comparison) error {
	k, p := c.Kruskal, c.Prim
	t := newTable("Metric", "Kruskal", "Prim").
		Row("Edges", strconv.Itoa(k.Tree.Len()), strconv.Itoa(p.Tree.Len())).
		Row("Total weight", weight(k.Tree.Total), weight(p.Tree.Total)).
		Row("Elapsed", k.Elapsed.String(), p.Elapsed.String()).
		Row("Spanning", strconv.FormatBool(k.Tree.Complete()), strconv.FormatBool(p.Tree.Complete()))

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render("Kruskal vs Prim"))
	fmt.Fprintln(&b, t.String())
	fmt.Fprintf(&b, "Weight delta: %s\n", weight(c.Delta))
	fmt.Fprintf(&b, "Candidate weight: %s\n", weight(c.CandidateWeight))
	fmt.Fprintf(&b, "Faster: %s by %s (%s)\n", c.Faster, absDuration(k.Elapsed-p.Elapsed), ratio(c.Speedup))
	for i, comp := range c.Components {
		fmt.Fprintf(&b, "Component %d: %v\n", i+1, comp)
	}
	if c.Passed {
		fmt.Fprintln(&b, passStyle.Render("Verification: PASSED"))
	} else {
		fmt.Fprintln(&b, failStyle.Render("Verification: FAILED ("+c.Outcome()+")"))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Trials writes per-engine timing statistics over repeated comparisons.
func Trials(w io.Writer, r compare.TrialReport) error {
	t := newTable("Engine", "Mean", "Min", "Max")
	for _, row := range []struct {
		name string
		s    compare.Stats
	}{
		{"kruskal", r.KruskalStats},
		{"prim", r.PrimStats},
	} {
		t.Row(row.name, row.s.Mean.String(), row.s.Min.String(), row.s.Max.String())
	}

	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(fmt.Sprintf("Trials %s (%d runs)", r.ID, r.Trials)))
	fmt.Fprintln(&b, t.String())
	fmt.Fprintf(&b, "Faster: %s (%s)\n", r.Faster, ratio(r.Speedup))
	if r.Passed {
		fmt.Fprintln(&b, passStyle.Render("Verification: PASSED"))
	} else {
		fmt.Fprintln(&b, failStyle.Render(fmt.Sprintf("Verification: FAILED in %d of %d trials", r.Failures, r.Trials)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}
