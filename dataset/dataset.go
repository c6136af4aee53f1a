// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/roadmst/core"
)

var (
	// ErrEmptyPayload is returned when a document is empty or has no rows.
	ErrEmptyPayload = errors.New("dataset: payload has no rows")

	// ErrConflictingEdge is returned when two rows share an edge ID but
	// disagree on endpoints or distance.
	ErrConflictingEdge = errors.New("dataset: conflicting rows for edge")

	// ErrInvalidRow is returned when a row fails field validation.
	ErrInvalidRow = errors.New("dataset: invalid row")
)

// validate is shared; validator caches struct metadata per type.
var validate = validator.New()

// Row is one line of a road-candidate table.
type Row struct {
	X        *float64 `yaml:"x,omitempty" json:"x,omitempty"`
	Y        *float64 `yaml:"y,omitempty" json:"y,omitempty"`
	Start    int      `yaml:"start" json:"start"`
	End      int      `yaml:"end" json:"end"`
	Edge     int      `yaml:"edge" json:"edge" validate:"gte=0"`
	Distance float64  `yaml:"distance" json:"distance" validate:"gte=0"`
}

// Payload is a named road-candidate table.
type Payload struct {
	Name string `yaml:"name" json:"name"`
	Rows []Row  `yaml:"rows" json:"rows" validate:"dive"`
}

// Decode reads one YAML or JSON document from r and validates its rows.
// Unknown fields are rejected.
func Decode(r io.Reader) (*Payload, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Payload
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyPayload
		}
		return nil, fmt.Errorf("dataset: decode: %w", err)
	}
	if len(p.Rows) == 0 {
		return nil, ErrEmptyPayload
	}
	if err := validate.Struct(&p); err != nil {
		return nil, formatValidationError(err)
	}

	return &p, nil
}

// Load opens path and decodes it with Decode.
func Load(path string) (*Payload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}
	defer f.Close()

	p, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return p, nil
}

// LoadGraph loads path and builds its graph in one step.
func LoadGraph(path string) (*core.Graph, error) {
	p, err := Load(path)
	if err != nil {
		return nil, err
	}

	return p.Graph()
}

// Graph folds the payload rows into edges and builds a fresh core.Graph.
// Every call returns a new, independent graph.
//
// Steps:
//  1. Walk rows in order; the first row per edge ID defines the edge.
//  2. Later rows with the same ID must be the same segment, else ErrConflictingEdge.
//  3. Nodes are registered on first sight; coordinates come from the first row starting there.
//  4. core.NewGraph validates weights and endpoints.
func (p *Payload) Graph() (*core.Graph, error) {
	if p == nil || len(p.Rows) == 0 {
		return nil, ErrEmptyPayload
	}

	var (
		errs    error
		edges   = make([]core.Edge, 0, len(p.Rows))
		firstAt = make(map[int]int, len(p.Rows)) // edge ID -> row index
		nodes   = make([]core.Node, 0)
		nodeAt  = make(map[core.NodeID]int)
	)

	touch := func(id core.NodeID) int {
		i, ok := nodeAt[id]
		if !ok {
			i = len(nodes)
			nodeAt[id] = i
			nodes = append(nodes, core.Node{ID: id})
		}
		return i
	}

	for i, row := range p.Rows {
		from, to := core.NodeID(row.Start), core.NodeID(row.End)

		// 3. Node registration and coordinates.
		si := touch(from)
		touch(to)
		if nodes[si].Coord == nil && row.X != nil && row.Y != nil {
			nodes[si].Coord = &core.Point{X: *row.X, Y: *row.Y}
		}

		// 1–2. Edge folding.
		if j, seen := firstAt[row.Edge]; seen {
			if !sameSegment(p.Rows[j], row) {
				errs = multierror.Append(errs, fmt.Errorf("rows %d and %d (edge %d): %w", j+1, i+1, row.Edge, ErrConflictingEdge))
			}
			continue
		}
		firstAt[row.Edge] = i
		edges = append(edges, core.Edge{ID: row.Edge, From: from, To: to, Weight: row.Distance})
	}
	if errs != nil {
		return nil, errs
	}

	// 4. Graph invariants.
	g, err := core.NewGraph(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("dataset: build graph: %w", err)
	}

	return g, nil
}

// sameSegment reports whether two rows describe the same undirected segment.
func sameSegment(a, b Row) bool {
	if a.Distance != b.Distance {
		return false
	}

	return (a.Start == b.Start && a.End == b.End) || (a.Start == b.End && a.End == b.Start)
}

func formatValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidRow, err)
	}

	var out error
	for _, e := range verrs {
		switch e.Tag() {
		case "gte":
			out = multierror.Append(out, fmt.Errorf("%s: must be >= %s, got %v: %w", e.Namespace(), e.Param(), e.Value(), ErrInvalidRow))
		default:
			out = multierror.Append(out, fmt.Errorf("%s: validation failed (%s): %w", e.Namespace(), e.Tag(), ErrInvalidRow))
		}
	}

	return out
}
