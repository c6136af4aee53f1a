// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"io"
	"math"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/roadmst/core"
)

// DefaultTolerance is the largest absolute total-weight difference between
// the two engines that still counts as agreement.
const DefaultTolerance = 1e-2

// Config defines the configuration for a Harness.
type Config struct {
	// Absolute tolerance for the Kruskal/Prim total-weight check. If not
	// specified, DefaultTolerance is used.
	Tolerance float64

	// Start node for Prim. If nil, Prim starts from the smallest node ID.
	Start *core.NodeID

	// A clock instance used to measure elapsed time. If not specified, the
	// default wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will be
	// used instead.
	Logger *logrus.Entry

	// Optional prometheus collectors; nil disables metrics.
	Metrics *Metrics
}

func (config *Config) validate() error {
	var err error

	if config.Tolerance < 0 || math.IsNaN(config.Tolerance) || math.IsInf(config.Tolerance, 0) {
		err = multierror.Append(err, fmt.Errorf("invalid value for tolerance %v, must be finite and >= 0", config.Tolerance))
	}
	if config.Tolerance == 0 {
		config.Tolerance = DefaultTolerance
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Logger == nil {
		config.Logger = logrus.NewEntry(&logrus.Logger{Out: io.Discard})
	}

	return err
}
