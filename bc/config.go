package bc

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uCentral/bsp"
	"github.com/mycok/uCentral/cluster"
)

// defaultMaxIterations is the per-phase round budget. A phase that still
// produces work past this many rounds aborts the run.
const defaultMaxIterations = 10000

// Config encapsulates the configuration options for creating a betweenness
// centrality calculator.
type Config struct {
	// Graph is this host's slice of the partitioned graph. The partition
	// must be built over the transpose of the input graph (see
	// graph.Reversed).
	Graph bsp.Graph

	// Transport is this host's membership in the cluster's sync engine.
	Transport cluster.Transport

	// ComputeWorkers specifies the number of workers used for the
	// per-vertex operator passes of each superstep. If not specified, a
	// single worker will be used.
	ComputeWorkers int

	// MaxIterations caps the number of rounds each phase may run before
	// the computation is declared divergent. If not specified a default of
	// 10000 will be used instead.
	MaxIterations int

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry

	// A clock instance for timing phase runs. If not specified, the
	// default wall-clock will be used instead.
	Clock clock.Clock
}

func (config *Config) validate() error {
	var err error

	if config.Graph == nil {
		err = multierror.Append(err, fmt.Errorf("graph partition not provided"))
	}

	if config.Transport == nil {
		err = multierror.Append(err, fmt.Errorf("cluster transport not provided"))
	}

	if config.ComputeWorkers < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for compute workers"))
	} else if config.ComputeWorkers == 0 {
		config.ComputeWorkers = 1
	}

	if config.MaxIterations < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for max iterations"))
	} else if config.MaxIterations == 0 {
		config.MaxIterations = defaultMaxIterations
	}

	if config.Logger == nil {
		discardingLogger := logrus.New()
		discardingLogger.SetOutput(io.Discard)
		config.Logger = logrus.NewEntry(discardingLogger)
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	return err
}
