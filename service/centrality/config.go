package centrality

import (
	"fmt"
	"io"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uCentral/bc"
	"github.com/mycok/uCentral/graph"
	"github.com/mycok/uCentral/partition"
)

// GraphAPI defines a minimum set of API methods for streaming the edge list
// that centrality scores are computed over.
type GraphAPI interface {
	// NumVertices returns the size of the global vertex set.
	NumVertices() (uint64, error)

	// Edges returns an iterator over every edge of the graph.
	Edges() (graph.EdgeIterator, error)
}

// ScoreAPI defines a minimum set of API methods for publishing computed
// centrality scores.
type ScoreAPI interface {
	// UpsertScore creates or overwrites the centrality score of a vertex.
	UpsertScore(vertex uint64, score float64) error
}

// Config defines configurations for the centrality service.
type Config struct {
	// API for streaming the graph's edge list.
	GraphAPI GraphAPI

	// API for publishing computed scores.
	ScoreAPI ScoreAPI

	// An API for detecting the host slot assignment for this service.
	HostDetector partition.Detector

	// Source vertex selection for each computation pass.
	Sources bc.SourceConfig

	// The number of workers to spin up for the per-vertex operator passes.
	// If not specified, a default value of 1 will be used instead.
	NumOfComputeWorkers int

	// The per-phase round budget handed to the calculator. If not
	// specified the calculator default will be used instead.
	MaxIterations int

	// The duration between subsequent computation passes.
	UpdateInterval time.Duration

	// A clock instance for generating time-related events. If not
	// specified, the default wall-clock will be used instead.
	Clock clock.Clock

	// The logger to use. If not defined an output-discarding logger will
	// be used instead.
	Logger *logrus.Entry
}

func (config *Config) validate() error {
	var err error

	if config.GraphAPI == nil {
		err = multierror.Append(err, fmt.Errorf("graph API not provided"))
	}

	if config.ScoreAPI == nil {
		err = multierror.Append(err, fmt.Errorf("score API not provided"))
	}

	if config.HostDetector == nil {
		err = multierror.Append(err, fmt.Errorf("host detector not provided"))
	}

	if config.NumOfComputeWorkers < 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for compute workers"))
	} else if config.NumOfComputeWorkers == 0 {
		config.NumOfComputeWorkers = 1
	}

	if config.UpdateInterval <= 0 {
		err = multierror.Append(err, fmt.Errorf("invalid value for update interval"))
	}

	if config.Clock == nil {
		config.Clock = clock.WallClock
	}

	if config.Logger == nil {
		discardingLogger := logrus.New()
		discardingLogger.SetOutput(io.Discard)
		config.Logger = logrus.NewEntry(discardingLogger)
	}

	return err
}
