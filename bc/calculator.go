/*
	bc computes betweenness centrality for unweighted directed graphs that
	are partitioned across the hosts of a cluster. For every source vertex
	the engine runs a four-phase bulk-synchronous pipeline: pull-based BFS
	hop distances, predecessor/successor counting on the induced
	shortest-path DAG, shortest-path counting and Brandes dependency
	back-propagation. Replicas of a vertex accumulate deltas independently
	on each host and are reconciled by the cluster sync engine at every
	superstep boundary.
*/

package bc

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/juju/clock"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uCentral/bsp"
	"github.com/mycok/uCentral/bsp/aggregator"
	"github.com/mycok/uCentral/cluster"
)

// sourceProgressInterval is how many completed sources pass between
// progress log lines on long all-sources runs.
const sourceProgressInterval = 5000

// Calculator executes the per-source betweenness centrality pipeline on one
// host's slice of a partitioned graph.
type Calculator struct {
	cfg       Config
	graph     bsp.Graph
	transport cluster.Transport
	pool      *bsp.Pool
	logger    *logrus.Entry
	clock     clock.Clock

	states []nodeState

	distField   *fieldView
	npredField  *fieldView
	nsuccField  *fieldView
	trimField   *fieldView
	toAddField  *fieldView
	trim2Field  *fieldView
	toAddFField *fieldView

	work            *aggregator.IntAccumulator
	executorFactory bsp.ExecutorFactory
}

// NewCalculator returns a new Calculator instance using the provided config
// options.
func NewCalculator(cfg Config) (*Calculator, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf(
			"betweenness centrality calculator: config validation failed: %w", err,
		)
	}

	c := &Calculator{
		cfg:             cfg,
		graph:           cfg.Graph,
		transport:       cfg.Transport,
		pool:            bsp.NewPool(cfg.ComputeWorkers),
		logger:          cfg.Logger,
		clock:           cfg.Clock,
		states:          make([]nodeState, cfg.Graph.NumLocalVertices()),
		work:            new(aggregator.IntAccumulator),
		executorFactory: bsp.NewExecutor,
	}

	c.newFields()

	return c, nil
}

// SetExecutorFactory sets a custom executor factory for the calculator.
func (c *Calculator) SetExecutorFactory(factory bsp.ExecutorFactory) {
	c.executorFactory = factory
}

// Close releases the calculator's cluster membership.
func (c *Calculator) Close() error {
	return c.transport.Close()
}

// Run executes the full pipeline for every source in the provided sequence
// and folds the resulting dependencies into the persistent centrality
// scores. Every host of the cluster must call Run with the same sequence.
func (c *Calculator) Run(ctx context.Context, sources []uint64) error {
	var (
		prevSrc uint64
		hasPrev bool
	)

	startedAt := c.clock.Now()

	for i, src := range sources {
		if i%sourceProgressInterval == 0 && c.transport.HostID() == 0 {
			c.logger.WithFields(logrus.Fields{
				"source_index": i,
				"num_sources":  len(sources),
			}).Info("starting source batch")
		}

		if err := c.runSource(ctx, src, prevSrc, hasPrev); err != nil {
			return fmt.Errorf("source %d: %w", src, err)
		}

		prevSrc, hasPrev = src, true
	}

	c.logger.WithFields(logrus.Fields{
		"num_sources": len(sources),
		"took":        c.clock.Now().Sub(startedAt).String(),
	}).Info("betweenness centrality run complete")

	return nil
}

// runSource runs reset, BFS, predecessor/successor counting, shortest-path
// counting, dependency propagation and centrality accumulation for one
// source.
func (c *Calculator) runSource(ctx context.Context, src, prevSrc uint64, hasPrev bool) error {
	if src >= c.graph.NumGlobalVertices() {
		return fmt.Errorf(
			"source vertex outside the global range [0, %d)",
			c.graph.NumGlobalVertices(),
		)
	}

	c.resetIteration(src, prevSrc, hasPrev)

	if err := c.runBFS(ctx); err != nil {
		return err
	}

	if err := c.runPredSucc(ctx); err != nil {
		return err
	}

	if err := c.runNumShortestPaths(ctx); err != nil {
		return err
	}

	if err := c.runDependencyPropagation(ctx, src); err != nil {
		return err
	}

	c.accumulateBC()

	return nil
}

// Reset clears all per-vertex state, including the accumulated centrality
// scores, and waits for the other hosts to do the same. It allows the same
// calculator instance to be re-used for repeated benchmark runs.
func (c *Calculator) Reset(ctx context.Context) error {
	start, end := c.graph.LocalRange()

	c.pool.ForEach(start, end, func(v uint32) {
		c.states[v] = nodeState{}
	})

	for _, field := range []*fieldView{
		c.distField, c.npredField, c.nsuccField,
		c.trimField, c.toAddField, c.trim2Field, c.toAddFField,
	} {
		field.bits.Reset()
	}

	return c.transport.Barrier(ctx)
}

// Scores invokes the provided visitor for every vertex owned by this host
// with its accumulated centrality score.
func (c *Calculator) Scores(visit func(global uint64, score float64) error) error {
	start, end := c.graph.LocalRange()

	for v := start; v < end; v++ {
		if !c.graph.IsOwned(v) {
			continue
		}

		if err := visit(c.graph.GlobalID(v), c.states[v].bc); err != nil {
			return err
		}
	}

	return nil
}

// WriteScores dumps one "<global id> <score>" line per owned vertex to the
// provided writer, in the fixed-precision format used for verification.
func (c *Calculator) WriteScores(w io.Writer) error {
	return c.Scores(func(global uint64, score float64) error {
		_, err := fmt.Fprintf(w, "%d %.9f\n", global, score)

		return err
	})
}

// SanityReport summarises the centrality scores across the whole cluster.
type SanityReport struct {
	MaxBC float64
	MinBC float64
	SumBC float64
}

// Sanity reduces the maximum, minimum and sum of the owned centrality
// scores across all hosts. Every host receives the same report.
func (c *Calculator) Sanity(ctx context.Context) (SanityReport, error) {
	var (
		maxAgg aggregator.Float64Max
		minAgg aggregator.Float64Min
		sumAgg aggregator.Float64Accumulator
	)

	maxAgg.Set(0.0)
	minAgg.Set(math.MaxFloat64 / 4)

	start, end := c.graph.LocalRange()
	c.pool.ForEach(start, end, func(v uint32) {
		if !c.graph.IsOwned(v) {
			return
		}

		score := c.states[v].bc
		maxAgg.Aggregate(score)
		minAgg.Aggregate(score)
		sumAgg.Aggregate(score)
	})

	if err := c.transport.AllReduce(ctx, &maxAgg, &minAgg, &sumAgg); err != nil {
		return SanityReport{}, fmt.Errorf("sanity: reducing score aggregates: %w", err)
	}

	report := SanityReport{
		MaxBC: maxAgg.Get().(float64),
		MinBC: minAgg.Get().(float64),
		SumBC: sumAgg.Get().(float64),
	}

	if c.transport.HostID() == 0 {
		c.logger.WithFields(logrus.Fields{
			"max_bc": report.MaxBC,
			"min_bc": report.MinBC,
			"bc_sum": report.SumBC,
		}).Info("sanity check")
	}

	return report, nil
}
