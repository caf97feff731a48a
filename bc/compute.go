package bc

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"

	"github.com/mycok/uCentral/bsp"
	"github.com/mycok/uCentral/cluster"
)

// resetIteration restores the per-source state of every local replica: the
// done flags and DAG degree counters are cleared and the distance, path
// count and propagation token are seeded according to whether the vertex is
// the new source.
//
// The degree counters are asserted to be zero before the clearing: the σ-
// and δ-phases of the previous source must have drained them. The one
// exception is the previous source itself, whose successor count is never
// trimmed because dependency propagation skips edges into the source.
func (c *Calculator) resetIteration(src uint64, prevSrc uint64, hasPrev bool) {
	start, end := c.graph.LocalRange()

	c.pool.ForEach(start, end, func(v uint32) {
		st := &c.states[v]
		gid := c.graph.GlobalID(v)

		if st.npred != 0 {
			panic(fmt.Sprintf(
				"reset: vertex %d still has %d unsettled predecessors", gid, st.npred,
			))
		}

		if st.nsucc != 0 && (!hasPrev || gid != prevSrc) {
			panic(fmt.Sprintf(
				"reset: vertex %d still has %d unsettled successors", gid, st.nsucc,
			))
		}

		st.npred = 0
		st.nsucc = 0
		st.spDone = false
		st.depDone = false

		if gid == src {
			st.dist = 0
			st.sigma = 1
			st.propFlag = true
		} else {
			st.dist = Infinity
			st.sigma = 0
			st.propFlag = false
		}
	})
}

// runBFS relaxes hop distances from the source until no host lowers a
// distance for an entire round. The operator pulls: it reads the distance
// of each out-edge destination and lowers its own.
func (c *Calculator) runBFS(ctx context.Context) error {
	start, end := c.graph.LocalRangeWithEdges()

	round := func(ctx context.Context, step int) (int, error) {
		c.work.Set(0)

		c.pool.ForEach(start, end, func(v uint32) {
			st := &c.states[v]

			for _, t := range c.graph.OutEdges(v) {
				nd := atomic.LoadUint32(&c.states[t].dist) + 1
				if minUint32(&st.dist, nd) {
					c.distField.bits.Set(v)
					c.work.Aggregate(1)
				}
			}
		})

		if err := c.syncField(ctx, c.distField, cluster.ReadAny, "bfs"); err != nil {
			return 0, err
		}

		if err := c.transport.AllReduce(ctx, c.work); err != nil {
			return 0, fmt.Errorf("bfs: reducing work accumulator: %w", err)
		}

		return c.work.Get().(int), nil
	}

	return c.runPhase(ctx, "bfs", round)
}

// runPredSucc counts, in a single superstep, the unsettled predecessors and
// successors of every reached vertex on the shortest-path DAG. The
// successor counter lives on the edge destination and is incremented
// atomically: several local sources may target the same replica in
// parallel.
func (c *Calculator) runPredSucc(ctx context.Context) error {
	start, end := c.graph.LocalRangeWithEdges()

	c.pool.ForEach(start, end, func(v uint32) {
		st := &c.states[v]
		if st.dist == Infinity {
			return
		}

		for _, t := range c.graph.OutEdges(v) {
			if c.states[t].dist+1 == st.dist {
				st.npred++
				c.npredField.bits.Set(v)

				atomic.AddUint32(&c.states[t].nsucc, 1)
				c.nsuccField.bits.Set(t)
			}
		}
	})

	if err := c.syncField(ctx, c.npredField, cluster.ReadAny, "pred_and_succ"); err != nil {
		return err
	}

	return c.syncField(ctx, c.nsuccField, cluster.ReadAny, "pred_and_succ")
}

// runNumShortestPaths propagates shortest-path counts down the DAG until a
// whole round passes without work. Each round: vertices with unsettled
// predecessors consume the finalized counts of token-holding predecessors
// into their trim/toAdd slots, the slots are reconciled and folded in, and
// the token state machine advances.
func (c *Calculator) runNumShortestPaths(ctx context.Context) error {
	withEdgesStart, withEdgesEnd := c.graph.LocalRangeWithEdges()
	allStart, allEnd := c.graph.LocalRange()

	round := func(ctx context.Context, step int) (int, error) {
		c.work.Set(0)

		c.pool.ForEach(withEdgesStart, withEdgesEnd, func(v uint32) {
			st := &c.states[v]
			if st.dist == Infinity || st.npred == 0 {
				return
			}

			for _, t := range c.graph.OutEdges(v) {
				tst := &c.states[t]

				// Only consume predecessors whose token is set: their
				// path count is finalized and may feed successors.
				if tst.propFlag && tst.dist+1 == st.dist {
					st.trim++
					st.toAdd += tst.sigma

					c.trimField.bits.Set(v)
					c.toAddField.bits.Set(v)
					c.work.Aggregate(1)
				}
			}
		})

		if err := c.syncField(ctx, c.trimField, cluster.ReadAny, "num_shortest_paths"); err != nil {
			return 0, err
		}

		c.pool.ForEach(allStart, allEnd, func(v uint32) {
			st := &c.states[v]
			if st.trim > 0 {
				st.npred -= st.trim
				st.trim = 0
			}
		})

		if err := c.syncField(ctx, c.toAddField, cluster.ReadAny, "num_shortest_paths"); err != nil {
			return 0, err
		}

		c.pool.ForEach(allStart, allEnd, func(v uint32) {
			st := &c.states[v]
			if st.toAdd > 0 {
				st.sigma += st.toAdd
				st.toAdd = 0
			}
		})

		c.pool.ForEach(allStart, allEnd, c.numShortestPathsFlagOperator)

		if err := c.transport.AllReduce(ctx, c.work); err != nil {
			return 0, fmt.Errorf("num_shortest_paths: reducing work accumulator: %w", err)
		}

		return c.work.Get().(int), nil
	}

	return c.runPhase(ctx, "num_shortest_paths", round)
}

// numShortestPathsFlagOperator advances the per-vertex token state machine
// after a σ-round. A vertex whose predecessors have all settled takes the
// token exactly once; it hands the token back as soon as its count has been
// consumed, unless it is a DAG leaf: leaves keep the token so dependency
// propagation can trigger on them.
func (c *Calculator) numShortestPathsFlagOperator(v uint32) {
	st := &c.states[v]
	if st.dist == Infinity {
		return
	}

	if st.npred == 0 && st.propFlag {
		if st.nsucc != 0 {
			// The count has been consumed; retire the token.
			st.propFlag = false

			if !st.spDone {
				st.spDone = true
			}
		}
	} else if st.npred == 0 && !st.spDone {
		if st.propFlag {
			panic(fmt.Sprintf(
				"num_shortest_paths: vertex %d took a second token",
				c.graph.GlobalID(v),
			))
		}

		st.propFlag = true
		st.spDone = true
	}
}

// runDependencyPropagation back-propagates the Brandes dependency from the
// DAG leaves towards the source until a whole round passes without work.
// Leaves push their contribution into the trim2/toAddF slots of their DAG
// predecessors; the slots are reconciled and folded in, and vertices whose
// successors have all settled become the next leaves.
func (c *Calculator) runDependencyPropagation(ctx context.Context, src uint64) error {
	withEdgesStart, withEdgesEnd := c.graph.LocalRangeWithEdges()
	allStart, allEnd := c.graph.LocalRange()

	round := func(ctx context.Context, step int) (int, error) {
		c.work.Set(0)

		c.pool.ForEach(withEdgesStart, withEdgesEnd, func(v uint32) {
			st := &c.states[v]
			if st.dist == Infinity || !st.propFlag {
				return
			}

			if st.nsucc != 0 {
				panic(fmt.Sprintf(
					"dependency_propagation: vertex %d holds the token with %d unsettled successors",
					c.graph.GlobalID(v), st.nsucc,
				))
			}

			dep := st.delta

			for _, t := range c.graph.OutEdges(v) {
				// The source accumulates no dependency.
				if c.graph.GlobalID(t) == src {
					continue
				}

				tst := &c.states[t]

				// This vertex is a successor of t on the DAG.
				if tst.dist+1 == st.dist {
					atomic.AddUint32(&tst.trim2, 1)
					addFloat64(
						&tst.toAddF,
						float64(tst.sigma)/float64(st.sigma)*(1.0+dep),
					)

					c.trim2Field.bits.Set(t)
					c.toAddFField.bits.Set(t)
					c.work.Aggregate(1)
				}
			}

			// Retire the token so the dependency is pushed exactly once.
			st.propFlag = false
			if !st.depDone {
				st.depDone = true
			}
		})

		if err := c.syncField(ctx, c.trim2Field, cluster.ReadAny, "dependency_propagation"); err != nil {
			return 0, err
		}

		c.pool.ForEach(allStart, allEnd, func(v uint32) {
			st := &c.states[v]
			if st.trim2 > 0 {
				st.nsucc -= st.trim2
				st.trim2 = 0
			}
		})

		if err := c.syncField(ctx, c.toAddFField, cluster.ReadAny, "dependency_propagation"); err != nil {
			return 0, err
		}

		c.pool.ForEach(allStart, allEnd, func(v uint32) {
			st := &c.states[v]
			if toAddF := math.Float64frombits(st.toAddF); toAddF > 0 {
				st.delta += toAddF
				st.toAddF = 0
			}
		})

		c.pool.ForEach(withEdgesStart, withEdgesEnd, func(v uint32) {
			st := &c.states[v]
			if st.dist != Infinity && st.nsucc == 0 && !st.depDone {
				st.propFlag = true
				st.depDone = true
			}
		})

		if err := c.transport.AllReduce(ctx, c.work); err != nil {
			return 0, fmt.Errorf("dependency_propagation: reducing work accumulator: %w", err)
		}

		return c.work.Get().(int), nil
	}

	return c.runPhase(ctx, "dependency_propagation", round)
}

// accumulateBC folds the finalized dependency of each owned vertex into its
// betweenness centrality and clears the dependency on every replica so the
// next source starts clean.
func (c *Calculator) accumulateBC() {
	start, end := c.graph.LocalRange()

	c.pool.ForEach(start, end, func(v uint32) {
		st := &c.states[v]
		if st.delta > 0 {
			if c.graph.IsOwned(v) {
				st.bc += st.delta
			}

			st.delta = 0
		}
	})
}

// syncField reconciles one delta field across all replicas and clears its
// dirty set.
func (c *Calculator) syncField(
	ctx context.Context,
	field *fieldView,
	read cluster.ReadLocation,
	phase string,
) error {

	if err := c.transport.SyncField(ctx, field, field.reduce, read); err != nil {
		return fmt.Errorf("%s: syncing %s: %w", phase, field.name, err)
	}

	field.bits.Reset()

	return nil
}

// runPhase drives a phase's rounds to convergence under the configured
// iteration cap.
func (c *Calculator) runPhase(ctx context.Context, name string, round bsp.RoundFunc) error {
	startedAt := c.clock.Now()
	exec := c.executorFactory(round, bsp.ExecutorCallbacks{})

	if err := exec.RunToCompletion(ctx, c.cfg.MaxIterations); err != nil {
		return fmt.Errorf("%s phase: %w", name, err)
	}

	c.logger.WithFields(map[string]interface{}{
		"phase":  name,
		"rounds": exec.Step() + 1,
		"took":   c.clock.Now().Sub(startedAt).String(),
	}).Debug("phase converged")

	return nil
}
