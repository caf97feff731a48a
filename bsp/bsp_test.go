package bsp_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/bsp"
)

var _ = check.Suite(new(PoolTestSuite))
var _ = check.Suite(new(ExecutorTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type PoolTestSuite struct{}

func (s *PoolTestSuite) TestForEachVisitsEveryVertexOnce(c *check.C) {
	var (
		size   = uint32(10000)
		visits = make([]uint32, size)
	)

	pool := bsp.NewPool(4)
	pool.ForEach(0, size, func(v uint32) {
		atomic.AddUint32(&visits[v], 1)
	})

	for v, count := range visits {
		c.Assert(count, check.Equals, uint32(1), check.Commentf("vertex %d", v))
	}
}

func (s *PoolTestSuite) TestForEachSubRange(c *check.C) {
	var visited int64

	pool := bsp.NewPool(2)
	pool.ForEach(100, 200, func(v uint32) {
		c.Assert(v >= 100 && v < 200, check.Equals, true)
		atomic.AddInt64(&visited, 1)
	})

	c.Assert(visited, check.Equals, int64(100))
}

func (s *PoolTestSuite) TestForEachEmptyRange(c *check.C) {
	pool := bsp.NewPool(2)
	pool.ForEach(10, 10, func(uint32) {
		c.Fatal("operator invoked on an empty range")
	})
}

type ExecutorTestSuite struct{}

func (s *ExecutorTestSuite) TestRunsUntilQuiescent(c *check.C) {
	// The round produces decreasing amounts of work; the executor must
	// stop right after the first round that produces none.
	remaining := 3

	exec := bsp.NewExecutor(func(_ context.Context, step int) (int, error) {
		work := remaining
		remaining--

		return work, nil
	}, bsp.ExecutorCallbacks{})

	c.Assert(exec.RunToCompletion(context.TODO(), 100), check.IsNil)
	c.Assert(exec.Step(), check.Equals, 3)
}

func (s *ExecutorTestSuite) TestMaxStepsExceeded(c *check.C) {
	exec := bsp.NewExecutor(func(context.Context, int) (int, error) {
		return 1, nil
	}, bsp.ExecutorCallbacks{})

	err := exec.RunToCompletion(context.TODO(), 5)
	c.Assert(errors.Is(err, bsp.ErrMaxStepsExceeded), check.Equals, true)
}

func (s *ExecutorTestSuite) TestCallbacksRunAroundEveryStep(c *check.C) {
	var preSteps, postSteps int

	exec := bsp.NewExecutor(func(context.Context, int) (int, error) {
		return 0, nil
	}, bsp.ExecutorCallbacks{
		PreStep: func(context.Context, int) error {
			preSteps++

			return nil
		},
		PostStep: func(_ context.Context, _, activeInStep int) error {
			postSteps++
			c.Assert(activeInStep, check.Equals, 0)

			return nil
		},
	})

	c.Assert(exec.RunToCompletion(context.TODO(), 10), check.IsNil)
	c.Assert(preSteps, check.Equals, 1)
	c.Assert(postSteps, check.Equals, 1)
}

func (s *ExecutorTestSuite) TestRoundErrorStopsExecution(c *check.C) {
	boom := errors.New("operator failure")

	exec := bsp.NewExecutor(func(context.Context, int) (int, error) {
		return 0, boom
	}, bsp.ExecutorCallbacks{})

	c.Assert(errors.Is(exec.RunToCompletion(context.TODO(), 10), boom), check.Equals, true)
}

func (s *ExecutorTestSuite) TestExpiredContext(c *check.C) {
	ctx, cancelFn := context.WithCancel(context.TODO())
	cancelFn()

	exec := bsp.NewExecutor(func(context.Context, int) (int, error) {
		c.Fatal("round executed with an expired context")

		return 0, nil
	}, bsp.ExecutorCallbacks{})

	c.Assert(errors.Is(exec.RunToCompletion(ctx, 10), context.Canceled), check.Equals, true)
}
