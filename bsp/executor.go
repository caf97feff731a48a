package bsp

import (
	"context"
	"fmt"
)

// ErrMaxStepsExceeded is returned by an Executor when a computation is still
// producing work after its step budget has been spent.
var ErrMaxStepsExceeded = fmt.Errorf("bsp: maximum number of steps exceeded")

// RoundFunc executes one full superstep round of a phase: the local operator
// pass plus the delta reconciliation that follows it. It returns the number
// of work units produced across all hosts during the round.
type RoundFunc func(ctx context.Context, step int) (int, error)

// ExecutorCallbacks encapsulates optional hooks that an Executor invokes
// around every round. Nil callbacks are ignored.
type ExecutorCallbacks struct {
	// PreStep, if defined, is invoked before executing a round. This is the
	// place to reset accumulators and dirty sets used by the round.
	PreStep func(ctx context.Context, step int) error

	// PostStep, if defined, is invoked after running a round with the number
	// of work units the round produced.
	PostStep func(ctx context.Context, step, activeInStep int) error

	// ShouldRunAnotherStep, if defined, is consulted after every round. The
	// executor stops as soon as it returns false. When left undefined the
	// executor stops on the first round that produces no work.
	ShouldRunAnotherStep func(ctx context.Context, step, activeInStep int) (bool, error)
}

func initWithDefaultCallbacks(cb *ExecutorCallbacks) {
	if cb.PreStep == nil {
		cb.PreStep = func(context.Context, int) error { return nil }
	}

	if cb.PostStep == nil {
		cb.PostStep = func(context.Context, int, int) error { return nil }
	}

	if cb.ShouldRunAnotherStep == nil {
		cb.ShouldRunAnotherStep = func(_ context.Context, _, activeInStep int) (bool, error) {
			return activeInStep != 0, nil
		}
	}
}

// ExecutorFactory is a function that creates new Executor instances.
// Note: Should be used for cases where lazy object creation is desired.
type ExecutorFactory func(round RoundFunc, cb ExecutorCallbacks) *Executor

// Executor drives a phase's rounds until the phase converges, an error
// occurs, the context expires or the step budget runs out.
type Executor struct {
	round RoundFunc
	cbs   ExecutorCallbacks
	step  int
}

// NewExecutor initializes and returns an Executor instance for the provided
// round function.
func NewExecutor(round RoundFunc, cbs ExecutorCallbacks) *Executor {
	initWithDefaultCallbacks(&cbs)

	return &Executor{
		round: round,
		cbs:   cbs,
	}
}

// Step returns the zero-based index of the current round. After a run that
// converged it is the index of the last round executed, one less than the
// number of rounds; after a run that ran out of budget it equals maxSteps.
func (ex *Executor) Step() int { return ex.step }

// RunToCompletion executes rounds until the computation quiesces. A phase
// that is still producing work after maxSteps rounds aborts with an error
// wrapping ErrMaxStepsExceeded.
func (ex *Executor) RunToCompletion(ctx context.Context, maxSteps int) error {
	var (
		activeInStep int
		err          error
		shouldRun    bool
		cbs          = ex.cbs
	)

	for ; ; ex.step++ {
		if ex.step >= maxSteps {
			return fmt.Errorf("%w after %d steps", ErrMaxStepsExceeded, ex.step)
		}

		if err = ensureContextNotExpired(ctx); err != nil {
			return err
		} else if err = cbs.PreStep(ctx, ex.step); err != nil {
			return err
		} else if activeInStep, err = ex.round(ctx, ex.step); err != nil {
			return err
		} else if err = cbs.PostStep(ctx, ex.step, activeInStep); err != nil {
			return err
		} else if shouldRun, err = cbs.ShouldRunAnotherStep(
			ctx, ex.step, activeInStep,
		); !shouldRun || err != nil {
			return err
		}
	}
}

func ensureContextNotExpired(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}
