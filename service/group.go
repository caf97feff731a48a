/*
	service defines the long-running services of the engine binary and a
	group runner that executes them as one unit.
*/

package service

import (
	"context"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// Service describes a long-running service of the centrality engine.
type Service interface {
	// Name returns the name of the service.
	Name() string

	// Run executes the service and blocks until the context gets cancelled
	// or an error occurs.
	Run(context.Context) error
}

// Group is a list of Service instances that can execute in parallel.
type Group []Service

// result pairs a finished service with whatever it returned.
type result struct {
	name string
	err  error
}

// Execute runs every Service in the group and blocks until all of them
// have returned. The first service failure cancels the shared run context
// so its peers wind down; every failure is reported, tagged with the
// failing service's name.
func (g Group) Execute(ctx context.Context) error {
	if len(g) == 0 {
		return nil
	}

	if ctx == nil {
		ctx = context.Background()
	}

	runCtx, cancelFn := context.WithCancel(ctx)
	defer cancelFn()

	results := make(chan result, len(g))
	for _, svc := range g {
		go func(svc Service) {
			results <- result{name: svc.Name(), err: svc.Run(runCtx)}
		}(svc)
	}

	// Collect exactly one result per service.
	var err error
	for range g {
		res := <-results
		if res.err == nil {
			continue
		}

		err = multierror.Append(err, fmt.Errorf("%s: %w", res.name, res.err))
		cancelFn()
	}

	return err
}
