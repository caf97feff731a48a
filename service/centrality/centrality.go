/*
	centrality implements the periodic betweenness centrality service: on
	every update interval it streams the configured graph's edge list,
	runs the per-source pipeline over it and publishes the resulting
	scores.
*/

package centrality

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/mycok/uCentral/bc"
	"github.com/mycok/uCentral/cluster/memory"
	"github.com/mycok/uCentral/graph"
	"github.com/mycok/uCentral/partition"
)

// Service represents the centrality computation service for the engine. It
// satisfies the service.Service interface.
type Service struct {
	config Config
}

// New creates and returns a fully configured centrality service instance.
func New(config Config) (*Service, error) {
	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("centrality service: config validation failed: %w", err)
	}

	return &Service{config: config}, nil
}

// Name returns the name of the service.
func (svc *Service) Name() string { return "centrality" }

// Run executes the service and blocks until the context gets cancelled
// or an error occurs.
func (svc *Service) Run(ctx context.Context) error {
	svc.config.Logger.WithField(
		"update_interval", svc.config.UpdateInterval.String(),
	).Info("started service")
	defer svc.config.Logger.Info("stopped service")

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-svc.config.Clock.After(svc.config.UpdateInterval):
			currHost, _, err := svc.config.HostDetector.HostInfo()
			if err != nil {
				if errors.Is(err, partition.ErrNoHostDataAvailableYet) {
					svc.config.Logger.Warn(
						"deferring centrality pass: host data not yet available",
					)

					continue
				}

				return err
			}

			if currHost != 0 {
				svc.config.Logger.Info(
					"service should only run on the master node of the application cluster",
				)

				return nil
			}

			if err := svc.updateScores(ctx); err != nil {
				return err
			}
		}
	}
}

// updateScores runs one full computation pass and publishes the scores.
func (svc *Service) updateScores(ctx context.Context) error {
	passID := uuid.New()

	svc.config.Logger.WithField("pass_id", passID).Info("started centrality pass")

	startedAt := svc.config.Clock.Now()

	numVertices, err := svc.config.GraphAPI.NumVertices()
	if err != nil {
		return fmt.Errorf("centrality pass: %w", err)
	}

	sources, err := svc.config.Sources.Sources(numVertices)
	if err != nil {
		return fmt.Errorf("centrality pass: %w", err)
	}

	// The service computes in a single process; the pipeline phases pull
	// along in-edges, so the partition is built over the reversed edges.
	partitions, err := graph.Build(graph.Reversed(edgeSource{svc.config.GraphAPI}), 1)
	if err != nil {
		return fmt.Errorf("centrality pass: %w", err)
	}

	hub, err := memory.NewHub(1, partitions[0])
	if err != nil {
		return fmt.Errorf("centrality pass: %w", err)
	}

	endpoint, err := hub.Endpoint(0)
	if err != nil {
		return fmt.Errorf("centrality pass: %w", err)
	}

	calculator, err := bc.NewCalculator(bc.Config{
		Graph:          partitions[0],
		Transport:      endpoint,
		ComputeWorkers: svc.config.NumOfComputeWorkers,
		MaxIterations:  svc.config.MaxIterations,
		Logger:         svc.config.Logger,
		Clock:          svc.config.Clock,
	})
	if err != nil {
		return fmt.Errorf("centrality pass: %w", err)
	}
	defer func() { _ = calculator.Close() }()

	if err := calculator.Run(ctx, sources); err != nil {
		return fmt.Errorf("centrality pass: %w", err)
	}

	var published int
	err = calculator.Scores(func(vertex uint64, score float64) error {
		published++

		return svc.config.ScoreAPI.UpsertScore(vertex, score)
	})
	if err != nil {
		return fmt.Errorf("centrality pass: publishing scores: %w", err)
	}

	svc.config.Logger.WithFields(logrus.Fields{
		"pass_id":          passID,
		"num_sources":      len(sources),
		"scores_published": published,
		"took":             svc.config.Clock.Now().Sub(startedAt).String(),
	}).Info("completed centrality pass")

	return nil
}

// edgeSource adapts the service's GraphAPI to the graph.EdgeSource
// interface.
type edgeSource struct {
	api GraphAPI
}

func (s edgeSource) NumVertices() (uint64, error) { return s.api.NumVertices() }

func (s edgeSource) Edges() (graph.EdgeIterator, error) { return s.api.Edges() }
