package bc_test

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/bc"
	"github.com/mycok/uCentral/bsp"
	"github.com/mycok/uCentral/cluster/memory"
	"github.com/mycok/uCentral/graph"
	memgraph "github.com/mycok/uCentral/graph/store/memory"
)

var _ = check.Suite(new(CalculatorTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type CalculatorTestSuite struct{}

// scoreDelta is the tolerance for comparing accumulated floating point
// scores whose reduction order may differ between runs.
const scoreDelta = 1e-9

func (s *CalculatorTestSuite) TestTriangleAllSources(c *check.C) {
	// Every pair is connected by a unique shortest path with no
	// intermediate vertex.
	scores := computeScores(c, 3, [][2]uint64{{0, 1}, {1, 2}, {0, 2}}, 1, bc.SourceConfig{
		Mode: bc.AllSources,
	})

	assertScores(c, scores, []float64{0, 0, 0})
}

func (s *CalculatorTestSuite) TestPathAllSources(c *check.C) {
	// Vertex 1 lies on the paths 0->2 and 0->3; vertex 2 on 0->3 and 1->3.
	scores := computeScores(c, 4, [][2]uint64{{0, 1}, {1, 2}, {2, 3}}, 1, bc.SourceConfig{
		Mode: bc.AllSources,
	})

	assertScores(c, scores, []float64{0, 2, 2, 0})
}

func (s *CalculatorTestSuite) TestPathSingleSource(c *check.C) {
	scores := computeScores(c, 4, [][2]uint64{{0, 1}, {1, 2}, {2, 3}}, 1, bc.SourceConfig{
		Mode:        bc.SingleSource,
		StartVertex: 0,
	})

	assertScores(c, scores, []float64{0, 2, 1, 0})
}

func (s *CalculatorTestSuite) TestDiamondSingleSource(c *check.C) {
	// Two equal-length paths 0->3 split the dependency evenly between the
	// intermediate vertices.
	scores := computeScores(
		c, 4,
		[][2]uint64{{0, 1}, {0, 2}, {1, 3}, {2, 3}},
		1,
		bc.SourceConfig{Mode: bc.SingleSource, StartVertex: 0},
	)

	assertScores(c, scores, []float64{0, 0.5, 0.5, 0})
}

func (s *CalculatorTestSuite) TestDisconnectedComponents(c *check.C) {
	// Unreached vertices must not contribute to any score.
	scores := computeScores(c, 4, [][2]uint64{{0, 1}, {2, 3}}, 1, bc.SourceConfig{
		Mode: bc.AllSources,
	})

	assertScores(c, scores, []float64{0, 0, 0, 0})
}

func (s *CalculatorTestSuite) TestSelfLoopIgnored(c *check.C) {
	// A self-edge never satisfies the DAG predicate and must not create
	// shortest paths.
	scores := computeScores(c, 2, [][2]uint64{{0, 0}, {0, 1}}, 1, bc.SourceConfig{
		Mode: bc.AllSources,
	})

	assertScores(c, scores, []float64{0, 0})
}

func (s *CalculatorTestSuite) TestPartitionedRunMatchesSingleHost(c *check.C) {
	edges := [][2]uint64{
		{0, 1}, {1, 2}, {2, 3}, // a chain
		{0, 4}, {4, 3}, // a shortcut around it
		{3, 5}, {5, 0}, // a back edge closing a cycle
	}

	single := computeScores(c, 6, edges, 1, bc.SourceConfig{Mode: bc.AllSources})

	for _, numHosts := range []int{2, 3} {
		partitioned := computeScores(c, 6, edges, numHosts, bc.SourceConfig{
			Mode: bc.AllSources,
		})

		c.Assert(len(partitioned), check.Equals, len(single))
		for vertex, score := range single {
			delta := math.Abs(partitioned[vertex] - score)
			c.Assert(
				delta < scoreDelta, check.Equals, true,
				check.Commentf(
					"vertex %d: single-host score %f, %d-host score %f",
					vertex, score, numHosts, partitioned[vertex],
				),
			)
		}
	}
}

func (s *CalculatorTestSuite) TestRepeatedRunsAreIdentical(c *check.C) {
	edges := [][2]uint64{{0, 1}, {0, 2}, {1, 3}, {2, 3}, {3, 4}}
	config := bc.SourceConfig{Mode: bc.SampledSources, StartVertex: 0, NumOfSources: 3}

	first := computeScores(c, 5, edges, 1, config)
	second := computeScores(c, 5, edges, 1, config)

	c.Assert(len(second), check.Equals, len(first))
	for vertex, score := range first {
		delta := math.Abs(second[vertex] - score)
		c.Assert(
			delta < scoreDelta, check.Equals, true,
			check.Commentf("vertex %d: first run %f, second run %f", vertex, score, second[vertex]),
		)
	}
}

func (s *CalculatorTestSuite) TestSanityReport(c *check.C) {
	calc := buildCluster(c, 4, [][2]uint64{{0, 1}, {0, 2}, {1, 3}, {2, 3}}, 1)[0]

	sources, err := bc.SourceConfig{Mode: bc.SingleSource, StartVertex: 0}.Sources(4)
	c.Assert(err, check.IsNil)
	c.Assert(calc.Run(context.TODO(), sources), check.IsNil)

	report, err := calc.Sanity(context.TODO())
	c.Assert(err, check.IsNil)

	c.Assert(report.MaxBC, check.Equals, 0.5)
	c.Assert(report.MinBC, check.Equals, 0.0)
	c.Assert(math.Abs(report.SumBC-1.0) < scoreDelta, check.Equals, true)
}

func (s *CalculatorTestSuite) TestResetClearsScores(c *check.C) {
	calc := buildCluster(c, 4, [][2]uint64{{0, 1}, {1, 2}, {2, 3}}, 1)[0]

	sources, err := bc.SourceConfig{Mode: bc.AllSources}.Sources(4)
	c.Assert(err, check.IsNil)

	c.Assert(calc.Run(context.TODO(), sources), check.IsNil)
	first := collectScores(c, calc)

	c.Assert(calc.Reset(context.TODO()), check.IsNil)

	cleared := collectScores(c, calc)
	for vertex, score := range cleared {
		c.Assert(score, check.Equals, 0.0, check.Commentf("vertex %d", vertex))
	}

	c.Assert(calc.Run(context.TODO(), sources), check.IsNil)

	second := collectScores(c, calc)
	for vertex, score := range first {
		delta := math.Abs(second[vertex] - score)
		c.Assert(
			delta < scoreDelta, check.Equals, true,
			check.Commentf("vertex %d: first run %f, re-run %f", vertex, score, second[vertex]),
		)
	}
}

func (s *CalculatorTestSuite) TestMaxIterationsExceeded(c *check.C) {
	store := memgraph.NewEdgeStore(4)
	for _, e := range [][2]uint64{{0, 1}, {1, 2}, {2, 3}} {
		c.Assert(store.AddEdge(e[0], e[1]), check.IsNil)
	}

	partitions, err := graph.Build(graph.Reversed(store), 1)
	c.Assert(err, check.IsNil)

	hub, err := memory.NewHub(1, partitions[0])
	c.Assert(err, check.IsNil)

	endpoint, err := hub.Endpoint(0)
	c.Assert(err, check.IsNil)

	calc, err := bc.NewCalculator(bc.Config{
		Graph:         partitions[0],
		Transport:     endpoint,
		MaxIterations: 1,
	})
	c.Assert(err, check.IsNil)

	sources, err := bc.SourceConfig{Mode: bc.SingleSource, StartVertex: 0}.Sources(4)
	c.Assert(err, check.IsNil)

	err = calc.Run(context.TODO(), sources)
	c.Assert(err, check.NotNil)
	c.Assert(errors.Is(err, bsp.ErrMaxStepsExceeded), check.Equals, true)
	c.Assert(err, check.ErrorMatches, "(?ms).*bfs phase.*")
}

func (s *CalculatorTestSuite) TestConfigValidation(c *check.C) {
	_, err := bc.NewCalculator(bc.Config{})
	c.Assert(err, check.ErrorMatches, "(?ms).*graph partition not provided.*")
	c.Assert(err, check.ErrorMatches, "(?ms).*cluster transport not provided.*")
}

// buildCluster partitions the provided edge list across numHosts in-process
// hosts and returns one calculator per host.
func buildCluster(
	c *check.C, numVertices uint64, edges [][2]uint64, numHosts int,
) []*bc.Calculator {

	store := memgraph.NewEdgeStore(numVertices)
	for _, e := range edges {
		c.Assert(store.AddEdge(e[0], e[1]), check.IsNil)
	}

	partitions, err := graph.Build(graph.Reversed(store), numHosts)
	c.Assert(err, check.IsNil)

	hub, err := memory.NewHub(numHosts, partitions[0])
	c.Assert(err, check.IsNil)

	calculators := make([]*bc.Calculator, numHosts)
	for host := 0; host < numHosts; host++ {
		endpoint, err := hub.Endpoint(host)
		c.Assert(err, check.IsNil)

		calculators[host], err = bc.NewCalculator(bc.Config{
			Graph:          partitions[host],
			Transport:      endpoint,
			ComputeWorkers: 2,
		})
		c.Assert(err, check.IsNil)
	}

	return calculators
}

// computeScores runs the full pipeline on a cluster of numHosts hosts and
// merges the owned scores of every host.
func computeScores(
	c *check.C,
	numVertices uint64,
	edges [][2]uint64,
	numHosts int,
	config bc.SourceConfig,
) map[uint64]float64 {

	calculators := buildCluster(c, numVertices, edges, numHosts)

	sources, err := config.Sources(numVertices)
	c.Assert(err, check.IsNil)

	var wg sync.WaitGroup
	errs := make([]error, numHosts)

	wg.Add(numHosts)
	for host, calc := range calculators {
		go func(host int, calc *bc.Calculator) {
			defer wg.Done()

			errs[host] = calc.Run(context.TODO(), sources)
		}(host, calc)
	}
	wg.Wait()

	merged := make(map[uint64]float64)
	for host, calc := range calculators {
		c.Assert(errs[host], check.IsNil)

		for vertex, score := range collectScores(c, calc) {
			merged[vertex] = score
		}
	}

	return merged
}

func collectScores(c *check.C, calc *bc.Calculator) map[uint64]float64 {
	collected := make(map[uint64]float64)

	err := calc.Scores(func(vertex uint64, score float64) error {
		collected[vertex] = score

		return nil
	})
	c.Assert(err, check.IsNil)

	return collected
}

func assertScores(c *check.C, got map[uint64]float64, want []float64) {
	c.Assert(len(got), check.Equals, len(want))

	for vertex, score := range want {
		delta := math.Abs(got[uint64(vertex)] - score)
		c.Assert(
			delta < scoreDelta, check.Equals, true,
			check.Commentf("vertex %d: want %f, got %f", vertex, score, got[uint64(vertex)]),
		)
	}
}
