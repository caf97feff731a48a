package centrality

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/juju/clock/testclock"
	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/bc"
	"github.com/mycok/uCentral/graph"
	"github.com/mycok/uCentral/partition"
	"github.com/mycok/uCentral/service/centrality/mocks"
)

var _ = check.Suite(new(ConfigTestSuite))
var _ = check.Suite(new(CentralityServiceTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type ConfigTestSuite struct{}

func (s *ConfigTestSuite) TestConfigValidation(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	originalConfig := Config{
		GraphAPI:            mocks.NewMockGraphAPI(ctrl),
		ScoreAPI:            mocks.NewMockScoreAPI(ctrl),
		HostDetector:        partition.Fixed{Host: 0, NumHosts: 1},
		NumOfComputeWorkers: 4,
		UpdateInterval:      time.Minute,
	}

	config := originalConfig
	c.Assert(config.validate(), check.IsNil)

	c.Assert(config.Clock, check.Not(check.IsNil), check.Commentf("default clock was not assigned"))
	c.Assert(config.Logger, check.Not(check.IsNil), check.Commentf("default logger was not assigned"))

	config = originalConfig
	config.GraphAPI = nil
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*graph API not provided.*")

	config = originalConfig
	config.ScoreAPI = nil
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*score API not provided.*")

	config = originalConfig
	config.HostDetector = nil
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*host detector not provided.*")

	config = originalConfig
	config.NumOfComputeWorkers = -1
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*invalid value for compute workers.*")

	config = originalConfig
	config.UpdateInterval = 0
	c.Assert(config.validate(), check.ErrorMatches, "(?ms).*invalid value for update interval.*")
}

type CentralityServiceTestSuite struct{}

func (s *CentralityServiceTestSuite) TestFullRun(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	mockGraph := mocks.NewMockGraphAPI(ctrl)
	mockScores := mocks.NewMockScoreAPI(ctrl)
	clk := testclock.NewClock(time.Now())

	config := Config{
		GraphAPI:            mockGraph,
		ScoreAPI:            mockScores,
		HostDetector:        partition.Fixed{Host: 0, NumHosts: 1},
		Sources:             bc.SourceConfig{Mode: bc.SingleSource, StartVertex: 0},
		Clock:               clk,
		NumOfComputeWorkers: 1,
		UpdateInterval:      time.Minute,
	}

	svc, err := New(config)
	c.Assert(err, check.IsNil)

	ctx, cancelFn := context.WithCancel(context.TODO())
	defer cancelFn()

	// The diamond graph: two equal shortest paths from 0 to 3.
	mockEdgeIt := mocks.NewMockEdgeIterator(ctrl)
	gomock.InOrder(
		mockEdgeIt.EXPECT().Next().Return(true),
		mockEdgeIt.EXPECT().Edge().Return(graph.Edge{Src: 0, Dst: 1}),
		mockEdgeIt.EXPECT().Next().Return(true),
		mockEdgeIt.EXPECT().Edge().Return(graph.Edge{Src: 0, Dst: 2}),
		mockEdgeIt.EXPECT().Next().Return(true),
		mockEdgeIt.EXPECT().Edge().Return(graph.Edge{Src: 1, Dst: 3}),
		mockEdgeIt.EXPECT().Next().Return(true),
		mockEdgeIt.EXPECT().Edge().Return(graph.Edge{Src: 2, Dst: 3}),
		mockEdgeIt.EXPECT().Next().Return(false),
	)
	mockEdgeIt.EXPECT().Error().Return(nil)
	mockEdgeIt.EXPECT().Close().Return(nil)

	mockGraph.EXPECT().NumVertices().Return(uint64(4), nil).Times(2)
	mockGraph.EXPECT().Edges().Return(mockEdgeIt, nil)

	mockScores.EXPECT().UpsertScore(uint64(0), 0.0)
	mockScores.EXPECT().UpsertScore(uint64(1), 0.5)
	mockScores.EXPECT().UpsertScore(uint64(2), 0.5)
	mockScores.EXPECT().UpsertScore(uint64(3), 0.0)

	go func() {
		// Wait until the main loop calls time.After (or timeout if 10
		// sec elapse) and advance the time to trigger a centrality pass.
		c.Assert(clk.WaitAdvance(time.Minute, 10*time.Second, 1), check.IsNil)

		// Wait until the main loop calls time.After again and cancel
		// the context.
		c.Assert(clk.WaitAdvance(time.Millisecond, 10*time.Second, 1), check.IsNil)
		cancelFn()
	}()

	// Enter the blocking main loop.
	err = svc.Run(ctx)
	c.Assert(err, check.IsNil)
}

func (s *CentralityServiceTestSuite) TestRunOnNonMasterHost(c *check.C) {
	ctrl := gomock.NewController(c)
	defer ctrl.Finish()

	clk := testclock.NewClock(time.Now())

	config := Config{
		GraphAPI:            mocks.NewMockGraphAPI(ctrl),
		ScoreAPI:            mocks.NewMockScoreAPI(ctrl),
		HostDetector:        partition.Fixed{Host: 1, NumHosts: 2},
		Sources:             bc.SourceConfig{Mode: bc.AllSources},
		Clock:               clk,
		NumOfComputeWorkers: 1,
		UpdateInterval:      time.Minute,
	}

	svc, err := New(config)
	c.Assert(err, check.IsNil)

	go func() {
		// Wait until the main loop calls time.After and advance the time.
		// The service will check the host information, see that it is not
		// assigned to host 0 and exit the main loop.
		c.Assert(clk.WaitAdvance(time.Minute, 10*time.Second, 1), check.IsNil)
	}()

	// Enter the blocking main loop.
	err = svc.Run(context.TODO())
	c.Assert(err, check.IsNil)
}
