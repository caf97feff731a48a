package memory_test

import (
	"context"
	"sync"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/bsp/aggregator"
	"github.com/mycok/uCentral/cluster"
	"github.com/mycok/uCentral/cluster/memory"
)

var _ = check.Suite(new(HubTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type HubTestSuite struct{}

// testTopology owns every vertex on host 0 and mirrors each on host 1.
type testTopology struct{}

func (testTopology) Owner(uint64) int          { return 0 }
func (testTopology) ReplicaHosts(uint64) []int { return []int{1} }

// testView is a two-slot field view over a single vertex field.
type testView struct {
	name   string
	reduce cluster.Reduction
	owned  bool

	values map[uint64]uint64
	dirty  map[uint64]bool
}

func (v *testView) Name() string { return v.name }

func (v *testView) ExtractMirrors(emit func(global, raw uint64)) {
	if v.owned {
		return
	}

	for gid, val := range v.values {
		if !v.dirty[gid] {
			continue
		}

		emit(gid, val)

		if v.reduce == cluster.ReduceAdd {
			v.values[gid] = 0
		}
	}
}

func (v *testView) Combine(global, raw uint64) {
	switch v.reduce {
	case cluster.ReduceMin:
		if raw < v.values[global] {
			v.values[global] = raw
		}
	case cluster.ReduceAdd:
		v.values[global] += raw
	}

	v.dirty[global] = true
}

func (v *testView) ExtractOwned(emit func(global, raw uint64)) {
	if !v.owned {
		return
	}

	for gid := range v.dirty {
		emit(gid, v.values[gid])
	}
}

func (v *testView) Assign(global, raw uint64) {
	v.values[global] = raw
}

func (s *HubTestSuite) TestSyncFieldAddReduction(c *check.C) {
	hub, err := memory.NewHub(2, testTopology{})
	c.Assert(err, check.IsNil)

	ownerView := &testView{
		name:   "counter",
		reduce: cluster.ReduceAdd,
		owned:  true,
		values: map[uint64]uint64{7: 3},
		dirty:  map[uint64]bool{7: true},
	}
	mirrorView := &testView{
		name:   "counter",
		reduce: cluster.ReduceAdd,
		values: map[uint64]uint64{7: 5},
		dirty:  map[uint64]bool{7: true},
	}

	s.syncBothHosts(c, hub, ownerView, mirrorView, cluster.ReduceAdd)

	// Owner folds the mirror contribution in; the merged value is
	// broadcast back to the mirror.
	c.Assert(ownerView.values[7], check.Equals, uint64(8))
	c.Assert(mirrorView.values[7], check.Equals, uint64(8))
}

func (s *HubTestSuite) TestSyncFieldMinReduction(c *check.C) {
	hub, err := memory.NewHub(2, testTopology{})
	c.Assert(err, check.IsNil)

	ownerView := &testView{
		name:   "dist",
		reduce: cluster.ReduceMin,
		owned:  true,
		values: map[uint64]uint64{1: 9},
		dirty:  map[uint64]bool{1: true},
	}
	mirrorView := &testView{
		name:   "dist",
		reduce: cluster.ReduceMin,
		values: map[uint64]uint64{1: 4},
		dirty:  map[uint64]bool{1: true},
	}

	s.syncBothHosts(c, hub, ownerView, mirrorView, cluster.ReduceMin)

	c.Assert(ownerView.values[1], check.Equals, uint64(4))
	c.Assert(mirrorView.values[1], check.Equals, uint64(4))
}

func (s *HubTestSuite) TestAllReduce(c *check.C) {
	hub, err := memory.NewHub(2, testTopology{})
	c.Assert(err, check.IsNil)

	counters := []*aggregator.IntAccumulator{
		new(aggregator.IntAccumulator),
		new(aggregator.IntAccumulator),
	}
	counters[0].Aggregate(3)
	counters[1].Aggregate(4)

	var wg sync.WaitGroup
	wg.Add(2)
	for host := 0; host < 2; host++ {
		go func(host int) {
			defer wg.Done()

			endpoint, err := hub.Endpoint(host)
			c.Assert(err, check.IsNil)
			c.Assert(endpoint.AllReduce(context.TODO(), counters[host]), check.IsNil)
		}(host)
	}
	wg.Wait()

	c.Assert(counters[0].Get(), check.Equals, 7)
	c.Assert(counters[1].Get(), check.Equals, 7)
}

func (s *HubTestSuite) TestBarrierReleasesAllHosts(c *check.C) {
	numHosts := 4
	hub, err := memory.NewHub(numHosts, testTopology{})
	c.Assert(err, check.IsNil)

	var wg sync.WaitGroup
	wg.Add(numHosts)
	released := make(chan int, numHosts)

	for host := 0; host < numHosts; host++ {
		go func(host int) {
			defer wg.Done()

			endpoint, err := hub.Endpoint(host)
			c.Assert(err, check.IsNil)
			c.Assert(endpoint.Barrier(context.TODO()), check.IsNil)

			released <- host
		}(host)
	}

	wg.Wait()
	close(released)

	var count int
	for range released {
		count++
	}
	c.Assert(count, check.Equals, numHosts)
}

func (s *HubTestSuite) TestInvalidConfiguration(c *check.C) {
	_, err := memory.NewHub(0, testTopology{})
	c.Assert(err, check.ErrorMatches, "(?ms).*number of hosts must be at least 1.*")

	_, err = memory.NewHub(2, nil)
	c.Assert(err, check.ErrorMatches, "(?ms).*topology not provided.*")

	hub, err := memory.NewHub(1, testTopology{})
	c.Assert(err, check.IsNil)

	_, err = hub.Endpoint(3)
	c.Assert(err, check.ErrorMatches, "(?ms).*invalid host ID.*")
}

func (s *HubTestSuite) syncBothHosts(
	c *check.C,
	hub *memory.Hub,
	ownerView, mirrorView cluster.FieldView,
	reduce cluster.Reduction,
) {

	views := []cluster.FieldView{ownerView, mirrorView}

	var wg sync.WaitGroup
	wg.Add(2)
	for host := 0; host < 2; host++ {
		go func(host int) {
			defer wg.Done()

			endpoint, err := hub.Endpoint(host)
			c.Assert(err, check.IsNil)

			err = endpoint.SyncField(context.TODO(), views[host], reduce, cluster.ReadAny)
			c.Assert(err, check.IsNil)
		}(host)
	}
	wg.Wait()
}
