package memory_test

import (
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/graph"
	"github.com/mycok/uCentral/graph/store/memory"
)

var _ = check.Suite(new(EdgeStoreTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type EdgeStoreTestSuite struct{}

func (s *EdgeStoreTestSuite) TestAddAndIterateEdges(c *check.C) {
	store := memory.NewEdgeStore(3)

	want := []graph.Edge{{Src: 0, Dst: 1}, {Src: 1, Dst: 2}, {Src: 2, Dst: 0}}
	for _, e := range want {
		c.Assert(store.AddEdge(e.Src, e.Dst), check.IsNil)
	}

	numVertices, err := store.NumVertices()
	c.Assert(err, check.IsNil)
	c.Assert(numVertices, check.Equals, uint64(3))
	c.Assert(store.NumEdges(), check.Equals, 3)

	it, err := store.Edges()
	c.Assert(err, check.IsNil)

	got := []graph.Edge{}
	for it.Next() {
		got = append(got, it.Edge())
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)
	c.Assert(got, check.DeepEquals, want)
}

func (s *EdgeStoreTestSuite) TestIteratorSeesASnapshot(c *check.C) {
	store := memory.NewEdgeStore(4)
	c.Assert(store.AddEdge(0, 1), check.IsNil)

	it, err := store.Edges()
	c.Assert(err, check.IsNil)

	// Edges added after the iterator was created are not delivered by it.
	c.Assert(store.AddEdge(2, 3), check.IsNil)

	var count int
	for it.Next() {
		count++
	}
	c.Assert(count, check.Equals, 1)
	c.Assert(it.Close(), check.IsNil)
}

func (s *EdgeStoreTestSuite) TestAddEdgeOutOfRange(c *check.C) {
	store := memory.NewEdgeStore(2)

	c.Assert(store.AddEdge(2, 0), check.ErrorMatches, "(?ms).*outside the range.*")
	c.Assert(store.AddEdge(0, 5), check.ErrorMatches, "(?ms).*outside the range.*")
}
