package cdb

import (
	"database/sql"
	"os"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/graph"
)

var _ = check.Suite(new(CockroachDBEdgeSourceTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

// CockroachDBEdgeSourceTestSuite runs against a live database instance and
// is skipped unless the CDB_DSN envvar points at one.
type CockroachDBEdgeSourceTestSuite struct {
	db     *sql.DB
	source *CockroachDBEdgeSource
}

func (s *CockroachDBEdgeSourceTestSuite) SetUpSuite(c *check.C) {
	dsn := os.Getenv("CDB_DSN")
	if dsn == "" {
		c.Skip("Missing CDB_DSN envvar: skipping cockroachDB backed test suite")
	}

	source, err := NewCockroachDBEdgeSource(dsn)
	c.Assert(err, check.IsNil)

	s.source = source
	s.db = source.db
}

func (s *CockroachDBEdgeSourceTestSuite) SetUpTest(c *check.C) {
	if s.db != nil {
		_, err := s.db.Exec("DELETE FROM edges")
		c.Assert(err, check.IsNil)
	}
}

func (s *CockroachDBEdgeSourceTestSuite) TearDownSuite(c *check.C) {
	if s.source != nil {
		c.Assert(s.source.Close(), check.IsNil)
	}
}

func (s *CockroachDBEdgeSourceTestSuite) TestUpsertAndIterateEdges(c *check.C) {
	for _, e := range [][2]uint64{{0, 1}, {1, 2}, {1, 2}} {
		c.Assert(s.source.UpsertEdge(e[0], e[1]), check.IsNil)
	}

	it, err := s.source.Edges()
	c.Assert(err, check.IsNil)

	collected := map[graph.Edge]int{}
	for it.Next() {
		collected[it.Edge()]++
	}
	c.Assert(it.Error(), check.IsNil)
	c.Assert(it.Close(), check.IsNil)

	// The duplicate upsert collapses into a single row.
	c.Assert(collected, check.DeepEquals, map[graph.Edge]int{
		{Src: 0, Dst: 1}: 1,
		{Src: 1, Dst: 2}: 1,
	})
}

func (s *CockroachDBEdgeSourceTestSuite) TestNumVertices(c *check.C) {
	numVertices, err := s.source.NumVertices()
	c.Assert(err, check.IsNil)
	c.Assert(numVertices, check.Equals, uint64(0))

	c.Assert(s.source.UpsertEdge(3, 9), check.IsNil)

	numVertices, err = s.source.NumVertices()
	c.Assert(err, check.IsNil)
	c.Assert(numVertices, check.Equals, uint64(10))
}
