package bc_test

import (
	"sort"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/bc"
)

var _ = check.Suite(new(SourceSelectionTestSuite))

type SourceSelectionTestSuite struct{}

func (s *SourceSelectionTestSuite) TestSingleSource(c *check.C) {
	sources, err := bc.SourceConfig{
		Mode:        bc.SingleSource,
		StartVertex: 7,
	}.Sources(10)

	c.Assert(err, check.IsNil)
	c.Assert(sources, check.DeepEquals, []uint64{7})
}

func (s *SourceSelectionTestSuite) TestSingleSourceOutOfRange(c *check.C) {
	_, err := bc.SourceConfig{
		Mode:        bc.SingleSource,
		StartVertex: 10,
	}.Sources(10)

	c.Assert(err, check.ErrorMatches, "(?ms).*start vertex 10 outside the global range.*")
}

func (s *SourceSelectionTestSuite) TestAllSources(c *check.C) {
	sources, err := bc.SourceConfig{Mode: bc.AllSources}.Sources(4)

	c.Assert(err, check.IsNil)
	c.Assert(sources, check.DeepEquals, []uint64{0, 1, 2, 3})
}

func (s *SourceSelectionTestSuite) TestSampledSourcesAreReproducible(c *check.C) {
	config := bc.SourceConfig{
		Mode:         bc.SampledSources,
		StartVertex:  0,
		NumOfSources: 5,
	}

	first, err := config.Sources(1000)
	c.Assert(err, check.IsNil)

	second, err := config.Sources(1000)
	c.Assert(err, check.IsNil)

	// The seeded generator must draw the identical set on every run.
	c.Assert(first, check.DeepEquals, second)

	c.Assert(len(first), check.Equals, 5)
	c.Assert(first[0], check.Equals, uint64(0))
	c.Assert(sort.SliceIsSorted(first, func(i, j int) bool {
		return first[i] < first[j]
	}), check.Equals, true)

	// Drawn sources are distinct and in range.
	seen := make(map[uint64]struct{})
	for _, src := range first {
		_, duplicate := seen[src]
		c.Assert(duplicate, check.Equals, false)
		c.Assert(src < 1000, check.Equals, true)

		seen[src] = struct{}{}
	}
}

func (s *SourceSelectionTestSuite) TestSampledSourcesIncludeStartVertex(c *check.C) {
	sources, err := bc.SourceConfig{
		Mode:         bc.SampledSources,
		StartVertex:  42,
		NumOfSources: 3,
	}.Sources(100)

	c.Assert(err, check.IsNil)

	var found bool
	for _, src := range sources {
		if src == 42 {
			found = true
		}
	}

	c.Assert(found, check.Equals, true)
}

func (s *SourceSelectionTestSuite) TestSampledSourcesExceedVertexSet(c *check.C) {
	_, err := bc.SourceConfig{
		Mode:         bc.SampledSources,
		StartVertex:  0,
		NumOfSources: 11,
	}.Sources(10)

	c.Assert(err, check.ErrorMatches, "(?ms).*cannot draw 11 distinct sources from 10 vertices.*")
}

func (s *SourceSelectionTestSuite) TestEmptyVertexSet(c *check.C) {
	_, err := bc.SourceConfig{Mode: bc.AllSources}.Sources(0)

	c.Assert(err, check.ErrorMatches, "(?ms).*the vertex set is empty.*")
}
