package memory_test

import (
	"errors"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/scores"
	"github.com/mycok/uCentral/scores/store/memory"
)

var _ = check.Suite(new(ScoreStoreTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type ScoreStoreTestSuite struct{}

func (s *ScoreStoreTestSuite) TestUpsertAndLookup(c *check.C) {
	store := memory.NewScoreStore()

	c.Assert(store.UpsertScore(42, 1.5), check.IsNil)
	c.Assert(store.UpsertScore(42, 2.5), check.IsNil)

	score, err := store.Score(42)
	c.Assert(err, check.IsNil)
	c.Assert(score, check.Equals, 2.5)
	c.Assert(store.Len(), check.Equals, 1)
}

func (s *ScoreStoreTestSuite) TestLookupMissingVertex(c *check.C) {
	store := memory.NewScoreStore()

	_, err := store.Score(7)
	c.Assert(errors.Is(err, scores.ErrNotFound), check.Equals, true)
}
