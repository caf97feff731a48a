package bitset_test

import (
	"sync"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/bitset"
)

var _ = check.Suite(new(BitsetTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type BitsetTestSuite struct{}

func (s *BitsetTestSuite) TestSetAndTest(c *check.C) {
	b := bitset.New(200)

	c.Assert(b.Any(), check.Equals, false)

	b.Set(0)
	b.Set(63)
	b.Set(64)
	b.Set(199)

	for _, i := range []uint32{0, 63, 64, 199} {
		c.Assert(b.Test(i), check.Equals, true, check.Commentf("bit %d", i))
	}
	c.Assert(b.Test(1), check.Equals, false)
	c.Assert(b.Count(), check.Equals, 4)
	c.Assert(b.Any(), check.Equals, true)
}

func (s *BitsetTestSuite) TestForEachSetAscending(c *check.C) {
	b := bitset.New(300)
	want := []uint32{2, 64, 65, 127, 128, 299}

	// Set in non-ascending order; iteration must still be ascending.
	for i := len(want) - 1; i >= 0; i-- {
		b.Set(want[i])
	}

	got := []uint32{}
	b.ForEachSet(func(i uint32) {
		got = append(got, i)
	})

	c.Assert(got, check.DeepEquals, want)
}

func (s *BitsetTestSuite) TestReset(c *check.C) {
	b := bitset.New(100)
	b.Set(10)
	b.Set(90)

	b.Reset()

	c.Assert(b.Any(), check.Equals, false)
	c.Assert(b.Count(), check.Equals, 0)
}

func (s *BitsetTestSuite) TestConcurrentSet(c *check.C) {
	size := uint32(1024)
	b := bitset.New(size)

	// Hammer bits that share words from many goroutines; no set bit may
	// be lost.
	var wg sync.WaitGroup
	wg.Add(int(size))
	for i := uint32(0); i < size; i++ {
		go func(i uint32) {
			defer wg.Done()

			b.Set(i)
		}(i)
	}
	wg.Wait()

	c.Assert(b.Count(), check.Equals, int(size))
}
