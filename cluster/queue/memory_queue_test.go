package queue_test

import (
	"errors"
	"sync"
	"testing"

	check "gopkg.in/check.v1"

	"github.com/mycok/uCentral/cluster/queue"
)

var _ = check.Suite(new(inMemoryQueueTestSuite))

func Test(t *testing.T) {
	check.TestingT(t)
}

type inMemoryQueueTestSuite struct {
	q queue.Queue
}

type countMsg struct {
	value int
}

func (countMsg) Type() string { return "count" }

func (s *inMemoryQueueTestSuite) SetUpTest(c *check.C) {
	s.q = queue.NewInMemoryQueue()
}

func (s *inMemoryQueueTestSuite) TearDownTest(c *check.C) {
	c.Assert(s.q.Close(), check.IsNil)
}

func (s *inMemoryQueueTestSuite) TestDrainPreservesArrivalOrder(c *check.C) {
	numMsgs := 10
	for i := 0; i < numMsgs; i++ {
		c.Assert(s.q.Enqueue(countMsg{value: i}), check.IsNil)
	}

	c.Assert(s.q.Pending(), check.Equals, true)

	drained := []int{}
	err := s.q.Drain(func(msg queue.Message) error {
		drained = append(drained, msg.(countMsg).value)

		return nil
	})
	c.Assert(err, check.IsNil)

	c.Assert(drained, check.HasLen, numMsgs)
	for i, value := range drained {
		c.Assert(value, check.Equals, i)
	}

	c.Assert(s.q.Pending(), check.Equals, false)
}

func (s *inMemoryQueueTestSuite) TestConcurrentEnqueue(c *check.C) {
	numMsgs := 100

	var wg sync.WaitGroup
	wg.Add(numMsgs)
	for i := 0; i < numMsgs; i++ {
		go func(i int) {
			defer wg.Done()

			c.Assert(s.q.Enqueue(countMsg{value: i}), check.IsNil)
		}(i)
	}
	wg.Wait()

	var drained int
	err := s.q.Drain(func(queue.Message) error {
		drained++

		return nil
	})
	c.Assert(err, check.IsNil)
	c.Assert(drained, check.Equals, numMsgs)
}

func (s *inMemoryQueueTestSuite) TestDrainStopsOnError(c *check.C) {
	boom := errors.New("consumer failure")

	for i := 0; i < 5; i++ {
		c.Assert(s.q.Enqueue(countMsg{value: i}), check.IsNil)
	}

	var consumed int
	err := s.q.Drain(func(queue.Message) error {
		consumed++
		if consumed == 2 {
			return boom
		}

		return nil
	})

	c.Assert(errors.Is(err, boom), check.Equals, true)
	c.Assert(consumed, check.Equals, 2)

	// The undelivered remainder was discarded with the rest.
	c.Assert(s.q.Pending(), check.Equals, false)
}

func (s *inMemoryQueueTestSuite) TestCloseDiscardsMessages(c *check.C) {
	for i := 0; i < 5; i++ {
		c.Assert(s.q.Enqueue(countMsg{value: i}), check.IsNil)
	}

	c.Assert(s.q.Close(), check.IsNil)
	c.Assert(s.q.Pending(), check.Equals, false)
}
