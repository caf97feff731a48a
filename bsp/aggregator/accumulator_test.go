package aggregator

import (
	"math"
	"math/rand"
	"testing"

	check "gopkg.in/check.v1"
)

type aggregator interface {
	Set(interface{})
	Get() interface{}
	Aggregate(interface{})
	Delta() interface{}
}

var _ = check.Suite(new(accumulatorTestSuite))

type accumulatorTestSuite struct{}

func Test(t *testing.T) {
	check.TestingT(t)
}

func (s *accumulatorTestSuite) TestFloat64Accumulator(c *check.C) {
	var expected float64
	numOfValues := 100
	values := make([]interface{}, numOfValues)

	for i := 0; i < numOfValues; i++ {
		next := rand.Float64()
		values[i] = next
		expected += next
	}

	aggregated := testConcurrentAccumulatorAggregation(
		new(Float64Accumulator), values,
	).(float64)

	absDelta := math.Abs(expected - aggregated)

	c.Assert(
		absDelta < 1e-6, check.Equals,
		true,
		check.Commentf("expected to get %f; got %f; |delta| %f > 1e-6", expected, aggregated, absDelta),
	)
}

func (s *accumulatorTestSuite) TestIntAccumulator(c *check.C) {
	var expected int
	numOfValues := 100
	values := make([]interface{}, numOfValues)

	for i := 0; i < numOfValues; i++ {
		next := rand.Intn(1000)
		values[i] = next
		expected += next
	}

	aggregated := testConcurrentAccumulatorAggregation(
		new(IntAccumulator), values,
	).(int)

	c.Assert(expected, check.Equals, aggregated)
}

func (s *accumulatorTestSuite) TestIntAccumulatorDelta(c *check.C) {
	acc := new(IntAccumulator)

	acc.Aggregate(5)
	c.Assert(acc.Delta(), check.Equals, 5)

	// The delta resets on every read; the total does not.
	acc.Aggregate(3)
	c.Assert(acc.Delta(), check.Equals, 3)
	c.Assert(acc.Get(), check.Equals, 8)
}

func (s *accumulatorTestSuite) TestFloat64Min(c *check.C) {
	values := make([]interface{}, 0, 100)
	expected := math.MaxFloat64

	for i := 0; i < 100; i++ {
		next := rand.Float64()
		values = append(values, next)

		if next < expected {
			expected = next
		}
	}

	minAgg := new(Float64Min)
	minAgg.Set(math.MaxFloat64)

	aggregated := testConcurrentAccumulatorAggregation(minAgg, values).(float64)
	c.Assert(aggregated, check.Equals, expected)

	// Min is idempotent: the delta is the full value.
	c.Assert(minAgg.Delta(), check.Equals, expected)
}

func (s *accumulatorTestSuite) TestFloat64Max(c *check.C) {
	values := make([]interface{}, 0, 100)
	expected := -math.MaxFloat64

	for i := 0; i < 100; i++ {
		next := rand.Float64()
		values = append(values, next)

		if next > expected {
			expected = next
		}
	}

	maxAgg := new(Float64Max)
	maxAgg.Set(-math.MaxFloat64)

	aggregated := testConcurrentAccumulatorAggregation(maxAgg, values).(float64)
	c.Assert(aggregated, check.Equals, expected)
}

func testConcurrentAccumulatorAggregation(a aggregator, values []interface{}) interface{} {
	startChan := make(chan struct{})
	syncChan := make(chan struct{})
	doneChan := make(chan struct{})

	for i := 0; i < len(values); i++ {
		go func(index int) {
			startChan <- struct{}{}
			<-syncChan
			a.Aggregate(values[index])
			doneChan <- struct{}{}
		}(i)
	}

	for i := 0; i < len(values); i++ {
		<-startChan
	}

	close(syncChan)

	for i := 0; i < len(values); i++ {
		<-doneChan
	}

	return a.Get()
}
