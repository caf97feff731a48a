/*
	aggregator provides the concurrent-safe aggregates the engine reduces
	across hosts: work counters, score sums and score extrema. All of them
	satisfy the bsp.Aggregator interface.

	The sum aggregators keep the running total and the not-yet-published
	remainder in separate slots: Delta hands the remainder out exactly
	once, which is what lets hosts exchange partial sums at a barrier
	without double counting. The min/max aggregates are idempotent and
	publish their full value instead.
*/

package aggregator

import (
	"math"
	"sync/atomic"
)

// value is a float64 scalar stored as its IEEE-754 bits so it can be
// updated atomically, the same discipline the engine applies to its
// per-vertex dependency slots.
type value struct {
	bits uint64
}

func (v *value) load() float64 {
	return math.Float64frombits(atomic.LoadUint64(&v.bits))
}

func (v *value) store(f float64) {
	atomic.StoreUint64(&v.bits, math.Float64bits(f))
}

// swap stores f and returns the value it displaced.
func (v *value) swap(f float64) float64 {
	return math.Float64frombits(atomic.SwapUint64(&v.bits, math.Float64bits(f)))
}

func (v *value) add(f float64) {
	for {
		old := atomic.LoadUint64(&v.bits)
		updated := math.Float64bits(math.Float64frombits(old) + f)

		if atomic.CompareAndSwapUint64(&v.bits, old, updated) {
			return
		}
	}
}

// lower replaces the scalar with f if f is smaller.
func (v *value) lower(f float64) {
	for {
		old := atomic.LoadUint64(&v.bits)
		if f >= math.Float64frombits(old) {
			return
		}

		if atomic.CompareAndSwapUint64(&v.bits, old, math.Float64bits(f)) {
			return
		}
	}
}

// raise replaces the scalar with f if f is larger.
func (v *value) raise(f float64) {
	for {
		old := atomic.LoadUint64(&v.bits)
		if f <= math.Float64frombits(old) {
			return
		}

		if atomic.CompareAndSwapUint64(&v.bits, old, math.Float64bits(f)) {
			return
		}
	}
}

// Float64Accumulator is a concurrent-safe sum aggregator for float64
// values. It satisfies the bsp.Aggregator interface.
type Float64Accumulator struct {
	total       value
	unpublished value
}

// Type returns the type of this aggregator as a string.
func (a *Float64Accumulator) Type() string {
	return "Float64Accumulator"
}

// Get retrieves the current total.
func (a *Float64Accumulator) Get() interface{} {
	return a.total.load()
}

// Set overwrites the total with the specified value and discards any
// unpublished remainder.
func (a *Float64Accumulator) Set(val interface{}) {
	a.total.store(val.(float64))
	a.unpublished.store(0)
}

// Aggregate adds the provided value to the total.
func (a *Float64Accumulator) Aggregate(val interface{}) {
	f := val.(float64)

	a.total.add(f)
	a.unpublished.add(f)
}

// Delta publishes the amount aggregated since the last call to Delta or
// Set. The remainder slot is swapped out atomically so every contribution
// is handed out exactly once.
func (a *Float64Accumulator) Delta() interface{} {
	return a.unpublished.swap(0)
}

// IntAccumulator is a concurrent-safe sum aggregator for int values.
// It satisfies the bsp.Aggregator interface.
type IntAccumulator struct {
	total       int64
	unpublished int64
}

// Type returns the type of this aggregator as a string.
func (a *IntAccumulator) Type() string {
	return "IntAccumulator"
}

// Get retrieves the current total.
func (a *IntAccumulator) Get() interface{} {
	return int(atomic.LoadInt64(&a.total))
}

// Set overwrites the total with the specified value and discards any
// unpublished remainder.
func (a *IntAccumulator) Set(val interface{}) {
	atomic.StoreInt64(&a.total, int64(val.(int)))
	atomic.StoreInt64(&a.unpublished, 0)
}

// Aggregate adds the provided value to the total.
func (a *IntAccumulator) Aggregate(val interface{}) {
	n := int64(val.(int))

	atomic.AddInt64(&a.total, n)
	atomic.AddInt64(&a.unpublished, n)
}

// Delta publishes the amount aggregated since the last call to Delta or
// Set. The remainder slot is swapped out atomically so every contribution
// is handed out exactly once.
func (a *IntAccumulator) Delta() interface{} {
	return int(atomic.SwapInt64(&a.unpublished, 0))
}

// Float64Min is a concurrent-safe minimum aggregator for float64 values.
// It satisfies the bsp.Aggregator interface.
type Float64Min struct {
	curr value
}

// Type returns the type of this aggregator as a string.
func (a *Float64Min) Type() string {
	return "Float64Min"
}

// Get retrieves the current minimum.
func (a *Float64Min) Get() interface{} {
	return a.curr.load()
}

// Set overwrites the current minimum with the specified value.
func (a *Float64Min) Set(val interface{}) {
	a.curr.store(val.(float64))
}

// Aggregate lowers the current minimum if the provided value is smaller.
func (a *Float64Min) Aggregate(val interface{}) {
	a.curr.lower(val.(float64))
}

// Delta returns the current minimum. The min reduction is idempotent so
// the full value doubles as the host's contribution.
func (a *Float64Min) Delta() interface{} {
	return a.curr.load()
}

// Float64Max is a concurrent-safe maximum aggregator for float64 values.
// It satisfies the bsp.Aggregator interface.
type Float64Max struct {
	curr value
}

// Type returns the type of this aggregator as a string.
func (a *Float64Max) Type() string {
	return "Float64Max"
}

// Get retrieves the current maximum.
func (a *Float64Max) Get() interface{} {
	return a.curr.load()
}

// Set overwrites the current maximum with the specified value.
func (a *Float64Max) Set(val interface{}) {
	a.curr.store(val.(float64))
}

// Aggregate raises the current maximum if the provided value is larger.
func (a *Float64Max) Aggregate(val interface{}) {
	a.curr.raise(val.(float64))
}

// Delta returns the current maximum. The max reduction is idempotent so
// the full value doubles as the host's contribution.
func (a *Float64Max) Delta() interface{} {
	return a.curr.load()
}
