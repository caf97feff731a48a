package bsp

// Aggregator is implemented by types that provide concurrent-safe
// aggregation primitives (e.g. counters, min/max).
type Aggregator interface {
	// Type returns the type of this aggregator.
	Type() string

	// Set the aggregator to the specified value.
	Set(val interface{})

	// Get the current aggregator value.
	Get() interface{}

	// Aggregate updates the aggregator's value based on the provided value.
	Aggregate(val interface{})

	// Delta returns the local contribution accumulated since the last call
	// to Delta. Cross-host reductions are built on this method: at a sync
	// point each host hands its delta to the transport, which folds the
	// deltas of the other hosts back in through Aggregate so that every
	// host ends up observing the same global value.
	//
	// Aggregators whose reduction is idempotent (min, max) simply return
	// their current value.
	Delta() interface{}
}
