package cluster

import "github.com/mycok/uCentral/cluster/queue"

// Static and compile-time check to ensure DeltaBatch implements the
// Message interface.
var _ queue.Message = (*DeltaBatch)(nil)

// DeltaBatch carries extracted field values from one host endpoint to
// another during a sync. GIDs and Raws are parallel slices.
type DeltaBatch struct {
	// Field is the name of the synced field.
	Field string

	// GIDs holds the global vertex IDs of the carried values.
	GIDs []uint64

	// Raws holds the raw field values, one per entry in GIDs.
	Raws []uint64
}

// Type returns the type of this message.
func (b *DeltaBatch) Type() string { return "delta_batch" }

// Append adds a (global ID, raw value) pair to the batch.
func (b *DeltaBatch) Append(global, raw uint64) {
	b.GIDs = append(b.GIDs, global)
	b.Raws = append(b.Raws, raw)
}

// Len returns the number of carried values.
func (b *DeltaBatch) Len() int { return len(b.GIDs) }
