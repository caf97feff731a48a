/*
	cluster defines the synchronisation engine that keeps vertex replicas
	consistent across the hosts of a bulk-synchronous computation. Hosts
	advance in lockstep: at every superstep boundary they rendezvous on a
	barrier, fold the delta fields written on replicas back into the owner
	copy of each vertex and broadcast the merged values out again.
*/

package cluster

import (
	"context"

	"github.com/mycok/uCentral/bsp"
)

// Reduction selects how replica contributions are folded into the owner
// slot of a vertex field.
type Reduction int

const (
	// ReduceMin keeps the smallest of the replica values.
	ReduceMin Reduction = iota

	// ReduceAdd sums the replica values into the owner value. Mirror slots
	// are zeroed as they are extracted so a contribution is counted once.
	ReduceAdd
)

// ReadLocation hints which replicas need the post-reduction broadcast:
// replicas read on the source side of edges, on the destination side, or
// anywhere. Transports may use the hint to skip traffic; correctness does
// not depend on it.
type ReadLocation int

const (
	// ReadSrc marks fields read through the source endpoint of edges.
	ReadSrc ReadLocation = iota

	// ReadDst marks fields read through the destination endpoint of edges.
	ReadDst

	// ReadAny marks fields read on both endpoints.
	ReadAny
)

// Topology tells a transport where the copies of each vertex live.
type Topology interface {
	// Owner returns the host that holds the authoritative copy of the
	// vertex with the provided global ID.
	Owner(global uint64) int

	// ReplicaHosts returns the hosts, excluding the owner, that hold a
	// mirror of the vertex with the provided global ID. The returned slice
	// is shared and must not be mutated.
	ReplicaHosts(global uint64) []int
}

// FieldView exposes one per-vertex delta field of a host to the sync
// engine. Raw values are the field's bit representation: uint32 fields
// widen to uint64, float64 fields travel as their IEEE-754 bits.
//
// The sync engine calls the methods in a fixed order with a barrier
// between each stage: ExtractMirrors on every host, Combine on owners,
// ExtractOwned on owners, Assign on replicas.
type FieldView interface {
	// Name returns the field name, used for diagnostics and as the batch
	// routing key.
	Name() string

	// ExtractMirrors emits the global ID and raw value of every dirty
	// mirror slot. For add reductions the implementation must zero the
	// slot as it is extracted.
	ExtractMirrors(emit func(global, raw uint64))

	// Combine folds a mirror contribution into the canonical slot of an
	// owned vertex and marks the vertex for broadcast.
	Combine(global, raw uint64)

	// ExtractOwned emits the global ID and merged raw value of every owned
	// vertex that needs broadcasting.
	ExtractOwned(emit func(global, raw uint64))

	// Assign overwrites a mirror slot with the owner's merged value.
	Assign(global, raw uint64)
}

// Transport is the reduce/broadcast engine a computation runs against. One
// Transport instance represents one host's membership in the cluster.
type Transport interface {
	// HostID returns this host's slot in the cluster.
	HostID() int

	// NumHosts returns the number of hosts in the cluster.
	NumHosts() int

	// Barrier blocks until every host in the cluster has reached it.
	Barrier(ctx context.Context) error

	// AllReduce folds the local contributions of the provided aggregators
	// across all hosts so that every host observes the same global values.
	// Hosts must pass their aggregators in the same order.
	AllReduce(ctx context.Context, aggs ...bsp.Aggregator) error

	// SyncField reduces the provided field across all replicas into the
	// owner of each vertex and broadcasts the merged values back. The call
	// returns once replicas are consistent on every host.
	SyncField(ctx context.Context, view FieldView, reduce Reduction, read ReadLocation) error

	// Close releases the host's membership.
	Close() error
}
