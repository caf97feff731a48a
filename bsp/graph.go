/*
	bsp contains the building blocks for running bulk-synchronous parallel
	computations over a partitioned graph: the partitioned-graph contract,
	a worker pool for per-vertex operators and a step executor that drives
	rounds to convergence.
*/

package bsp

// Graph is the partitioned-graph collaborator that vertex operators run
// against. A Graph instance describes the slice of a global vertex set that
// is materialised on one host: the vertices the host owns plus the replica
// (mirror) slots for remote endpoints of its local edges.
//
// Local vertex IDs are dense and laid out as follows: owned vertices with at
// least one outgoing edge first, then the remaining owned vertices, then
// mirrors. Mirrors never carry outgoing edges.
type Graph interface {
	// NumLocalVertices returns the number of vertices materialised on this
	// host, owned and mirrored alike.
	NumLocalVertices() int

	// NumGlobalVertices returns the size of the global vertex set.
	NumGlobalVertices() uint64

	// LocalRange returns the [start, end) local ID range covering every
	// local vertex.
	LocalRange() (uint32, uint32)

	// LocalRangeWithEdges returns the [start, end) local ID range covering
	// exactly the local vertices that have outgoing edges.
	LocalRangeWithEdges() (uint32, uint32)

	// OutEdges returns the local IDs of the destinations of the outgoing
	// edges of the vertex with the provided local ID. The returned slice is
	// shared and must not be mutated.
	OutEdges(local uint32) []uint32

	// IsOwned reports whether this host is the owner of the vertex with the
	// provided local ID.
	IsOwned(local uint32) bool

	// GlobalID maps a local vertex ID to its global ID.
	GlobalID(local uint32) uint64

	// LocalID maps a global vertex ID to its local ID. The second return
	// value is false when the vertex is not materialised on this host.
	LocalID(global uint64) (uint32, bool)
}
