/*
	graph provides the partitioned graph container for the centrality
	engine: edge source contracts, an edge-cut partitioner and the
	per-host Partition type that satisfies both the bsp.Graph compute
	contract and the cluster.Topology replica map.
*/

package graph

// Edge is a directed edge between two global vertex IDs.
type Edge struct {
	Src uint64
	Dst uint64
}

// EdgeIterator is implemented by types that iterate a stream of edges.
type EdgeIterator interface {
	// Next loads the next edge, returns false when no more edges are
	// available or when an error occurs.
	Next() bool

	// Edge returns the currently fetched edge.
	Edge() Edge

	// Error returns the last error encountered by the iterator.
	Error() error

	// Close releases any resources allocated to the iterator.
	Close() error
}

// EdgeSource is implemented by stores that can stream the edge list of a
// graph.
type EdgeSource interface {
	// NumVertices returns the size of the global vertex set, i.e. one more
	// than the largest vertex ID that appears in the store.
	NumVertices() (uint64, error)

	// Edges returns an iterator over every edge in the store.
	Edges() (EdgeIterator, error)
}

// Static and compile-time check to ensure reversedSource implements the
// EdgeSource interface.
var _ EdgeSource = (*reversedSource)(nil)

// Reversed wraps an edge source so that every edge is delivered with its
// endpoints swapped. The centrality phases operate on the transpose of the
// input graph: BFS pulls distances from, and dependency propagation pushes
// to, the in-neighbourhood of each vertex.
func Reversed(source EdgeSource) EdgeSource {
	return &reversedSource{source: source}
}

type reversedSource struct {
	source EdgeSource
}

func (s *reversedSource) NumVertices() (uint64, error) {
	return s.source.NumVertices()
}

func (s *reversedSource) Edges() (EdgeIterator, error) {
	it, err := s.source.Edges()
	if err != nil {
		return nil, err
	}

	return &reversedIterator{EdgeIterator: it}, nil
}

type reversedIterator struct {
	EdgeIterator
}

func (i *reversedIterator) Edge() Edge {
	e := i.EdgeIterator.Edge()

	return Edge{Src: e.Dst, Dst: e.Src}
}
