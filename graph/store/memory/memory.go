/*
	memory provides an in-memory graph.EdgeSource implementation.
*/

package memory

import (
	"fmt"
	"sync"

	"github.com/mycok/uCentral/graph"
)

// Static and compile-time check to ensure EdgeStore implements the
// EdgeSource interface.
var _ graph.EdgeSource = (*EdgeStore)(nil)

// EdgeStore is an in-memory edge list for a graph with a fixed vertex set.
type EdgeStore struct {
	mu          sync.RWMutex
	numVertices uint64
	edges       []graph.Edge
}

// NewEdgeStore returns an empty store for a graph of numVertices vertices.
func NewEdgeStore(numVertices uint64) *EdgeStore {
	return &EdgeStore{numVertices: numVertices}
}

// AddEdge appends a directed edge from src to dst.
func (s *EdgeStore) AddEdge(src, dst uint64) error {
	if src >= s.numVertices || dst >= s.numVertices {
		return fmt.Errorf(
			"in-memory edge store: edge (%d, %d) references a vertex outside the range [0, %d)",
			src, dst, s.numVertices,
		)
	}

	s.mu.Lock()
	s.edges = append(s.edges, graph.Edge{Src: src, Dst: dst})
	s.mu.Unlock()

	return nil
}

// NumVertices returns the size of the vertex set.
func (s *EdgeStore) NumVertices() (uint64, error) {
	return s.numVertices, nil
}

// NumEdges returns the number of stored edges.
func (s *EdgeStore) NumEdges() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.edges)
}

// Edges returns an iterator over a snapshot of the stored edges.
func (s *EdgeStore) Edges() (graph.EdgeIterator, error) {
	s.mu.RLock()
	snapshot := make([]graph.Edge, len(s.edges))
	copy(snapshot, s.edges)
	s.mu.RUnlock()

	return &edgeIterator{edges: snapshot}, nil
}

// edgeIterator iterates an edge snapshot.
type edgeIterator struct {
	edges []graph.Edge
	curr  int
}

// Next loads the next edge, returns false when no more edges are available.
func (i *edgeIterator) Next() bool {
	if i.curr >= len(i.edges) {
		return false
	}

	i.curr++

	return true
}

// Edge returns the currently fetched edge.
func (i *edgeIterator) Edge() graph.Edge { return i.edges[i.curr-1] }

// Error returns the last error encountered by the iterator.
func (i *edgeIterator) Error() error { return nil }

// Close releases any resources allocated to the iterator.
func (i *edgeIterator) Close() error { return nil }
