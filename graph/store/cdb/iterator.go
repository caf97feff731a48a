package cdb

import (
	"database/sql"
	"fmt"

	"github.com/mycok/uCentral/graph"
)

// Static and compile-time check to ensure edgeIterator implements the
// graph.EdgeIterator interface.
var _ graph.EdgeIterator = (*edgeIterator)(nil)

// edgeIterator wraps the [database/sql] Rows type that serves as an
// iterator for the returned edge query data.
type edgeIterator struct {
	rows    *sql.Rows
	lastErr error
	edge    graph.Edge
}

// Next loads the next edge, returns false when no more rows are available
// or when an error occurs.
func (i *edgeIterator) Next() bool {
	// Check if an error occurred during the most recent [rows.Scan]
	// operation or if there are no more rows to return.
	if i.lastErr != nil || !i.rows.Next() {
		return false
	}

	var src, dst int64
	if i.lastErr = i.rows.Scan(&src, &dst); i.lastErr != nil {
		return false
	}

	i.edge = graph.Edge{Src: uint64(src), Dst: uint64(dst)}

	return true
}

// Edge returns the currently fetched edge.
func (i *edgeIterator) Edge() graph.Edge { return i.edge }

// Error returns the last error encountered by the iterator.
func (i *edgeIterator) Error() error { return i.lastErr }

// Close releases any resources allocated to the iterator.
func (i *edgeIterator) Close() error {
	if err := i.rows.Close(); err != nil {
		return fmt.Errorf("edge iterator: %w", err)
	}

	return nil
}
