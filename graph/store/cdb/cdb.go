/*
	cdb provides a graph.EdgeSource backed by a CockroachDB / PostgreSQL
	edge table.
*/

package cdb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	// Register the postgres driver with the database/sql package.
	_ "github.com/lib/pq"

	"github.com/mycok/uCentral/graph"
)

var (
	numVerticesQuery = `SELECT COALESCE(MAX(GREATEST(src, dst)) + 1, 0) FROM edges`

	edgesQuery = "SELECT src, dst FROM edges"

	upsertEdgeQuery = `
					INSERT INTO edges (src, dst)
					VALUES ($1, $2)
					ON CONFLICT (src, dst) DO NOTHING
					`
)

// Static and compile-time check to ensure CockroachDBEdgeSource implements
// the EdgeSource interface.
var _ graph.EdgeSource = (*CockroachDBEdgeSource)(nil)

// CockroachDBEdgeSource streams the edge list of a graph out of a
// CockroachDB instance.
type CockroachDBEdgeSource struct {
	db *sql.DB
}

// NewCockroachDBEdgeSource returns a CockroachDBEdgeSource instance.
func NewCockroachDBEdgeSource(dsn string) (*CockroachDBEdgeSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}

	return &CockroachDBEdgeSource{db}, nil
}

// Close terminates the connection to the cockroachDB instance.
func (s *CockroachDBEdgeSource) Close() error {
	return s.db.Close()
}

// UpsertEdge inserts a directed edge from src to dst if it is not already
// present.
func (s *CockroachDBEdgeSource) UpsertEdge(src, dst uint64) error {
	if _, err := s.db.Exec(upsertEdgeQuery, int64(src), int64(dst)); err != nil {
		return fmt.Errorf("upsert edge: %w", err)
	}

	return nil
}

// NumVertices returns one more than the largest vertex ID referenced by any
// stored edge.
func (s *CockroachDBEdgeSource) NumVertices() (uint64, error) {
	var numVertices int64
	if err := s.db.QueryRow(numVerticesQuery).Scan(&numVertices); err != nil {
		return 0, fmt.Errorf("num vertices: %w", err)
	}

	return uint64(numVertices), nil
}

// Edges returns an iterator over every stored edge.
func (s *CockroachDBEdgeSource) Edges() (graph.EdgeIterator, error) {
	rows, err := s.db.Query(edgesQuery)
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	return &edgeIterator{rows: rows}, nil
}
