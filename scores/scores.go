/*
	scores defines the sink that computed centrality scores are published
	to once a run completes.
*/

package scores

import "errors"

// ErrNotFound is returned by score lookups when no score has been stored
// for the requested vertex.
var ErrNotFound = errors.New("score not found")

// Store is implemented by sinks that persist centrality scores.
type Store interface {
	// UpsertScore creates or overwrites the score of a vertex.
	UpsertScore(vertex uint64, score float64) error

	// Score looks up the stored score of a vertex. Returns ErrNotFound if
	// the vertex has no stored score.
	Score(vertex uint64) (float64, error)
}
