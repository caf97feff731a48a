/*
	memory provides an in-memory scores.Store implementation.
*/

package memory

import (
	"fmt"
	"sync"

	"github.com/mycok/uCentral/scores"
)

// Static and compile-time check to ensure ScoreStore implements the
// Store interface.
var _ scores.Store = (*ScoreStore)(nil)

// ScoreStore is a concurrent-safe in-memory score sink.
type ScoreStore struct {
	mu     sync.RWMutex
	byVert map[uint64]float64
}

// NewScoreStore returns an empty in-memory score store.
func NewScoreStore() *ScoreStore {
	return &ScoreStore{byVert: make(map[uint64]float64)}
}

// UpsertScore creates or overwrites the score of a vertex.
func (s *ScoreStore) UpsertScore(vertex uint64, score float64) error {
	s.mu.Lock()
	s.byVert[vertex] = score
	s.mu.Unlock()

	return nil
}

// Score looks up the stored score of a vertex.
func (s *ScoreStore) Score(vertex uint64) (float64, error) {
	s.mu.RLock()
	score, exists := s.byVert[vertex]
	s.mu.RUnlock()

	if !exists {
		return 0, fmt.Errorf("in-memory score store: vertex %d: %w", vertex, scores.ErrNotFound)
	}

	return score, nil
}

// Len returns the number of stored scores.
func (s *ScoreStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.byVert)
}
