package queue

import "sync"

// Static and compile-time check to ensure inMemoryQueue implements
// Queue interface.
var _ Queue = (*inMemoryQueue)(nil)

// inMemoryQueue parks messages in memory. The staged slice is swapped out
// wholesale on Drain, so a drain never blocks concurrent producers for
// longer than the swap.
type inMemoryQueue struct {
	mu     sync.Mutex
	staged []Message
}

// NewInMemoryQueue creates a new in-memory queue instance. This function
// can serve as a queue Factory.
func NewInMemoryQueue() Queue {
	return &inMemoryQueue{}
}

// Enqueue parks a message in the mailbox.
func (q *inMemoryQueue) Enqueue(msg Message) error {
	q.mu.Lock()
	q.staged = append(q.staged, msg)
	q.mu.Unlock()

	return nil
}

// Pending reports whether the mailbox holds undrained messages.
func (q *inMemoryQueue) Pending() bool {
	q.mu.Lock()
	pending := len(q.staged) != 0
	q.mu.Unlock()

	return pending
}

// Drain hands every parked message to fn in arrival order and empties the
// mailbox.
func (q *inMemoryQueue) Drain(fn func(Message) error) error {
	q.mu.Lock()
	drained := q.staged
	q.staged = nil
	q.mu.Unlock()

	for _, msg := range drained {
		if err := fn(msg); err != nil {
			return err
		}
	}

	return nil
}

// Close discards any parked messages.
func (q *inMemoryQueue) Close() error {
	q.mu.Lock()
	q.staged = nil
	q.mu.Unlock()

	return nil
}
