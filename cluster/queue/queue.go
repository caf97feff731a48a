/*
	queue provides the stage mailboxes cluster transports park delta
	batches in while a sync is in flight. Producers enqueue concurrently
	during a delivery stage; after the barrier the owning host drains the
	mailbox in one sweep before the next stage begins.
*/

package queue

// Message should be implemented by types that can serve as mailbox
// entries.
type Message interface {
	// Type returns the type of this Message.
	Type() string
}

// Queue should be implemented by types that can serve as stage
// mailboxes.
type Queue interface {
	// Enqueue parks a message in the mailbox. Safe to call concurrently
	// with other Enqueue calls.
	Enqueue(msg Message) error

	// Pending reports whether the mailbox holds undrained messages.
	Pending() bool

	// Drain hands every parked message to fn in arrival order and empties
	// the mailbox. Draining stops on the first error fn returns; messages
	// not yet handed out are discarded with the rest.
	Drain(fn func(Message) error) error

	// Close discards any parked messages and releases the mailbox.
	Close() error
}

// Factory creates new Queue instances.
// Note: Should be used for cases where lazy object creation is desired.
type Factory func() Queue
