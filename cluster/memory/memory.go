/*
	memory provides an in-process cluster transport. All host endpoints
	live in one address space and exchange delta batches through stage
	mailboxes; it backs single-process runs and the test suites.
*/

package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/mycok/uCentral/bsp"
	"github.com/mycok/uCentral/cluster"
	"github.com/mycok/uCentral/cluster/queue"
)

// Hub connects the endpoints of an in-process cluster. Every host obtains
// its Transport through Endpoint; the hub routes delta batches between them
// and implements the barrier they rendezvous on.
type Hub struct {
	topo         cluster.Topology
	barrier      *barrier
	endpoints    []*Endpoint
	reduceSlots  [][]interface{}
	queueFactory queue.Factory
}

// NewHub creates a hub for a cluster of numHosts hosts sharing the provided
// replica topology.
func NewHub(numHosts int, topo cluster.Topology) (*Hub, error) {
	if numHosts <= 0 {
		return nil, fmt.Errorf("memory cluster: number of hosts must be at least 1")
	} else if topo == nil {
		return nil, fmt.Errorf("memory cluster: topology not provided")
	}

	h := &Hub{
		topo:         topo,
		barrier:      newBarrier(numHosts),
		endpoints:    make([]*Endpoint, numHosts),
		reduceSlots:  make([][]interface{}, numHosts),
		queueFactory: queue.NewInMemoryQueue,
	}

	for i := 0; i < numHosts; i++ {
		h.endpoints[i] = &Endpoint{
			hub:    h,
			hostID: i,
			inbox:  h.queueFactory(),
		}
	}

	return h, nil
}

// Endpoint returns the transport for the host with the provided ID.
func (h *Hub) Endpoint(hostID int) (*Endpoint, error) {
	if hostID < 0 || hostID >= len(h.endpoints) {
		return nil, fmt.Errorf("memory cluster: invalid host ID %d", hostID)
	}

	return h.endpoints[hostID], nil
}

// Static and compile-time check to ensure Endpoint implements the
// Transport interface.
var _ cluster.Transport = (*Endpoint)(nil)

// Endpoint is one host's membership in an in-process cluster.
type Endpoint struct {
	hub    *Hub
	hostID int
	inbox  queue.Queue
}

// HostID returns this host's slot in the cluster.
func (e *Endpoint) HostID() int { return e.hostID }

// NumHosts returns the number of hosts in the cluster.
func (e *Endpoint) NumHosts() int { return len(e.hub.endpoints) }

// Barrier blocks until every host in the cluster has reached it.
func (e *Endpoint) Barrier(ctx context.Context) error {
	return e.hub.barrier.await(ctx)
}

// AllReduce folds the local contributions of the provided aggregators
// across all hosts. Each host publishes its deltas, waits for its peers to
// do the same and then folds the peer deltas back in, leaving every host
// with the same global value.
func (e *Endpoint) AllReduce(ctx context.Context, aggs ...bsp.Aggregator) error {
	deltas := make([]interface{}, len(aggs))
	for i, agg := range aggs {
		deltas[i] = agg.Delta()
	}

	e.hub.reduceSlots[e.hostID] = deltas

	if err := e.hub.barrier.await(ctx); err != nil {
		return err
	}

	for host, peerDeltas := range e.hub.reduceSlots {
		if host == e.hostID {
			continue
		}

		for i, agg := range aggs {
			agg.Aggregate(peerDeltas[i])
		}
	}

	// Hold the slots stable until every host has consumed them.
	return e.hub.barrier.await(ctx)
}

// SyncField reduces the provided field into the owner copy of each vertex
// and broadcasts the merged values back to the replicas.
func (e *Endpoint) SyncField(
	ctx context.Context,
	view cluster.FieldView,
	reduce cluster.Reduction,
	read cluster.ReadLocation,
) error {

	// Stage 1: push dirty mirror values to their owner hosts.
	outgoing := make(map[int]*cluster.DeltaBatch)
	view.ExtractMirrors(func(global, raw uint64) {
		owner := e.hub.topo.Owner(global)

		batch, exists := outgoing[owner]
		if !exists {
			batch = &cluster.DeltaBatch{Field: view.Name()}
			outgoing[owner] = batch
		}

		batch.Append(global, raw)
	})

	if err := e.deliver(outgoing); err != nil {
		return err
	}

	if err := e.hub.barrier.await(ctx); err != nil {
		return err
	}

	// Stage 2: owners fold the received contributions into the canonical
	// slots, then extract the merged values for the replica hosts. The
	// inbox is shared between stages, so no host may start delivering
	// broadcast batches until every host has drained its reduce batches.
	if err := e.drain(view.Combine); err != nil {
		return err
	}

	if err := e.hub.barrier.await(ctx); err != nil {
		return err
	}

	outgoing = make(map[int]*cluster.DeltaBatch)
	view.ExtractOwned(func(global, raw uint64) {
		for _, replica := range e.hub.topo.ReplicaHosts(global) {
			batch, exists := outgoing[replica]
			if !exists {
				batch = &cluster.DeltaBatch{Field: view.Name()}
				outgoing[replica] = batch
			}

			batch.Append(global, raw)
		}
	})

	if err := e.deliver(outgoing); err != nil {
		return err
	}

	if err := e.hub.barrier.await(ctx); err != nil {
		return err
	}

	// Stage 3: replicas overwrite their mirror slots with the broadcast
	// values.
	if err := e.drain(view.Assign); err != nil {
		return err
	}

	return e.hub.barrier.await(ctx)
}

// Close releases the host's membership.
func (e *Endpoint) Close() error {
	return e.inbox.Close()
}

// deliver enqueues the prepared batches into the inboxes of their
// destination hosts.
func (e *Endpoint) deliver(batches map[int]*cluster.DeltaBatch) error {
	for host, batch := range batches {
		if batch.Len() == 0 {
			continue
		}

		if err := e.hub.endpoints[host].inbox.Enqueue(batch); err != nil {
			return fmt.Errorf("delivering batch to host %d: %w", host, err)
		}
	}

	return nil
}

// drain empties the host's inbox, applying fn to each carried value.
func (e *Endpoint) drain(fn func(global, raw uint64)) error {
	return e.inbox.Drain(func(msg queue.Message) error {
		batch := msg.(*cluster.DeltaBatch)
		for i, gid := range batch.GIDs {
			fn(gid, batch.Raws[i])
		}

		return nil
	})
}

// barrier is a reusable rendezvous for a fixed number of parties.
type barrier struct {
	mu         sync.Mutex
	cond       *sync.Cond
	parties    int
	arrived    int
	generation int
}

func newBarrier(parties int) *barrier {
	b := &barrier{parties: parties}
	b.cond = sync.NewCond(&b.mu)

	return b
}

func (b *barrier) await(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	generation := b.generation

	b.arrived++
	if b.arrived == b.parties {
		b.arrived = 0
		b.generation++
		b.cond.Broadcast()

		return nil
	}

	for generation == b.generation {
		b.cond.Wait()
	}

	return nil
}
