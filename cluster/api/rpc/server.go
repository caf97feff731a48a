/*
	rpc provides a cluster transport whose hosts run in separate processes
	and exchange delta batches over gRPC. Every host serves the
	SyncTransport service; barriers and all-reduces rendezvous on the
	server of host 0.
*/

package rpc

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/protobuf/types/known/emptypb"

	"github.com/mycok/uCentral/cluster/api/rpc/proto"
)

// Delta batch stages: mirror-to-owner reduce traffic and owner-to-replica
// broadcast traffic.
const (
	stageReduce    = 1
	stageBroadcast = 2
)

// Static and compile-time check to ensure SyncServer implements the
// SyncTransportServer interface.
var _ proto.SyncTransportServer = (*SyncServer)(nil)

// SyncServer is the per-host server side of the gRPC cluster transport. It
// buffers incoming delta batches for the local engine to drain and, on the
// coordinator host, implements the barrier and all-reduce rendezvous.
type SyncServer struct {
	proto.UnimplementedSyncTransportServer

	numHosts int

	mu             sync.Mutex
	reduceInbox    []*proto.DeltaBatch
	broadcastInbox []*proto.DeltaBatch
	barriers       map[uint64]*rendezvous
	reduces        map[uint64]*reduceRendezvous
}

// NewSyncServer returns a server for a cluster of numHosts hosts.
func NewSyncServer(numHosts int) *SyncServer {
	return &SyncServer{
		numHosts: numHosts,
		barriers: make(map[uint64]*rendezvous),
		reduces:  make(map[uint64]*reduceRendezvous),
	}
}

// PushDeltas buffers a delta batch until the local engine drains it.
func (s *SyncServer) PushDeltas(
	_ context.Context, batch *proto.DeltaBatch,
) (*emptypb.Empty, error) {

	s.mu.Lock()
	defer s.mu.Unlock()

	switch batch.Stage {
	case stageReduce:
		s.reduceInbox = append(s.reduceInbox, batch)
	case stageBroadcast:
		s.broadcastInbox = append(s.broadcastInbox, batch)
	default:
		return nil, fmt.Errorf("push deltas: unknown stage %d", batch.Stage)
	}

	return new(emptypb.Empty), nil
}

// Barrier blocks until every host of the cluster has announced its arrival
// at the provided barrier generation. Only the coordinator host serves
// barriers.
func (s *SyncServer) Barrier(
	ctx context.Context, req *proto.BarrierRequest,
) (*emptypb.Empty, error) {

	s.mu.Lock()

	r, exists := s.barriers[req.Generation]
	if !exists {
		r = &rendezvous{done: make(chan struct{})}
		s.barriers[req.Generation] = r
	}

	r.arrived++
	if r.arrived == s.numHosts {
		close(r.done)
	}

	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-r.done:
	}

	s.mu.Lock()
	r.served++
	if r.served == s.numHosts {
		delete(s.barriers, req.Generation)
	}
	s.mu.Unlock()

	return new(emptypb.Empty), nil
}

// Reduce collects one aggregator contribution batch per host and, once all
// hosts have contributed, returns every batch to every caller. Only the
// coordinator host serves reduces.
func (s *SyncServer) Reduce(
	ctx context.Context, batch *proto.AggregateBatch,
) (*proto.ReduceResponse, error) {

	s.mu.Lock()

	r, exists := s.reduces[batch.Generation]
	if !exists {
		r = &reduceRendezvous{done: make(chan struct{})}
		s.reduces[batch.Generation] = r
	}

	r.batches = append(r.batches, batch)
	if len(r.batches) == s.numHosts {
		close(r.done)
	}

	s.mu.Unlock()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-r.done:
	}

	s.mu.Lock()
	resp := &proto.ReduceResponse{Batches: r.batches}
	r.served++
	if r.served == s.numHosts {
		delete(s.reduces, batch.Generation)
	}
	s.mu.Unlock()

	return resp, nil
}

// DrainReduce hands every buffered reduce-stage value to fn and clears the
// buffer.
func (s *SyncServer) DrainReduce(fn func(global, raw uint64)) {
	s.drain(&s.reduceInbox, fn)
}

// DrainBroadcast hands every buffered broadcast-stage value to fn and
// clears the buffer.
func (s *SyncServer) DrainBroadcast(fn func(global, raw uint64)) {
	s.drain(&s.broadcastInbox, fn)
}

func (s *SyncServer) drain(inbox *[]*proto.DeltaBatch, fn func(global, raw uint64)) {
	s.mu.Lock()
	batches := *inbox
	*inbox = nil
	s.mu.Unlock()

	for _, batch := range batches {
		for i, gid := range batch.Gids {
			fn(gid, batch.Raws[i])
		}
	}
}

// rendezvous tracks the arrivals at one barrier generation.
type rendezvous struct {
	arrived int
	served  int
	done    chan struct{}
}

// reduceRendezvous tracks the contributions to one all-reduce generation.
type reduceRendezvous struct {
	served  int
	batches []*proto.AggregateBatch
	done    chan struct{}
}
