package rpc

import (
	"context"
	"fmt"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/mycok/uCentral/bsp"
	"github.com/mycok/uCentral/cluster"
	"github.com/mycok/uCentral/cluster/api/rpc/proto"
)

// Static and compile-time check to ensure Transport implements the
// Transport interface.
var _ cluster.Transport = (*Transport)(nil)

// TransportConfig encapsulates the configuration options for joining a
// gRPC cluster.
type TransportConfig struct {
	// HostID is this host's slot in the cluster.
	HostID int

	// HostAddrs lists the listen address of every host, indexed by slot.
	// Host 0 doubles as the barrier / all-reduce coordinator.
	HostAddrs []string

	// Topology locates the replicas of each vertex.
	Topology cluster.Topology
}

// Transport is one host's membership in a gRPC cluster. It serves the
// SyncTransport service for its peers and dials every other host.
type Transport struct {
	hostID   int
	numHosts int
	topo     cluster.Topology

	server     *SyncServer
	grpcServer *grpc.Server
	conns      []*grpc.ClientConn
	peers      []proto.SyncTransportClient

	barrierGen uint64
	reduceGen  uint64
}

// NewTransport starts serving the host's endpoint and connects to every
// peer listed in the configuration.
func NewTransport(cfg TransportConfig) (*Transport, error) {
	numHosts := len(cfg.HostAddrs)

	if numHosts == 0 {
		return nil, fmt.Errorf("rpc cluster: no host addresses provided")
	} else if cfg.HostID < 0 || cfg.HostID >= numHosts {
		return nil, fmt.Errorf("rpc cluster: invalid host ID %d", cfg.HostID)
	} else if cfg.Topology == nil {
		return nil, fmt.Errorf("rpc cluster: topology not provided")
	}

	t := &Transport{
		hostID:   cfg.HostID,
		numHosts: numHosts,
		topo:     cfg.Topology,
		server:   NewSyncServer(numHosts),
		conns:    make([]*grpc.ClientConn, numHosts),
		peers:    make([]proto.SyncTransportClient, numHosts),
	}

	listener, err := net.Listen("tcp", cfg.HostAddrs[cfg.HostID])
	if err != nil {
		return nil, fmt.Errorf("rpc cluster: listening on %q: %w", cfg.HostAddrs[cfg.HostID], err)
	}

	t.grpcServer = grpc.NewServer()
	proto.RegisterSyncTransportServer(t.grpcServer, t.server)

	go func() { _ = t.grpcServer.Serve(listener) }()

	for host, addr := range cfg.HostAddrs {
		if host == t.hostID {
			continue
		}

		conn, err := grpc.Dial(
			addr, grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			_ = t.Close()

			return nil, fmt.Errorf("rpc cluster: dialing host %d at %q: %w", host, addr, err)
		}

		t.conns[host] = conn
		t.peers[host] = proto.NewSyncTransportClient(conn)
	}

	return t, nil
}

// HostID returns this host's slot in the cluster.
func (t *Transport) HostID() int { return t.hostID }

// NumHosts returns the number of hosts in the cluster.
func (t *Transport) NumHosts() int { return t.numHosts }

// Barrier blocks until every host in the cluster has reached it.
func (t *Transport) Barrier(ctx context.Context) error {
	t.barrierGen++

	req := &proto.BarrierRequest{
		HostId:     uint32(t.hostID),
		Generation: t.barrierGen,
	}

	if t.hostID == 0 {
		_, err := t.server.Barrier(ctx, req)

		return err
	}

	_, err := t.peers[0].Barrier(ctx, req)

	return err
}

// AllReduce folds the local contributions of the provided aggregators
// across all hosts: the contributions rendezvous on the coordinator and
// every host folds in the deltas of its peers.
func (t *Transport) AllReduce(ctx context.Context, aggs ...bsp.Aggregator) error {
	t.reduceGen++

	batch := &proto.AggregateBatch{
		HostId:     uint32(t.hostID),
		Generation: t.reduceGen,
	}

	for _, agg := range aggs {
		switch delta := agg.Delta().(type) {
		case int:
			batch.Deltas = append(batch.Deltas, &proto.AggregateDelta{
				IntValue: int64(delta),
			})
		case float64:
			batch.Deltas = append(batch.Deltas, &proto.AggregateDelta{
				IsFloat:    true,
				FloatValue: delta,
			})
		default:
			return fmt.Errorf(
				"all reduce: unsupported delta type %T for aggregator %q",
				delta, agg.Type(),
			)
		}
	}

	var (
		resp *proto.ReduceResponse
		err  error
	)

	if t.hostID == 0 {
		resp, err = t.server.Reduce(ctx, batch)
	} else {
		resp, err = t.peers[0].Reduce(ctx, batch)
	}

	if err != nil {
		return fmt.Errorf("all reduce: %w", err)
	}

	for _, peerBatch := range resp.Batches {
		if int(peerBatch.HostId) == t.hostID {
			continue
		}

		for i, delta := range peerBatch.Deltas {
			if delta.IsFloat {
				aggs[i].Aggregate(delta.FloatValue)
			} else {
				aggs[i].Aggregate(int(delta.IntValue))
			}
		}
	}

	return nil
}

// SyncField reduces the provided field into the owner copy of each vertex
// and broadcasts the merged values back to the replicas.
func (t *Transport) SyncField(
	ctx context.Context,
	view cluster.FieldView,
	reduce cluster.Reduction,
	read cluster.ReadLocation,
) error {

	// Stage 1: push dirty mirror values to their owner hosts.
	outgoing := make(map[int]*proto.DeltaBatch)
	view.ExtractMirrors(func(global, raw uint64) {
		owner := t.topo.Owner(global)

		batch, exists := outgoing[owner]
		if !exists {
			batch = &proto.DeltaBatch{Field: view.Name(), Stage: stageReduce}
			outgoing[owner] = batch
		}

		batch.Gids = append(batch.Gids, global)
		batch.Raws = append(batch.Raws, raw)
	})

	if err := t.deliver(ctx, outgoing); err != nil {
		return err
	}

	if err := t.Barrier(ctx); err != nil {
		return err
	}

	// Stage 2: owners fold the received contributions into the canonical
	// slots, then push the merged values to the replica hosts.
	t.server.DrainReduce(view.Combine)

	outgoing = make(map[int]*proto.DeltaBatch)
	view.ExtractOwned(func(global, raw uint64) {
		for _, replica := range t.topo.ReplicaHosts(global) {
			batch, exists := outgoing[replica]
			if !exists {
				batch = &proto.DeltaBatch{Field: view.Name(), Stage: stageBroadcast}
				outgoing[replica] = batch
			}

			batch.Gids = append(batch.Gids, global)
			batch.Raws = append(batch.Raws, raw)
		}
	})

	if err := t.deliver(ctx, outgoing); err != nil {
		return err
	}

	if err := t.Barrier(ctx); err != nil {
		return err
	}

	// Stage 3: replicas overwrite their mirror slots with the broadcast
	// values.
	t.server.DrainBroadcast(view.Assign)

	return t.Barrier(ctx)
}

// Close releases the host's membership.
func (t *Transport) Close() error {
	for _, conn := range t.conns {
		if conn != nil {
			_ = conn.Close()
		}
	}

	if t.grpcServer != nil {
		t.grpcServer.Stop()
	}

	return nil
}

// deliver pushes the prepared batches to their destination hosts.
func (t *Transport) deliver(ctx context.Context, batches map[int]*proto.DeltaBatch) error {
	for host, batch := range batches {
		if len(batch.Gids) == 0 {
			continue
		}

		if host == t.hostID {
			if _, err := t.server.PushDeltas(ctx, batch); err != nil {
				return fmt.Errorf("delivering batch to host %d: %w", host, err)
			}

			continue
		}

		if _, err := t.peers[host].PushDeltas(ctx, batch); err != nil {
			return fmt.Errorf("delivering batch to host %d: %w", host, err)
		}
	}

	return nil
}
