package graph

import (
	"fmt"
	"sort"
)

// Partition is the slice of a partitioned graph materialised on one host:
// the contiguous global ID range the host owns plus mirror slots for the
// remote endpoints of its local edges. It satisfies the bsp.Graph compute
// contract and the cluster.Topology replica map.
//
// Local IDs are dense: owned vertices with outgoing edges first, then the
// remaining owned vertices, then mirrors, each group in ascending global
// ID order.
type Partition struct {
	hostID   int
	numHosts int

	numGlobal uint64
	// Uniform owner-range width. Host i owns [i*chunk, (i+1)*chunk) clipped
	// to the global range.
	chunk uint64

	numWithEdges uint32
	numOwned     uint32

	globalOf []uint64
	localOf  map[uint64]uint32

	csrIndex []uint32
	csrEdges []uint32

	replicas map[uint64][]int
}

// Build partitions the edges of the provided source across numHosts hosts
// using a source-side edge cut: every edge lives with the owner of its
// source vertex, so vertices with outgoing edges are always materialised on
// their owner and only destination endpoints are mirrored.
//
// The returned slice holds one partition per host. Replica maps span the
// whole cluster, so a multi-process deployment builds all partitions and
// keeps the one matching its host slot.
func Build(source EdgeSource, numHosts int) ([]*Partition, error) {
	if numHosts <= 0 {
		return nil, fmt.Errorf("graph partitioning: number of hosts must be at least 1")
	}

	numGlobal, err := source.NumVertices()
	if err != nil {
		return nil, fmt.Errorf("graph partitioning: %w", err)
	} else if numGlobal == 0 {
		return nil, fmt.Errorf("graph partitioning: the vertex set is empty")
	}

	chunk := (numGlobal + uint64(numHosts) - 1) / uint64(numHosts)

	// Per host adjacency of owned source vertices, keyed by global ID.
	adjacency := make([]map[uint64][]uint64, numHosts)
	for i := range adjacency {
		adjacency[i] = make(map[uint64][]uint64)
	}

	it, err := source.Edges()
	if err != nil {
		return nil, fmt.Errorf("graph partitioning: %w", err)
	}

	for it.Next() {
		edge := it.Edge()
		if edge.Src >= numGlobal || edge.Dst >= numGlobal {
			_ = it.Close()

			return nil, fmt.Errorf(
				"graph partitioning: edge (%d, %d) references a vertex outside the global range [0, %d)",
				edge.Src, edge.Dst, numGlobal,
			)
		}

		host := int(edge.Src / chunk)
		adjacency[host][edge.Src] = append(adjacency[host][edge.Src], edge.Dst)
	}

	if err := it.Error(); err != nil {
		_ = it.Close()

		return nil, fmt.Errorf("graph partitioning: %w", err)
	}

	if err := it.Close(); err != nil {
		return nil, fmt.Errorf("graph partitioning: %w", err)
	}

	partitions := make([]*Partition, numHosts)
	for host := 0; host < numHosts; host++ {
		partitions[host] = assemble(host, numHosts, numGlobal, chunk, adjacency[host])
	}

	// Record which hosts mirror each vertex. The map is shared by all
	// partitions so any of them can serve as the cluster topology.
	replicas := make(map[uint64][]int)
	for host, p := range partitions {
		for local := p.numOwned; local < uint32(len(p.globalOf)); local++ {
			gid := p.globalOf[local]
			replicas[gid] = append(replicas[gid], host)
		}
	}

	for _, p := range partitions {
		p.replicas = replicas
	}

	return partitions, nil
}

// assemble lays out the local ID space and CSR topology for one host.
func assemble(
	hostID, numHosts int,
	numGlobal, chunk uint64,
	adjacency map[uint64][]uint64,
) *Partition {

	ownedLo := uint64(hostID) * chunk
	ownedHi := ownedLo + chunk
	if ownedLo > numGlobal {
		ownedLo = numGlobal
	}
	if ownedHi > numGlobal {
		ownedHi = numGlobal
	}

	withEdges := make([]uint64, 0, len(adjacency))
	for gid := range adjacency {
		withEdges = append(withEdges, gid)
	}
	sort.Slice(withEdges, func(i, j int) bool { return withEdges[i] < withEdges[j] })

	// Collect the destination endpoints that fall outside the owned range.
	mirrorSet := make(map[uint64]struct{})
	for _, dsts := range adjacency {
		for _, dst := range dsts {
			if dst < ownedLo || dst >= ownedHi {
				mirrorSet[dst] = struct{}{}
			}
		}
	}

	mirrors := make([]uint64, 0, len(mirrorSet))
	for gid := range mirrorSet {
		mirrors = append(mirrors, gid)
	}
	sort.Slice(mirrors, func(i, j int) bool { return mirrors[i] < mirrors[j] })

	numOwned := uint32(ownedHi - ownedLo)
	numLocal := int(numOwned) + len(mirrors)

	p := &Partition{
		hostID:       hostID,
		numHosts:     numHosts,
		numGlobal:    numGlobal,
		chunk:        chunk,
		numWithEdges: uint32(len(withEdges)),
		numOwned:     numOwned,
		globalOf:     make([]uint64, 0, numLocal),
		localOf:      make(map[uint64]uint32, numLocal),
	}

	assign := func(gid uint64) {
		p.localOf[gid] = uint32(len(p.globalOf))
		p.globalOf = append(p.globalOf, gid)
	}

	for _, gid := range withEdges {
		assign(gid)
	}

	for gid := ownedLo; gid < ownedHi; gid++ {
		if _, hasEdges := adjacency[gid]; !hasEdges {
			assign(gid)
		}
	}

	for _, gid := range mirrors {
		assign(gid)
	}

	p.csrIndex = make([]uint32, len(withEdges)+1)
	for i, gid := range withEdges {
		p.csrIndex[i+1] = p.csrIndex[i] + uint32(len(adjacency[gid]))
	}

	p.csrEdges = make([]uint32, 0, p.csrIndex[len(withEdges)])
	for _, gid := range withEdges {
		for _, dst := range adjacency[gid] {
			p.csrEdges = append(p.csrEdges, p.localOf[dst])
		}
	}

	return p
}

// HostID returns the host slot this partition belongs to.
func (p *Partition) HostID() int { return p.hostID }

// NumHosts returns the number of hosts the graph is partitioned across.
func (p *Partition) NumHosts() int { return p.numHosts }

// NumLocalVertices returns the number of vertices materialised on this
// host, owned and mirrored alike.
func (p *Partition) NumLocalVertices() int { return len(p.globalOf) }

// NumOwnedVertices returns the number of vertices this host owns.
func (p *Partition) NumOwnedVertices() int { return int(p.numOwned) }

// NumGlobalVertices returns the size of the global vertex set.
func (p *Partition) NumGlobalVertices() uint64 { return p.numGlobal }

// LocalRange returns the [start, end) local ID range covering every local
// vertex.
func (p *Partition) LocalRange() (uint32, uint32) {
	return 0, uint32(len(p.globalOf))
}

// LocalRangeWithEdges returns the [start, end) local ID range covering
// exactly the local vertices with outgoing edges.
func (p *Partition) LocalRangeWithEdges() (uint32, uint32) {
	return 0, p.numWithEdges
}

// OutEdges returns the local destination IDs of the outgoing edges of the
// vertex with the provided local ID.
func (p *Partition) OutEdges(local uint32) []uint32 {
	if local >= p.numWithEdges {
		return nil
	}

	return p.csrEdges[p.csrIndex[local]:p.csrIndex[local+1]]
}

// IsOwned reports whether this host owns the vertex with the provided
// local ID.
func (p *Partition) IsOwned(local uint32) bool { return local < p.numOwned }

// GlobalID maps a local vertex ID to its global ID.
func (p *Partition) GlobalID(local uint32) uint64 { return p.globalOf[local] }

// LocalID maps a global vertex ID to its local ID on this host.
func (p *Partition) LocalID(global uint64) (uint32, bool) {
	local, exists := p.localOf[global]

	return local, exists
}

// Owner returns the host owning the vertex with the provided global ID.
func (p *Partition) Owner(global uint64) int { return int(global / p.chunk) }

// ReplicaHosts returns the hosts, excluding the owner, that mirror the
// vertex with the provided global ID.
func (p *Partition) ReplicaHosts(global uint64) []int { return p.replicas[global] }
