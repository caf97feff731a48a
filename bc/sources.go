package bc

import (
	"fmt"
	"sort"
)

// SourceMode selects how the driver picks the sequence of source vertices.
type SourceMode int

const (
	// SingleSource runs the pipeline for the configured start vertex only.
	SingleSource SourceMode = iota

	// SampledSources runs the pipeline for the start vertex plus a
	// reproducible sample of further vertices.
	SampledSources

	// AllSources runs the pipeline for every vertex, yielding the exact
	// betweenness centrality.
	AllSources
)

// Parameters of the linear-congruential generator behind the sampled mode.
// The fixed seed makes the drawn source set reproducible across runs.
const (
	lcgSeed       = 100
	lcgMultiplier = 16807
	lcgModulus    = 2147483647
)

// SourceConfig describes the source vertex selection for a run.
type SourceConfig struct {
	// Mode selects single, sampled or all-sources operation.
	Mode SourceMode

	// StartVertex is the source for SingleSource mode and the seed member
	// of the sample for SampledSources mode.
	StartVertex uint64

	// NumOfSources is the sample size for SampledSources mode.
	NumOfSources int
}

// Sources materialises the ordered source sequence for a graph of
// numVertices vertices.
func (config SourceConfig) Sources(numVertices uint64) ([]uint64, error) {
	if numVertices == 0 {
		return nil, fmt.Errorf("source selection: the vertex set is empty")
	}

	switch config.Mode {
	case SingleSource:
		if config.StartVertex >= numVertices {
			return nil, fmt.Errorf(
				"source selection: start vertex %d outside the global range [0, %d)",
				config.StartVertex, numVertices,
			)
		}

		return []uint64{config.StartVertex}, nil

	case SampledSources:
		return config.sample(numVertices)

	case AllSources:
		sources := make([]uint64, numVertices)
		for i := range sources {
			sources[i] = uint64(i)
		}

		return sources, nil

	default:
		return nil, fmt.Errorf("source selection: unknown mode %d", config.Mode)
	}
}

// sample draws the start vertex plus NumOfSources-1 distinct uniformly
// drawn vertex IDs from a seeded generator. Iteration order is ascending,
// which together with the fixed seed makes repeated runs identical.
func (config SourceConfig) sample(numVertices uint64) ([]uint64, error) {
	if config.NumOfSources <= 0 {
		return nil, fmt.Errorf("source selection: number of sources must be at least 1")
	}

	if config.StartVertex >= numVertices {
		return nil, fmt.Errorf(
			"source selection: start vertex %d outside the global range [0, %d)",
			config.StartVertex, numVertices,
		)
	}

	if uint64(config.NumOfSources) > numVertices {
		return nil, fmt.Errorf(
			"source selection: cannot draw %d distinct sources from %d vertices",
			config.NumOfSources, numVertices,
		)
	}

	drawn := map[uint64]struct{}{config.StartVertex: {}}
	state := uint64(lcgSeed)

	for len(drawn) < config.NumOfSources {
		state = state * lcgMultiplier % lcgModulus
		drawn[state%numVertices] = struct{}{}
	}

	sources := make([]uint64, 0, len(drawn))
	for src := range drawn {
		sources = append(sources, src)
	}
	sort.Slice(sources, func(i, j int) bool { return sources[i] < sources[j] })

	return sources, nil
}
