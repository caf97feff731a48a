package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/mycok/uCentral/bc"
	"github.com/mycok/uCentral/cluster"
	"github.com/mycok/uCentral/cluster/api/rpc"
	"github.com/mycok/uCentral/cluster/memory"
	"github.com/mycok/uCentral/graph"
	"github.com/mycok/uCentral/graph/store/cdb"
	memgraph "github.com/mycok/uCentral/graph/store/memory"
	"github.com/mycok/uCentral/partition"
	"github.com/mycok/uCentral/scores"
	esscores "github.com/mycok/uCentral/scores/store/es"
	memscores "github.com/mycok/uCentral/scores/store/memory"
	"github.com/mycok/uCentral/service"
	"github.com/mycok/uCentral/service/centrality"
)

const appName = "uCentral"

type appConfig struct {
	maxIterations  int
	singleSource   bool
	srcNodeID      uint64
	numOfSources   int
	verify         bool
	outputDir      string
	computeWorkers int
	graphURI       string
	scoresURI      string
	hostMode       string
	hostAddrs      string
	updateInterval time.Duration
}

func main() {
	host, _ := os.Hostname()
	rootLogger := logrus.New()
	logger := rootLogger.WithFields(logrus.Fields{
		"app":  appName,
		"host": host,
	})

	if err := run(logger); err != nil {
		logger.WithField("err", err).Error("shutting down due to an error")
		os.Exit(1)
	}
}

func run(logger *logrus.Entry) error {
	var cfg appConfig

	flag.IntVar(
		&cfg.maxIterations, "max-iterations", 10000,
		"Maximum number of rounds each phase may run before the computation is declared divergent",
	)
	flag.BoolVar(
		&cfg.singleSource, "single-source", false,
		"Compute centrality contributions for a single source vertex only",
	)
	flag.Uint64Var(
		&cfg.srcNodeID, "src-node-id", 0,
		"Source vertex for single-source mode and seed member of the sampled source set",
	)
	flag.IntVar(
		&cfg.numOfSources, "num-of-sources", 0,
		"Number of sources to sample. 0 computes contributions for every vertex",
	)
	flag.BoolVar(
		&cfg.verify, "verify", false,
		"Dump one '<vertex> <score>' line per owned vertex to the per-host output file",
	)
	flag.StringVar(
		&cfg.outputDir, "output-dir", ".",
		"Directory the verification dump is written to",
	)
	flag.IntVar(
		&cfg.computeWorkers, "compute-workers", runtime.NumCPU(),
		"Number of workers for the per-vertex operator passes.[defaults to number of CPU's]",
	)
	flag.StringVar(
		&cfg.graphURI, "graph-uri", "",
		"URI for loading the graph's edge list."+
			" [supported URI's: file:///path/to/edges.txt, postgresql://user@host:26257/graph?sslmode=disable]",
	)
	flag.StringVar(
		&cfg.scoresURI, "scores-uri", "in-memory://",
		"URI for publishing computed scores."+
			" [supported URI's: in-memory://, es://node1:9200,...,nodeN:9200]",
	)
	flag.StringVar(
		&cfg.hostMode, "host-mode", "single",
		"The host slot detection mode to use. Supported values are"+
			" 'single' (local dev mode), 'fixed=I/N' and 'dns=HEADLESS_SERVICE_NAME' (k8s)",
	)
	flag.StringVar(
		&cfg.hostAddrs, "host-addrs", "",
		"Comma separated listen addresses of every host, required for multi-host runs",
	)
	flag.DurationVar(
		&cfg.updateInterval, "update-interval", 0,
		"When set, run as a periodic service that recomputes scores on this interval",
	)
	flag.Parse()

	if cfg.graphURI == "" {
		return fmt.Errorf("a -graph-uri value is required")
	}

	edgeSource, err := newEdgeSource(cfg.graphURI)
	if err != nil {
		return err
	}

	scoreStore, err := newScoreStore(cfg.scoresURI)
	if err != nil {
		return err
	}

	sourceConfig := bc.SourceConfig{
		Mode:         bc.AllSources,
		StartVertex:  cfg.srcNodeID,
		NumOfSources: cfg.numOfSources,
	}
	if cfg.singleSource {
		sourceConfig.Mode = bc.SingleSource
	} else if cfg.numOfSources != 0 {
		sourceConfig.Mode = bc.SampledSources
	}

	if cfg.updateInterval > 0 {
		return runAsService(logger, cfg, edgeSource, scoreStore, sourceConfig)
	}

	return runOnce(logger, cfg, edgeSource, scoreStore, sourceConfig)
}

// runOnce executes one full computation on this host and publishes the
// results.
func runOnce(
	logger *logrus.Entry,
	cfg appConfig,
	edgeSource graph.EdgeSource,
	scoreStore scores.Store,
	sourceConfig bc.SourceConfig,
) error {

	ctx := context.Background()

	detector, err := newHostDetector(cfg.hostMode)
	if err != nil {
		return err
	}

	hostID, numHosts, err := detector.HostInfo()
	if err != nil {
		return err
	}

	// The pipeline phases pull along in-edges, so the partition is built
	// over the reversed edges.
	partitions, err := graph.Build(graph.Reversed(edgeSource), numHosts)
	if err != nil {
		return err
	}

	ownPartition := partitions[hostID]

	transport, err := newTransport(cfg, hostID, ownPartition)
	if err != nil {
		return err
	}

	numVertices := ownPartition.NumGlobalVertices()
	sources, err := sourceConfig.Sources(numVertices)
	if err != nil {
		return err
	}

	calculator, err := bc.NewCalculator(bc.Config{
		Graph:          ownPartition,
		Transport:      transport,
		ComputeWorkers: cfg.computeWorkers,
		MaxIterations:  cfg.maxIterations,
		Logger:         logger,
	})
	if err != nil {
		return err
	}
	defer func() { _ = calculator.Close() }()

	logger.WithFields(logrus.Fields{
		"host_id":      hostID,
		"num_hosts":    numHosts,
		"num_vertices": numVertices,
		"num_sources":  len(sources),
	}).Info("starting betweenness centrality computation")

	if err := calculator.Run(ctx, sources); err != nil {
		return err
	}

	if _, err := calculator.Sanity(ctx); err != nil {
		return err
	}

	err = calculator.Scores(func(vertex uint64, score float64) error {
		return scoreStore.UpsertScore(vertex, score)
	})
	if err != nil {
		return err
	}

	if cfg.verify {
		if err := writeVerificationDump(cfg.outputDir, hostID, calculator); err != nil {
			return err
		}
	}

	return nil
}

// runAsService wires the periodic centrality service and blocks until an
// os signal or an error stops it.
func runAsService(
	logger *logrus.Entry,
	cfg appConfig,
	edgeSource graph.EdgeSource,
	scoreStore scores.Store,
	sourceConfig bc.SourceConfig,
) error {

	detector, err := newHostDetector(cfg.hostMode)
	if err != nil {
		return err
	}

	svc, err := centrality.New(centrality.Config{
		GraphAPI:            edgeSource,
		ScoreAPI:            scoreStore,
		HostDetector:        detector,
		Sources:             sourceConfig,
		NumOfComputeWorkers: cfg.computeWorkers,
		MaxIterations:       cfg.maxIterations,
		UpdateInterval:      cfg.updateInterval,
		Logger:              logger,
	})
	if err != nil {
		return err
	}

	ctx, cancelFn := context.WithCancel(context.Background())
	defer cancelFn()

	// Launch a separate process to listen and respond to os signals and
	// trigger a graceful shutdown.
	go func() {
		signalChan := make(chan os.Signal, 1)
		signal.Notify(signalChan, syscall.SIGINT, syscall.SIGHUP)

		select {
		case s := <-signalChan:
			logger.WithField("signal", s.String()).Info("shutting down due to os signal")
			cancelFn()
		case <-ctx.Done():
		}
	}()

	if err := (service.Group{svc}).Execute(ctx); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}

// newEdgeSource selects the edge list backend from its URI.
func newEdgeSource(graphURI string) (graph.EdgeSource, error) {
	switch {
	case strings.HasPrefix(graphURI, "file://"):
		return loadEdgeListFile(strings.TrimPrefix(graphURI, "file://"))
	case strings.HasPrefix(graphURI, "postgresql://"):
		return cdb.NewCockroachDBEdgeSource(graphURI)
	default:
		return nil, fmt.Errorf("unsupported graph URI %q", graphURI)
	}
}

// newScoreStore selects the score sink backend from its URI.
func newScoreStore(scoresURI string) (scores.Store, error) {
	switch {
	case scoresURI == "in-memory://":
		return memscores.NewScoreStore(), nil
	case strings.HasPrefix(scoresURI, "es://"):
		nodes := strings.Split(strings.TrimPrefix(scoresURI, "es://"), ",")
		for i, node := range nodes {
			if !strings.HasPrefix(node, "http") {
				nodes[i] = "http://" + node
			}
		}

		return esscores.NewElasticsearchStore(nodes, false)
	default:
		return nil, fmt.Errorf("unsupported scores URI %q", scoresURI)
	}
}

// newHostDetector selects the host slot detector from the host mode flag.
func newHostDetector(hostMode string) (partition.Detector, error) {
	switch {
	case hostMode == "single":
		return partition.Fixed{Host: 0, NumHosts: 1}, nil
	case strings.HasPrefix(hostMode, "fixed="):
		slot := strings.TrimPrefix(hostMode, "fixed=")
		tokens := strings.Split(slot, "/")
		if len(tokens) != 2 {
			return nil, fmt.Errorf("invalid fixed host mode %q, expected fixed=I/N", hostMode)
		}

		hostID, err := strconv.Atoi(tokens[0])
		if err != nil {
			return nil, fmt.Errorf("invalid host slot in %q: %w", hostMode, err)
		}

		numHosts, err := strconv.Atoi(tokens[1])
		if err != nil {
			return nil, fmt.Errorf("invalid host count in %q: %w", hostMode, err)
		}

		return partition.Fixed{Host: hostID, NumHosts: numHosts}, nil
	case strings.HasPrefix(hostMode, "dns="):
		return partition.DetectFromSRVRecords(strings.TrimPrefix(hostMode, "dns=")), nil
	default:
		return nil, fmt.Errorf("unsupported host mode %q", hostMode)
	}
}

// newTransport joins the sync cluster: an in-process hub for single-host
// runs, a gRPC mesh otherwise.
func newTransport(
	cfg appConfig, hostID int, topo cluster.Topology,
) (cluster.Transport, error) {

	if cfg.hostAddrs == "" {
		hub, err := memory.NewHub(1, topo)
		if err != nil {
			return nil, err
		}

		return hub.Endpoint(0)
	}

	return rpc.NewTransport(rpc.TransportConfig{
		HostID:    hostID,
		HostAddrs: strings.Split(cfg.hostAddrs, ","),
		Topology:  topo,
	})
}

// loadEdgeListFile reads a whitespace separated "src dst" edge list into an
// in-memory store.
func loadEdgeListFile(path string) (graph.EdgeSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loading edge list: %w", err)
	}
	defer f.Close()

	var (
		edges       [][2]uint64
		numVertices uint64
	)

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tokens := strings.Fields(line)
		if len(tokens) != 2 {
			return nil, fmt.Errorf("loading edge list: malformed line %q", line)
		}

		src, err := strconv.ParseUint(tokens[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("loading edge list: %w", err)
		}

		dst, err := strconv.ParseUint(tokens[1], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("loading edge list: %w", err)
		}

		edges = append(edges, [2]uint64{src, dst})

		if src >= numVertices {
			numVertices = src + 1
		}
		if dst >= numVertices {
			numVertices = dst + 1
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loading edge list: %w", err)
	}

	store := memgraph.NewEdgeStore(numVertices)
	for _, edge := range edges {
		if err := store.AddEdge(edge[0], edge[1]); err != nil {
			return nil, err
		}
	}

	return store, nil
}

// writeVerificationDump writes the per-host score dump used to verify runs
// against a reference implementation.
func writeVerificationDump(outputDir string, hostID int, calculator *bc.Calculator) error {
	path := filepath.Join(outputDir, fmt.Sprintf("centrality.%d.out", hostID))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("verification dump: %w", err)
	}

	w := bufio.NewWriter(f)
	if err := calculator.WriteScores(w); err != nil {
		_ = f.Close()

		return fmt.Errorf("verification dump: %w", err)
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()

		return fmt.Errorf("verification dump: %w", err)
	}

	return f.Close()
}
