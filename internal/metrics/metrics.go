// Package metrics declares the Prometheus collectors shared by the
// database, the HTTP API and the CLI.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query kinds used as the "kind" label.
const (
	KindPair  = "pair"
	KindTree  = "tree"
	KindPath  = "path"
	KindMatch = "match"
)

// Query outcomes used as the "result" label.
const (
	ResultFound       = "found"
	ResultUnreachable = "unreachable"
	ResultUnknown     = "unknown_player"
	ResultNone        = "none"
	ResultError       = "error"
)

var (
	Queries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "degrees_queries_total",
		Help: "Total number of separation queries, labelled by kind and result.",
	}, []string{"kind", "result"})

	QueryDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "degrees_query_duration_seconds",
		Help:    "Breadth-first search latency per query kind.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 4, 8),
	}, []string{"kind"})

	Loads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "degrees_database_loads_total",
		Help: "Total number of game database loads, labelled by status.",
	}, []string{"status"})

	LoadDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "degrees_database_load_duration_seconds",
		Help:    "Time spent parsing games and building the graph.",
		Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
	})

	Players = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "degrees_players",
		Help: "Number of distinct players (graph vertices) in the loaded database.",
	})

	Pairings = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "degrees_pairings",
		Help: "Number of graph edges in the loaded database.",
	})

	Games = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "degrees_games",
		Help: "Number of games read from the loaded database.",
	})
)
