package metrics

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/valvenet/oracle"
	"github.com/katalvlaran/valvenet/planner"
)

const namespace = "valvenet"

// Metrics holds the collectors registered on one registry.
type Metrics struct {
	reg *prometheus.Registry

	nodes        *prometheus.CounterVec
	improvements *prometheus.CounterVec
	interrupted  *prometheus.CounterVec
	duration     *prometheus.HistogramVec
	best         *prometheus.GaugeVec

	bfsRuns     prometheus.Counter
	cacheHits   prometheus.Counter
	cacheMisses prometheus.Counter
	cachedPairs prometheus.Gauge

	mu   sync.Mutex
	last oracle.Stats
}

var _ planner.Recorder = (*Metrics)(nil)

// New registers the collectors on reg, or on a fresh registry if reg is nil.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	f := promauto.With(reg)

	return &Metrics{
		reg: reg,
		nodes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "nodes_total",
			Help:      "Recursion entries explored by the planner",
		}, []string{"mode"}),
		improvements: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "improvements_total",
			Help:      "Incumbent improvements found during search",
		}, []string{"mode"}),
		interrupted: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "interrupted_total",
			Help:      "Searches stopped before exhausting the tree",
		}, []string{"mode"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Wall-clock time of a seed or search",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}, []string{"mode"}),
		best: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_value",
			Help:      "Value of the last finished seed or search",
		}, []string{"mode"}),
		bfsRuns: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oracle",
			Name:      "bfs_runs_total",
			Help:      "Breadth-first walks run by the distance oracle",
		}),
		cacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oracle",
			Name:      "cache_hits_total",
			Help:      "Distance queries answered from the cache",
		}),
		cacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "oracle",
			Name:      "cache_misses_total",
			Help:      "Distance queries that required a walk",
		}),
		cachedPairs: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "oracle",
			Name:      "cached_pairs",
			Help:      "Site pairs currently held in the distance cache",
		}),
	}
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Improved implements planner.Recorder.
func (m *Metrics) Improved(mode string, _ int) {
	m.improvements.WithLabelValues(mode).Inc()
}

// Finished implements planner.Recorder.
func (m *Metrics) Finished(mode string, res planner.Result, elapsed time.Duration) {
	m.nodes.WithLabelValues(mode).Add(float64(res.Nodes))
	m.duration.WithLabelValues(mode).Observe(elapsed.Seconds())
	m.best.WithLabelValues(mode).Set(float64(res.Value))
	if !res.Complete {
		m.interrupted.WithLabelValues(mode).Inc()
	}
}

// ObserveOracle folds a snapshot of oracle counters into the collectors.
// Snapshots of one oracle are cumulative; only the growth since the last
// call is added.
func (m *Metrics) ObserveOracle(s oracle.Stats) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if d := s.BFSRuns - m.last.BFSRuns; d > 0 {
		m.bfsRuns.Add(float64(d))
	}
	if d := s.Hits - m.last.Hits; d > 0 {
		m.cacheHits.Add(float64(d))
	}
	if d := s.Misses - m.last.Misses; d > 0 {
		m.cacheMisses.Add(float64(d))
	}
	m.cachedPairs.Set(float64(s.Cached))
	m.last = s
}

// Write encodes every gathered family in the text exposition format.
func (m *Metrics) Write(w io.Writer) error {
	mfs, err := m.reg.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}

	return encode(w, mfs)
}

func encode(w io.Writer, mfs []*dto.MetricFamily) error {
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range mfs {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}

	return nil
}
