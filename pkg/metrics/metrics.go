// Package metrics describes a wordstat run as Prometheus collectors. A one-shot
// tool has nothing to scrape, so the registry is dumped in text exposition
// format instead, ready for node_exporter's textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agicy/wordstat/pkg/count"
)

// Metrics holds the collectors of one run on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	BytesReadTotal  prometheus.Counter
	RefillsTotal    prometheus.Counter
	FlushesTotal    prometheus.Counter
	WordsTotal      prometheus.Counter
	ReadFaultsTotal prometheus.Counter
	DistinctWords   prometheus.Gauge
	TrieNodes       prometheus.Gauge
	ResidualEntries prometheus.Gauge
	PhaseDuration   *prometheus.GaugeVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		BytesReadTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordstat_bytes_read_total",
				Help: "Bytes pulled from the input file.",
			},
		),
		RefillsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordstat_input_refills_total",
				Help: "Reads issued to refill the input buffer.",
			},
		),
		FlushesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordstat_output_flushes_total",
				Help: "Chunks written to the output stream.",
			},
		),
		WordsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordstat_words_total",
				Help: "Words produced by the tokenizer.",
			},
		),
		ReadFaultsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "wordstat_read_faults_total",
				Help: "Read errors taken as end of input.",
			},
		),
		DistinctWords: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordstat_distinct_words",
				Help: "Distinct words in the index.",
			},
		),
		TrieNodes: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordstat_trie_nodes",
				Help: "Nodes in the trie arena, root included.",
			},
		),
		ResidualEntries: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "wordstat_rank_residual_entries",
				Help: "Entries too frequent for the bucket table.",
			},
		),
		PhaseDuration: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "wordstat_phase_duration_seconds",
				Help: "Wall time spent in each pipeline phase.",
			},
			[]string{"phase"},
		),
	}

	m.Registry.MustRegister(
		m.BytesReadTotal,
		m.RefillsTotal,
		m.FlushesTotal,
		m.WordsTotal,
		m.ReadFaultsTotal,
		m.DistinctWords,
		m.TrieNodes,
		m.ResidualEntries,
		m.PhaseDuration,
	)

	return m
}

// Observe records the outcome of a run.
func (m *Metrics) Observe(s count.Stats) {
	m.BytesReadTotal.Add(float64(s.BytesRead))
	m.RefillsTotal.Add(float64(s.Refills))
	m.FlushesTotal.Add(float64(s.Flushes))
	m.WordsTotal.Add(float64(s.Words))
	if s.ReadErr != nil {
		m.ReadFaultsTotal.Inc()
	}
	m.DistinctWords.Set(float64(s.Distinct))
	m.TrieNodes.Set(float64(s.Nodes))
	m.ResidualEntries.Set(float64(s.Residual))
	for phase, d := range s.Durations {
		m.PhaseDuration.WithLabelValues(phase.String()).Set(d.Seconds())
	}
}

// WriteTextfile atomically writes the registry to path in text format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
