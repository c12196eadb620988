package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/beanfilter/filter"
	"github.com/iho/beanfilter/ledger"
)

// Metrics holds all Prometheus metrics describing filter activity.
type Metrics struct {
	EntriesProcessed *prometheus.CounterVec
	EntriesKept      *prometheus.CounterVec
	EntriesDropped   *prometheus.CounterVec
	FilterDuration   *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		EntriesProcessed: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "beanfilter_entries_processed_total",
				Help: "Total number of entries examined per filter",
			},
			[]string{"filter"},
		),
		EntriesKept: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "beanfilter_entries_kept_total",
				Help: "Total number of entries kept per filter",
			},
			[]string{"filter"},
		),
		EntriesDropped: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "beanfilter_entries_dropped_total",
				Help: "Total number of entries dropped per filter",
			},
			[]string{"filter"},
		),
		FilterDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "beanfilter_filter_duration_seconds",
				Help:    "Duration of filter runs",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"filter"},
		),
	}
}

// InstrumentedFilter records filter activity around an inner filter.
type InstrumentedFilter struct {
	inner filter.EntryFilter
	m     *Metrics
}

var _ filter.EntryFilter = (*InstrumentedFilter)(nil)

// Instrument wraps f so every run records entry counts and duration under
// the filter's name.
func Instrument(f filter.EntryFilter, m *Metrics) *InstrumentedFilter {
	return &InstrumentedFilter{inner: f, m: m}
}

// Name returns the wrapped filter's name.
func (f *InstrumentedFilter) Name() string {
	return f.inner.Name()
}

// Filter runs the wrapped filter and records its activity.
func (f *InstrumentedFilter) Filter(entries ledger.Entries) ledger.Entries {
	start := time.Now()
	kept := f.inner.Filter(entries)
	name := f.inner.Name()

	f.m.EntriesProcessed.WithLabelValues(name).Add(float64(len(entries)))
	f.m.EntriesKept.WithLabelValues(name).Add(float64(len(kept)))
	f.m.EntriesDropped.WithLabelValues(name).Add(float64(len(entries) - len(kept)))
	f.m.FilterDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())

	return kept
}
