// Package metrics exports htable statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theflywheel/htable"
)

// StatsSource is anything that can report table statistics. A plain Table
// satisfies it, but only Locked is safe to scrape from another goroutine.
type StatsSource interface {
	Stats() htable.Stats
}

// Collector implements prometheus.Collector for a single named table
type Collector struct {
	src StatsSource

	entries    *prometheus.Desc
	capacity   *prometheus.Desc
	tombstones *prometheus.Desc
	resizes    *prometheus.Desc
}

// NewCollector returns a collector whose series carry the label table=name
func NewCollector(name string, src StatsSource) *Collector {
	labels := prometheus.Labels{"table": name}
	return &Collector{
		src: src,
		entries: prometheus.NewDesc("htable_entries",
			"Number of live entries in the table.", nil, labels),
		capacity: prometheus.NewDesc("htable_capacity",
			"Number of buckets in the table.", nil, labels),
		tombstones: prometheus.NewDesc("htable_tombstones",
			"Number of removed buckets awaiting reclamation.", nil, labels),
		resizes: prometheus.NewDesc("htable_resizes_total",
			"Number of times the table has doubled.", nil, labels),
	}
}

// Describe sends the descriptors of every series the collector emits
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.entries
	ch <- c.capacity
	ch <- c.tombstones
	ch <- c.resizes
}

// Collect reads the source's stats once and sends one sample per series
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	s := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(s.Len))
	ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(s.Cap))
	ch <- prometheus.MustNewConstMetric(c.tombstones, prometheus.GaugeValue, float64(s.Tombstones))
	ch <- prometheus.MustNewConstMetric(c.resizes, prometheus.CounterValue, float64(s.Resizes))
}
