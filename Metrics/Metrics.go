// Package Metrics holds the counters of a single gridstat run and pushes them
// to a Prometheus push gateway once the run is over.
package Metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"gopkg.in/op/go-logging.v1"
)

var log = logging.MustGetLogger("Metrics")

const (
	namespace = "gridstat"
	job       = "gridstat"
)

var registry = prometheus.NewRegistry()

func newCounter(subsystem, name, help string) prometheus.Counter {
	c := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      name,
		Help:      help,
	})
	registry.MustRegister(c)
	return c
}

var (
	Lines      = newCounter("ingest", "lines_total", "Number of input lines read")
	Malformed  = newCounter("ingest", "malformed_total", "Number of input lines skipped because they aren't station records")
	Filtered   = newCounter("ingest", "filtered_total", "Number of station records rejected by the filter")
	Duplicates = newCounter("ingest", "duplicates_total", "Number of station records ignored because their identifier was already indexed")
	Indexed    = newCounter("ingest", "indexed_total", "Number of station records indexed")
	Skipped    = newCounter("report", "skipped_total", "Number of reports skipped because the index was too large")
)

// Push performs a single push of all counters to the push gateway at url.
func Push(url string, timeout time.Duration) error {
	if family, err := registry.Gather(); err == nil {
		for _, fam := range family {
			for _, metric := range fam.Metric {
				if metric.Counter != nil {
					log.Debug("Metric recorded: %s: %0.0f", fam.GetName(), metric.Counter.GetValue())
				}
			}
		}
	}
	return push.New(url, job).
		Client(&http.Client{Timeout: timeout}).
		Gatherer(registry).
		Push()
}
