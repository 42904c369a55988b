// Package metrics exposes Prometheus instruments for the dataset service.
//
// A nil *Dataset is valid and records nothing, so callers never need to
// guard instrument calls.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/mental-detox/internal/ports"
)

const namespace = "mental_detox"

// Sample outcomes recorded by ObserveSample.
const (
	OutcomeHit      = "hit"
	OutcomeNotFound = "not_found"
	OutcomeInvalid  = "invalid"
)

// Dataset holds the dataset gauges and request counters.
type Dataset struct {
	loaded     prometheus.Gauge
	records    prometheus.Gauge
	categories prometheus.Gauge
	skipped    prometheus.Gauge
	samples    *prometheus.CounterVec
}

// NewDataset creates the dataset instruments and registers them with reg.
// Pass prometheus.DefaultRegisterer to expose them on /-/metrics.
func NewDataset(reg prometheus.Registerer) (*Dataset, error) {
	d := &Dataset{
		loaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "loaded",
			Help:      "1 when the dataset file was loaded and validated, 0 otherwise.",
		}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Number of records held in memory.",
		}),
		categories: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "categories",
			Help:      "Number of distinct categories after normalization.",
		}),
		skipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "skipped_rows",
			Help:      "Rows dropped at load because their issue was blank.",
		}),
		samples: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "samples_total",
			Help:      "Sample requests by outcome.",
		}, []string{"outcome"}),
	}

	for _, c := range []prometheus.Collector{d.loaded, d.records, d.categories, d.skipped, d.samples} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// ObserveSnapshot records the shape of a loaded snapshot.
func (d *Dataset) ObserveSnapshot(snap ports.DatasetSnapshot, skipped int) {
	if d == nil || snap == nil {
		return
	}

	if !snap.Loaded() {
		d.loaded.Set(0)
		d.records.Set(0)
		d.categories.Set(0)
		d.skipped.Set(0)

		return
	}

	d.loaded.Set(1)
	d.records.Set(float64(len(snap.Records())))
	d.categories.Set(float64(snap.Index().Len()))
	d.skipped.Set(float64(skipped))
}

// ObserveSample counts one sample request with the given outcome.
func (d *Dataset) ObserveSample(outcome string) {
	if d == nil {
		return
	}

	d.samples.WithLabelValues(outcome).Inc()
}
