/*
Package metrics holds the prometheus collectors updated by sampling
runs. They are registered on the default registry.
*/
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SamplesDrawn counts the samples drawn, labeled by algorithm
	SamplesDrawn = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bayesnet_samples_drawn_total",
			Help: "Total number of samples drawn from networks",
		},
		[]string{"algorithm"},
	)

	// SamplesRejected counts the samples discarded for contradicting
	// the evidence, labeled by algorithm
	SamplesRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bayesnet_samples_rejected_total",
			Help: "Total number of samples discarded for contradicting the evidence",
		},
		[]string{"algorithm"},
	)

	// InferenceDuration measures how long inference runs take
	InferenceDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bayesnet_inference_duration_seconds",
			Help:    "Duration of inference runs in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10, 60},
		},
		[]string{"algorithm"},
	)
)

// WriteToTextfile writes the metrics of the default registry onto the
// file at the given path in the prometheus text format.
func WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, prometheus.DefaultGatherer)
}
