// Package metrics holds the Prometheus collectors of the backend.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var collectors = []prometheus.Collector{
	RequestCount,
	RequestDuration,
	forecastDuration,
	forecastDays,
	distributionDuration,
	refreshRuns,
}

// Register registers all collectors with the default registry.
func Register() error {
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			return fmt.Errorf("could not register %s with Prometheus: %w", c, err)
		}
	}

	return nil
}

// Unregister removes all collectors from the default registry.
//
// This is needed to register them again, e.g. when a new router is
// created in tests.
func Unregister() bool {
	ok := true
	for _, c := range collectors {
		if !prometheus.Unregister(c) {
			ok = false
		}
	}

	return ok
}

var RequestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "requests_total",
		Help: "How many HTTP requests processed, partitioned by status code and HTTP method.",
	},
	[]string{"code", "method", "url"},
)

var RequestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name: "request_duration_seconds",
		Help: "The HTTP request latencies in seconds.",
	},
	[]string{"code", "method", "url"},
)

var forecastDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "forecast_duration_seconds",
		Help:    "Duration of forecast simulations in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	},
)

var forecastDays = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "forecast_simulated_days_total",
		Help: "Number of days simulated by all forecasts.",
	},
)

var distributionDuration = prometheus.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "distribution_duration_seconds",
		Help:    "Duration of period distribution calculations in seconds.",
		Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
	},
)

var refreshRuns = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "forecast_refresh_runs_total",
		Help: "Runs of the scheduled forecast refresh, partitioned by result.",
	},
	[]string{"result"},
)

// ObserveForecast records a forecast run.
func ObserveForecast(elapsed time.Duration, days int) {
	forecastDuration.Observe(elapsed.Seconds())
	forecastDays.Add(float64(days))
}

// ObserveDistribution records a distribution calculation.
func ObserveDistribution(elapsed time.Duration) {
	distributionDuration.Observe(elapsed.Seconds())
}

// ObserveRefresh records a run of the forecast refresh job.
func ObserveRefresh(err error) {
	result := "success"
	if err != nil {
		result = "error"
	}

	refreshRuns.WithLabelValues(result).Inc()
}
