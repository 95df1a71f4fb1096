// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics holds the Prometheus collectors of the gateway.
//
// All recording methods are safe on a nil *Metrics, so components may be
// constructed without metrics in tests.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Metrics holds all Prometheus metrics for the gateway.
type Metrics struct {
	// HTTP metrics
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// Image pipeline metrics
	transformsTotal   *prometheus.CounterVec
	transformDuration prometheus.Histogram

	// Artifact lifecycle metrics
	artifactsRemoved *prometheus.CounterVec
	artifactsSwept   prometheus.Counter

	registry *prometheus.Registry
}

// New creates a metrics instance with its own registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "image_filter_http_requests_total",
				Help: "Total number of HTTP requests by method, route and status code",
			},
			[]string{"method", "route", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "image_filter_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
		transformsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "image_filter_transforms_total",
				Help: "Total number of image acquisitions and transformations by result",
			},
			[]string{"result"},
		),
		transformDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "image_filter_transform_duration_seconds",
				Help:    "Latency of fetching, filtering and persisting one image",
				Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 30},
			},
		),
		artifactsRemoved: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "image_filter_artifacts_removed_total",
				Help: "Total number of artifact removal attempts by result",
			},
			[]string{"result"},
		),
		artifactsSwept: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "image_filter_artifacts_swept_total",
				Help: "Total number of orphaned artifacts removed by the sweeper",
			},
		),
		registry: registry,
	}

	registry.MustRegister(
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.transformsTotal,
		m.transformDuration,
		m.artifactsRemoved,
		m.artifactsSwept,
	)

	return m
}

// RecordHTTPRequest records one served HTTP request.
func (m *Metrics) RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordTransform records one acquisition and transformation attempt.
func (m *Metrics) RecordTransform(err error, duration time.Duration) {
	if m == nil {
		return
	}
	result := ResultSuccess
	if err != nil {
		result = ResultFailure
	}
	m.transformsTotal.WithLabelValues(result).Inc()
	m.transformDuration.Observe(duration.Seconds())
}

// RecordArtifactRemoval records the outcome of artifact removals.
func (m *Metrics) RecordArtifactRemoval(removed, failed int) {
	if m == nil {
		return
	}
	m.artifactsRemoved.WithLabelValues(ResultSuccess).Add(float64(removed))
	m.artifactsRemoved.WithLabelValues(ResultFailure).Add(float64(failed))
}

// RecordSweep records artifacts removed by the background sweeper.
func (m *Metrics) RecordSweep(removed int) {
	if m == nil {
		return
	}
	m.artifactsSwept.Add(float64(removed))
}

// Handler returns the Prometheus exposition handler for the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
