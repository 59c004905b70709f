// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics exposes the vault's Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "confidential_vault"

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	instructions        *prometheus.CounterVec
	instructionDuration *prometheus.HistogramVec
	coprocessorCalls    *prometheus.CounterVec
	coprocessorDuration *prometheus.HistogramVec
	invocationRetries   prometheus.Counter
	vaultLamports       prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		instructions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "program",
				Name:      "instructions_total",
				Help:      "Vault instructions processed, by operation and result.",
			},
			[]string{"operation", "result"},
		),
		instructionDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "program",
				Name:      "instruction_duration_seconds",
				Help:      "Duration of vault instructions including commit.",
				Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
			},
			[]string{"operation"},
		),
		coprocessorCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "coprocessor",
				Name:      "calls_total",
				Help:      "Coprocessor round trips, by operation and result.",
			},
			[]string{"operation", "result"},
		),
		coprocessorDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "coprocessor",
				Name:      "call_duration_seconds",
				Help:      "Duration of coprocessor round trips.",
				Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
			},
			[]string{"operation"},
		),
		invocationRetries: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "ledger",
				Name:      "invocation_retries_total",
				Help:      "Invocations re-run after a retryable storage error.",
			},
		),
		vaultLamports: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "vault",
				Name:      "holding_lamports",
				Help:      "Lamports held by the vault holding account at the last sample.",
			},
		),
	}

	m.registry.MustRegister(
		m.instructions,
		m.instructionDuration,
		m.coprocessorCalls,
		m.coprocessorDuration,
		m.invocationRetries,
		m.vaultLamports,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
	return m
}

// Handler serves the registry in the Prometheus text format. Compression is
// left to the HTTP middleware.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{DisableCompression: true})
}

// Registry exposes the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// All recorders are nil-safe so components can run without metrics.

func (m *Metrics) ObserveInstruction(operation string, err error, started time.Time) {
	if m == nil {
		return
	}
	m.instructions.WithLabelValues(operation, result(err)).Inc()
	m.instructionDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) ObserveCoprocessor(operation string, err error, started time.Time) {
	if m == nil {
		return
	}
	m.coprocessorCalls.WithLabelValues(operation, result(err)).Inc()
	m.coprocessorDuration.WithLabelValues(operation).Observe(time.Since(started).Seconds())
}

func (m *Metrics) IncInvocationRetries() {
	if m == nil {
		return
	}
	m.invocationRetries.Inc()
}

func (m *Metrics) SetVaultLamports(lamports uint64) {
	if m == nil {
		return
	}
	m.vaultLamports.Set(float64(lamports))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
