// Package metrics holds the Prometheus collectors exported on /metrics.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics groups the collectors for RPC traffic and screen lifetime.
type Metrics struct {
	RPCTotal     *prometheus.CounterVec
	RPCDuration  *prometheus.HistogramVec
	Calculations *prometheus.CounterVec
	ScreensOpen  prometheus.Gauge
}

// New creates and registers the collectors. A nil registerer means
// prometheus.DefaultRegisterer. Registering twice reuses the existing collectors.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		RPCTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "Total number of RPCs handled, by procedure and Connect code.",
		}, []string{"procedure", "code"}),
		RPCDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rpc_duration_ms",
			Help:      "RPC latency distribution in milliseconds.",
			Buckets:   []float64{0.5, 1, 2.5, 5, 10, 25, 50, 100, 250},
		}, []string{"procedure"}),
		Calculations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "split_calculations_total",
			Help:      "Count of split calculations by tip percentage.",
		}, []string{"tip"}),
		ScreensOpen: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "screens_open",
			Help:      "Current number of live screens.",
		}),
	}

	m.RPCTotal = register(reg, m.RPCTotal)
	m.RPCDuration = register(reg, m.RPCDuration)
	m.Calculations = register(reg, m.Calculations)
	m.ScreensOpen = register(reg, m.ScreensOpen)
	return m
}

// ObserveRPC records one finished RPC.
func (m *Metrics) ObserveRPC(procedure, code string, d time.Duration) {
	if m == nil {
		return
	}
	m.RPCTotal.WithLabelValues(procedure, code).Inc()
	m.RPCDuration.WithLabelValues(procedure).Observe(float64(d) / float64(time.Millisecond))
}

// ObserveCalculation records one split computed with the given tip.
func (m *Metrics) ObserveCalculation(tip int) {
	if m == nil {
		return
	}
	m.Calculations.WithLabelValues(fmt.Sprint(tip)).Inc()
}

// ScreenOpened and ScreensClosed track the live screen gauge.
func (m *Metrics) ScreenOpened() {
	if m == nil {
		return
	}
	m.ScreensOpen.Inc()
}

func (m *Metrics) ScreensClosed(n int) {
	if m == nil {
		return
	}
	m.ScreensOpen.Sub(float64(n))
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) C {
	if err := reg.Register(c); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing
			}
		}
		panic(fmt.Errorf("register collector: %w", err))
	}
	return c
}
