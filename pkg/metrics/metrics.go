package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds order-processing metrics
type Metrics struct {
	serviceName string
	registry    *prometheus.Registry

	// Business metrics
	OrdersProcessed    *prometheus.CounterVec
	ValidationFailures prometheus.Counter
	StockShortfalls    *prometheus.CounterVec
	StockReservations  *prometheus.CounterVec
}

// Config holds metrics configuration
type Config struct {
	ServiceName string
	Namespace   string
}

// DefaultConfig returns default metrics configuration
func DefaultConfig(serviceName string) *Config {
	return &Config{
		ServiceName: serviceName,
		Namespace:   "orderproc",
	}
}

// New creates a new Metrics instance with its own registry
func New(config *Config) *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		serviceName: config.ServiceName,
		registry:    registry,
	}

	m.OrdersProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "orders_processed_total",
			Help:      "Total number of orders run through the processing pipeline",
		},
		[]string{"service", "status"},
	)

	m.ValidationFailures = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Name:        "order_validation_failures_total",
			Help:        "Total number of orders rejected by validation",
			ConstLabels: prometheus.Labels{"service": config.ServiceName},
		},
	)

	m.StockShortfalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "stock_shortfalls_total",
			Help:      "Total number of reservations requested above available stock",
		},
		[]string{"service", "sku"},
	)

	m.StockReservations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "stock_reservations_total",
			Help:      "Total number of stock reservations",
		},
		[]string{"service", "sku"},
	)

	registry.MustRegister(
		m.OrdersProcessed,
		m.ValidationFailures,
		m.StockShortfalls,
		m.StockReservations,
	)

	return m
}

// RecordOrderProcessed records a completed pipeline run
func (m *Metrics) RecordOrderProcessed() {
	m.OrdersProcessed.WithLabelValues(m.serviceName, "success").Inc()
}

// RecordOrderRejected records a pipeline run stopped by validation
func (m *Metrics) RecordOrderRejected() {
	m.OrdersProcessed.WithLabelValues(m.serviceName, "rejected").Inc()
	m.ValidationFailures.Inc()
}

// RecordStockShortfall records a reservation request above available stock
func (m *Metrics) RecordStockShortfall(sku string) {
	m.StockShortfalls.WithLabelValues(m.serviceName, sku).Inc()
}

// RecordStockReservation records a stock reservation
func (m *Metrics) RecordStockReservation(sku string) {
	m.StockReservations.WithLabelValues(m.serviceName, sku).Inc()
}

// Handler returns an HTTP handler for the metrics endpoint
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying prometheus registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
