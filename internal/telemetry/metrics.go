package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CartMetrics holds Prometheus metrics for cart-level observability. The
// aggregate itself stays I/O-free; the driver records outcomes here after
// each command returns.
type CartMetrics struct {
	// Command outcomes
	CommandsTotal *prometheus.CounterVec
	CommandErrors *prometheus.CounterVec

	// Event flow
	EventsRaised    *prometheus.CounterVec
	EventsPublished *prometheus.CounterVec

	// Checkout
	CheckoutValue     prometheus.Histogram
	CheckoutItemCount prometheus.Histogram
}

// NewCartMetrics creates and registers all cart metrics.
func NewCartMetrics(namespace string) *CartMetrics {
	if namespace == "" {
		namespace = "vagn"
	}

	subsystem := "cart"

	return &CartMetrics{
		CommandsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "commands_total",
				Help:      "Total cart commands by outcome",
			},
			[]string{"command", "outcome"}, // outcome: ok, rejected
		),
		CommandErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "command_errors_total",
				Help:      "Total rejected cart commands by violated rule",
			},
			[]string{"command", "code"},
		),
		EventsRaised: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "events_raised_total",
				Help:      "Total domain events raised",
			},
			[]string{"event_type"},
		),
		EventsPublished: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "events_published_total",
				Help:      "Total domain events handed to the publisher",
			},
			[]string{"event_type"},
		),
		CheckoutValue: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_value",
				Help:      "Cart total at checkout",
				Buckets:   []float64{10, 25, 50, 100, 250, 500, 1000, 5000, 10000},
			},
		),
		CheckoutItemCount: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "checkout_item_count",
				Help:      "Number of line items at checkout",
				Buckets:   []float64{1, 2, 3, 5, 10, 20, 50},
			},
		),
	}
}

// Global instance for easy access from the driver
var Cart *CartMetrics

// InitCartMetrics initializes the global cart metrics instance
func InitCartMetrics(namespace string) *CartMetrics {
	Cart = NewCartMetrics(namespace)
	return Cart
}
