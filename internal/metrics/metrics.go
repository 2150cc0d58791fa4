package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DirtyRaccoon97/Sistema-de-Inventario-para-el-Hogar/internal/domain"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "homeinventory"

// Recipe request outcomes
const (
	RecipeOutcomeSuccess   = "success"
	RecipeOutcomeFailure   = "failure"
	RecipeOutcomeCancelled = "cancelled"
	RecipeOutcomeDisabled  = "disabled"
)

// Metrics holds the service collectors on a dedicated registry
type Metrics struct {
	registry        *prometheus.Registry
	movements       *prometheus.CounterVec
	quantityChanged *prometheus.CounterVec
	alerts          *prometheus.GaugeVec
	recipeRequests  *prometheus.CounterVec
	recipeDuration  prometheus.Histogram
	httpDuration    *prometheus.HistogramVec
}

// New creates and registers all collectors
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		movements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "movements_total",
				Help:      "Movements recorded in the ledger",
			},
			[]string{"type"},
		),
		quantityChanged: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "quantity_changed_total",
				Help:      "Sum of quantity changes recorded in the ledger",
			},
			[]string{"type"},
		),
		alerts: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "alerts",
				Help:      "Items currently raising an alert",
			},
			[]string{"kind"},
		),
		recipeRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "recipe_requests_total",
				Help:      "Recipe suggestion requests by outcome",
			},
			[]string{"outcome"},
		),
		recipeDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "recipe_request_duration_seconds",
				Help:      "Time spent waiting for recipe suggestions",
				Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
			},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route", "status"},
		),
	}

	m.registry.MustRegister(
		m.movements,
		m.quantityChanged,
		m.alerts,
		m.recipeRequests,
		m.recipeDuration,
		m.httpDuration,
		collectors.NewGoCollector(),
	)
	return m
}

// ObserveMovement counts a ledger entry
func (m *Metrics) ObserveMovement(movement domain.Movement) {
	m.movements.WithLabelValues(string(movement.Type)).Inc()
	m.quantityChanged.WithLabelValues(string(movement.Type)).Add(float64(movement.QuantityChange))
}

// SetAlerts records the latest alert evaluation
func (m *Metrics) SetAlerts(outOfStock, expired int) {
	m.alerts.WithLabelValues("out_of_stock").Set(float64(outOfStock))
	m.alerts.WithLabelValues("expired").Set(float64(expired))
}

// ObserveRecipeRequest records one suggestion request
func (m *Metrics) ObserveRecipeRequest(outcome string, elapsed time.Duration) {
	m.recipeRequests.WithLabelValues(outcome).Inc()
	if outcome != RecipeOutcomeDisabled {
		m.recipeDuration.Observe(elapsed.Seconds())
	}
}

// ObserveHTTPRequest records the latency of a served request
func (m *Metrics) ObserveHTTPRequest(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
