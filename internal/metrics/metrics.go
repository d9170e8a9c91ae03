// Package metrics collects and exposes Prometheus metrics for the portal.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Auth event names recorded by RecordAuthEvent
const (
	EventSignup               = "signup"
	EventLogin                = "login"
	EventLogout               = "logout"
	EventChangePassword       = "change_password"
	EventRegistrationPassword = "registration_change_password"
)

// Outcomes recorded by RecordAuthEvent
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeLimited = "rate_limited"
)

// Recorder is the interface handlers and middleware record through
type Recorder interface {
	ObserveRequest(method, route string, status int, duration time.Duration)
	RecordAuthEvent(event, outcome string)
}

// Collector records HTTP and authentication metrics
type Collector struct {
	requests   *prometheus.CounterVec
	latency    *prometheus.HistogramVec
	authEvents *prometheus.CounterVec
}

// NewCollector creates a Collector and registers its metrics with reg
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by method, route and status code",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		authEvents: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "auth_events_total",
			Help: "Authentication events by event and outcome",
		}, []string{"event", "outcome"}),
	}

	reg.MustRegister(c.requests, c.latency, c.authEvents)
	return c
}

// ObserveRequest records one completed HTTP request
func (c *Collector) ObserveRequest(method, route string, status int, duration time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordAuthEvent counts a signup, login or password change attempt
func (c *Collector) RecordAuthEvent(event, outcome string) {
	c.authEvents.WithLabelValues(event, outcome).Inc()
}

// Handler returns the Prometheus scrape handler for gatherer
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Nop discards everything. Used when metrics are not wired, e.g. in tests.
type Nop struct{}

// ObserveRequest implements Recorder
func (Nop) ObserveRequest(string, string, int, time.Duration) {}

// RecordAuthEvent implements Recorder
func (Nop) RecordAuthEvent(string, string) {}
