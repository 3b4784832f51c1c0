// Package metrics exposes Prometheus instruments for HTTP traffic and marketplace events.
package metrics

import (
	"context"
	"database/sql"
	"net/http"
	"strconv"
	"time"

	domainerrors "comerciaya/internal/domain/errors"
	"comerciaya/internal/domain/service"
	"comerciaya/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns a private registry so tests can create independent instances.
type Metrics struct {
	registry *prometheus.Registry
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
	events   *prometheus.CounterVec
}

// New registers the service collectors plus the Go runtime and process collectors.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests processed",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		events: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "marketplace_events_total",
			Help: "Marketplace events by type and publish outcome",
		}, []string{"type", "outcome"}),
	}

	registry.MustRegister(
		m.requests,
		m.latency,
		m.events,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// RegisterDBStats exports connection pool statistics of db labelled with name.
func (m *Metrics) RegisterDBStats(db *sql.DB, name string) error {
	return errors.WithStack(m.registry.Register(collectors.NewDBStatsCollector(db, name)))
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records count and latency per route template.
func (m *Metrics) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		method := c.Request().Method

		m.requests.WithLabelValues(method, route, strconv.Itoa(statusOf(c, err))).Inc()
		m.latency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

// statusOf predicts the status the error handler will write for err.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}

// InstrumentPublisher counts every published event by outcome.
func (m *Metrics) InstrumentPublisher(publisher service.EventPublisher) service.EventPublisher {
	return &instrumentedPublisher{next: publisher, events: m.events}
}

type instrumentedPublisher struct {
	next   service.EventPublisher
	events *prometheus.CounterVec
}

func (p *instrumentedPublisher) PublishMarketplaceEvent(ctx context.Context, event *service.MarketplaceEvent) error {
	err := p.next.PublishMarketplaceEvent(ctx, event)

	outcome := "published"
	if err != nil {
		outcome = "failed"
	}
	p.events.WithLabelValues(event.Type, outcome).Inc()

	return err
}

func (p *instrumentedPublisher) Close() error {
	return p.next.Close()
}
