package metrics

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	registry *prometheus.Registry

	// HTTP
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Domain
	AuthAttempts      *prometheus.CounterVec
	ReceiptsGenerated prometheus.Counter
	ReceiptsSent      prometheus.Counter
	LeasesCreated     prometheus.Counter
}

// New creates the metrics on a private registry so several servers can
// coexist in one process.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		prometheus.NewGoCollector(),
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quittance_http_requests_total",
				Help: "Total number of HTTP requests served",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "quittance_http_request_duration_seconds",
				Help:    "Duration of HTTP request handling",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		AuthAttempts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quittance_auth_attempts_total",
				Help: "Login and registration attempts by outcome",
			},
			[]string{"action", "result"},
		),

		ReceiptsGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "quittance_receipts_generated_total",
			Help: "Rent receipts generated",
		}),

		ReceiptsSent: factory.NewCounter(prometheus.CounterOpts{
			Name: "quittance_receipts_sent_total",
			Help: "Rent receipts dispatched by e-mail",
		}),

		LeasesCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "quittance_leases_created_total",
			Help: "Leases created",
		}),
	}
}

// Middleware records one sample per request, labelled by route pattern so
// ids do not explode cardinality.
func (m *Metrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		route := c.Route().Path
		m.RequestsTotal.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		m.RequestDuration.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
}

func (m *Metrics) AuthAttempt(action string, ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	m.AuthAttempts.WithLabelValues(action, result).Inc()
}
