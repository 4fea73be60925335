package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	BookingResultBooked   = "booked"
	BookingResultConflict = "conflict"
	BookingResultNotFound = "not_found"
	BookingResultError    = "error"
)

// Collector owns its own registry so several instances can coexist.
type Collector struct {
	registry            *prometheus.Registry
	serviceName         string
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	bookingsTotal       *prometheus.CounterVec
	slotsGeneratedTotal prometheus.Counter
}

func NewCollector(serviceName string) *Collector {
	c := &Collector{
		registry:    prometheus.NewRegistry(),
		serviceName: serviceName,
		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status_code", "service"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "endpoint", "service"},
		),
		bookingsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "appointment_bookings_total",
				Help: "Total number of booking attempts by result",
			},
			[]string{"result", "service"},
		),
		slotsGeneratedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "schedule_slots_generated_total",
				Help: "Total number of schedule slots created",
			},
		),
	}

	c.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		c.httpRequestsTotal,
		c.httpRequestDuration,
		c.bookingsTotal,
		c.slotsGeneratedTotal,
	)
	return c
}

func (c *Collector) ObserveBooking(result string) {
	c.bookingsTotal.WithLabelValues(result, c.serviceName).Inc()
}

func (c *Collector) AddGeneratedSlots(count int) {
	if count <= 0 {
		return
	}
	c.slotsGeneratedTotal.Add(float64(count))
}

func (c *Collector) RecordHTTPRequest(method, endpoint, statusCode string, duration time.Duration) {
	c.httpRequestsTotal.WithLabelValues(method, endpoint, statusCode, c.serviceName).Inc()
	c.httpRequestDuration.WithLabelValues(method, endpoint, c.serviceName).Observe(duration.Seconds())
}

func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// HTTPMiddleware labels requests by their chi route pattern so path
// parameters do not explode cardinality.
func (c *Collector) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapper := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapper, r)

		endpoint := r.URL.Path
		if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
			if pattern := routeCtx.RoutePattern(); pattern != "" {
				endpoint = pattern
			}
		}
		c.RecordHTTPRequest(r.Method, endpoint, strconv.Itoa(wrapper.statusCode), time.Since(start))
	})
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
