package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Registry struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPLatency  *prometheus.HistogramVec

	OrdersPlaced         prometheus.Counter
	OrdersFailed         prometheus.Counter
	NotificationFailures *prometheus.CounterVec
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "farmhub_http_requests_total",
	}, []string{"route", "method", "status"})
	httpLatency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "farmhub_http_request_duration_seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"route", "method"})

	ordersPlaced := prometheus.NewCounter(prometheus.CounterOpts{Name: "farmhub_orders_placed_total"})
	ordersFailed := prometheus.NewCounter(prometheus.CounterOpts{Name: "farmhub_orders_append_failed_total"})
	notificationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "farmhub_notification_failures_total",
	}, []string{"channel"})

	r.MustRegister(httpRequests, httpLatency, ordersPlaced, ordersFailed, notificationFailures)
	return &Registry{
		reg:                  r,
		HTTPRequests:         httpRequests,
		HTTPLatency:          httpLatency,
		OrdersPlaced:         ordersPlaced,
		OrdersFailed:         ordersFailed,
		NotificationFailures: notificationFailures,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }

// ObserveRequest records one served HTTP request.
func (r *Registry) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	r.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	r.HTTPLatency.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// The methods below satisfy the order service Recorder.

func (r *Registry) OrderPlaced() { r.OrdersPlaced.Inc() }

func (r *Registry) OrderFailed() { r.OrdersFailed.Inc() }

func (r *Registry) NotificationFailed(channel string) {
	r.NotificationFailures.WithLabelValues(channel).Inc()
}
