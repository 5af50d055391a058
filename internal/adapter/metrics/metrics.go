// Package metrics exposes lottery activity to Prometheus.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"weekly-lottery/internal/core/domain"
	"weekly-lottery/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "weekly_lottery"

var _ ports.MetricsRecorder = (*Recorder)(nil)

// Recorder implements ports.MetricsRecorder on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	entries      *prometheus.CounterVec
	entryAmount  *prometheus.CounterVec
	rejections   *prometheus.CounterVec
	poolTotal    *prometheus.GaugeVec
	poolSize     *prometheus.GaugeVec
	draws        *prometheus.CounterVec
	prizes       *prometheus.CounterVec
	rewards      *prometheus.CounterVec
	saves        *prometheus.CounterVec
	saveDuration prometheus.Histogram
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewRecorder creates a recorder with Go and process collectors registered.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		entries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entries",
			Name:      "accepted_total",
			Help:      "Total number of accepted lottery entries.",
		}, []string{"currency"}),
		entryAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entries",
			Name:      "amount_total",
			Help:      "Total amount entered into lottery pools.",
		}, []string{"currency"}),
		rejections: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "entries",
			Name:      "rejected_total",
			Help:      "Total number of rejected lottery entries.",
		}, []string{"currency", "reason"}),
		poolTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "total",
			Help:      "Current size of the open pool.",
		}, []string{"currency"}),
		poolSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pool",
			Name:      "participants",
			Help:      "Distinct participants in the open pool.",
		}, []string{"currency"}),
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "drawings",
			Name:      "total",
			Help:      "Drawings by currency and outcome.",
		}, []string{"currency", "status"}),
		prizes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "drawings",
			Name:      "prize_total",
			Help:      "Total prize amount drawn.",
		}, []string{"currency"}),
		rewards: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "rewards",
			Name:      "delivered_total",
			Help:      "Pending rewards delivered on connect.",
		}, []string{"currency"}),
		saves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "persistence",
			Name:      "saves_total",
			Help:      "State saves by result.",
		}, []string{"result"}),
		saveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "persistence",
			Name:      "save_duration_seconds",
			Help:      "Duration of state saves including retries.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		}, []string{"method", "path", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		}, []string{"method", "path"}),
	}

	r.registry.MustRegister(
		r.entries, r.entryAmount, r.rejections,
		r.poolTotal, r.poolSize,
		r.draws, r.prizes, r.rewards,
		r.saves, r.saveDuration,
		r.httpRequests, r.httpDuration,
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)
	return r
}

// Registry returns the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler exposes the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}

func (r *Recorder) EntryAccepted(currency string, amount int64) {
	r.entries.WithLabelValues(currency).Inc()
	r.entryAmount.WithLabelValues(currency).Add(float64(amount))
}

func (r *Recorder) EntryRejected(currency string, reason string) {
	r.rejections.WithLabelValues(currency, reason).Inc()
}

func (r *Recorder) PoolChanged(currency string, total int64, participants int) {
	r.poolTotal.WithLabelValues(currency).Set(float64(total))
	r.poolSize.WithLabelValues(currency).Set(float64(participants))
}

func (r *Recorder) DrawCompleted(currency string, status domain.DrawStatus, prize int64) {
	r.draws.WithLabelValues(currency, string(status)).Inc()
	if prize > 0 {
		r.prizes.WithLabelValues(currency).Add(float64(prize))
	}
}

func (r *Recorder) RewardsDelivered(currency string, count int) {
	r.rewards.WithLabelValues(currency).Add(float64(count))
}

func (r *Recorder) SaveCompleted(err error, took time.Duration) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	r.saves.WithLabelValues(result).Inc()
	r.saveDuration.Observe(took.Seconds())
}

// GinMiddleware records request counts and latency by route template.
func (r *Recorder) GinMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.URL.Path == "/metrics" {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		method := c.Request.Method
		r.httpRequests.WithLabelValues(method, path, strconv.Itoa(c.Writer.Status())).Inc()
		r.httpDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
