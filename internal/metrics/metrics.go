package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Pages rendered, by section and theme
	PageRenders = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_page_renders_total",
			Help: "Total number of page and fragment renders",
		},
		[]string{"section", "theme", "kind"}, // kind: page, fragment
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12), // 0.5ms to ~1s
		},
		[]string{"method", "path", "status"},
	)

	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_contact_submissions_total",
			Help: "Contact form submissions handed to the relay",
		},
		[]string{"status"}, // status: sent, failed, invalid
	)

	ContentReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_content_reloads_total",
			Help: "Content file reloads",
		},
		[]string{"status"}, // status: success, failed
	)
)

// RecordPageRender counts one rendered page or fragment.
func RecordPageRender(section, theme, kind string) {
	PageRenders.WithLabelValues(section, theme, kind).Inc()
}

// RecordHTTPRequestDuration records the latency of one request.
func RecordHTTPRequestDuration(method, path, status string, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

func IncrementContactSubmission(status string) {
	ContactSubmissions.WithLabelValues(status).Inc()
}

func IncrementContentReload(status string) {
	ContentReloads.WithLabelValues(status).Inc()
}
