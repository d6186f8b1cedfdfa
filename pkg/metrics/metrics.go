// Package metrics exposes Prometheus instrumentation for the API.
//
// Standard Go runtime and process metrics come with prometheus/client_golang;
// the counters below track request traffic and auth outcomes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPRequests counts HTTP requests by method, path template and status code.
var HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamhub_http_requests_total",
	Help: "Total HTTP requests handled.",
}, []string{"method", "path", "status"})

// AuthEvents counts auth events (login, register, verify) by outcome.
var AuthEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamhub_auth_events_total",
	Help: "Auth events by type and result.",
}, []string{"event", "result"})

// WatchEvents counts recorded watch-history writes by content type.
var WatchEvents = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "streamhub_watch_events_total",
	Help: "Watch history writes by content type.",
}, []string{"content"})

// Handler returns the Prometheus scrape endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
