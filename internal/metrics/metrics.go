package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry          *prometheus.Registry
	refreshes         *prometheus.CounterVec
	refreshDuration   prometheus.Histogram
	lastRefresh       prometheus.Gauge
	teams             prometheus.Gauge
	unresolvedPlayers prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		refreshes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "playoffpool",
			Name:      "refreshes_total",
			Help:      "Board refreshes by result.",
		}, []string{"result"}),
		refreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "playoffpool",
			Name:      "refresh_duration_seconds",
			Help:      "Time spent fetching stats and recomputing the board.",
			Buckets:   prometheus.ExponentialBuckets(0.25, 2, 8),
		}),
		lastRefresh: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "playoffpool",
			Name:      "last_refresh_timestamp_seconds",
			Help:      "Unix time of the last successful refresh.",
		}),
		teams: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "playoffpool",
			Name:      "teams",
			Help:      "Teams on the current board.",
		}),
		unresolvedPlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "playoffpool",
			Name:      "unresolved_players",
			Help:      "Roster picks that did not match the player directory.",
		}),
	}

	m.registry.MustRegister(m.refreshes, m.refreshDuration, m.lastRefresh, m.teams, m.unresolvedPlayers)
	return m
}

// ObserveRefresh records one refresh attempt.
func (m *Metrics) ObserveRefresh(started time.Time, err error) {
	m.refreshDuration.Observe(time.Since(started).Seconds())
	if err != nil {
		m.refreshes.WithLabelValues("error").Inc()
		return
	}
	m.refreshes.WithLabelValues("ok").Inc()
	m.lastRefresh.SetToCurrentTime()
}

func (m *Metrics) SetBoardSize(teams, unresolved int) {
	m.teams.Set(float64(teams))
	m.unresolvedPlayers.Set(float64(unresolved))
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
