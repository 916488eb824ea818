// Package metrics exports gameplay counters to Prometheus. The Collector
// implements game.Observer so a Manager reports into it directly.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/skydive/internal/game"
	"github.com/vovakirdan/skydive/internal/systems"
)

const namespace = "skydive"

// Collector owns a private registry so several collectors can coexist in
// one process (tests, multiple servers).
type Collector struct {
	registry *prometheus.Registry

	spawned    *prometheus.CounterVec
	collisions *prometheus.CounterVec
	runs       *prometheus.CounterVec
	scores     *prometheus.HistogramVec
	durations  *prometheus.HistogramVec
	sessions   prometheus.Gauge
}

// NewCollector creates and registers every metric.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		spawned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entities_spawned_total",
			Help:      "Entities spawned, by level and kind.",
		}, []string{"level", "kind"}),
		collisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "collisions_total",
			Help:      "Player contacts with obstacles and collectibles, by level and kind.",
		}, []string{"level", "kind"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_finished_total",
			Help:      "Runs that ended in a lethal collision.",
		}, []string{"level"}),
		scores: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_score",
			Help:      "Final score per run.",
			Buckets:   prometheus.ExponentialBuckets(10, 2, 10),
		}, []string{"level"}),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Simulated time survived per run.",
			Buckets:   prometheus.ExponentialBuckets(5, 2, 8),
		}, []string{"level"}),
		sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Sessions currently connected.",
		}),
	}

	c.registry.MustRegister(c.spawned, c.collisions, c.runs, c.scores, c.durations, c.sessions)
	return c
}

// EntitySpawned implements game.Observer.
func (c *Collector) EntitySpawned(level string, kind game.Kind) {
	c.spawned.WithLabelValues(level, kind.String()).Inc()
}

// Collided implements game.Observer.
func (c *Collector) Collided(level string, kind game.Kind) {
	c.collisions.WithLabelValues(level, kind.String()).Inc()
}

// RunEnded implements game.Observer.
func (c *Collector) RunEnded(level string, summary systems.RunSummary, seconds float32) {
	c.runs.WithLabelValues(level).Inc()
	c.scores.WithLabelValues(level).Observe(float64(summary.Score))
	c.durations.WithLabelValues(level).Observe(float64(seconds))
}

// SessionStarted counts a connected session.
func (c *Collector) SessionStarted() {
	c.sessions.Inc()
}

// SessionEnded uncounts a connected session.
func (c *Collector) SessionEnded() {
	c.sessions.Dec()
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler returns the /metrics HTTP handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (c *Collector) Serve(ctx context.Context, addr string, logger *log.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Serving metrics", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

var _ game.Observer = (*Collector)(nil)
