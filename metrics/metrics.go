package metrics

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RouteFetchesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "directions",
		Subsystem: "provider",
		Name:      "route_fetches_total",
		Help:      "Route requests by provider and outcome",
	}, []string{"provider", "outcome"})

	RouteFetchDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "directions",
		Subsystem: "provider",
		Name:      "route_fetch_duration_seconds",
		Help:      "Route request latency in seconds",
		Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"provider"})

	InstructionsPublished = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "directions",
		Subsystem: "state",
		Name:      "instructions",
		Help:      "Number of instructions in the directions list",
	})
)

// ObserveFetch records one route request. err nil means success.
func ObserveFetch(provider string, elapsed time.Duration, instructions int, err error) {
	outcome := "ok"
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		outcome = "timeout"
	case err != nil:
		outcome = "error"
	}
	RouteFetchesTotal.WithLabelValues(provider, outcome).Inc()
	RouteFetchDuration.WithLabelValues(provider).Observe(elapsed.Seconds())
	if err == nil {
		InstructionsPublished.Set(float64(instructions))
	}
}

// Serve exposes /metrics on addr until ctx is done.
func Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	slog.Info("metrics listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
