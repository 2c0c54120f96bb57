// Package metrics exposes pipeline counters and the Prometheus endpoint.
package metrics

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// MessagesReceived counts raw log messages fetched, per partition.
	MessagesReceived = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_messages_received_total",
		Help: "Total change messages fetched from the log",
	}, []string{"partition"})

	// DecodeErrors counts malformed messages skipped.
	DecodeErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_decode_errors_total",
		Help: "Total malformed change messages skipped",
	}, []string{"partition"})

	// TransformErrors counts events dropped by the transformation engine.
	TransformErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_transform_errors_total",
		Help: "Total change events dropped during transformation",
	}, []string{"partition"})

	// ValidationFailures counts entities excluded by blocking violations.
	ValidationFailures = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_validation_failures_total",
		Help: "Total entity deltas excluded by blocking validation failures",
	}, []string{"partition", "stage"})

	// QualityIssues counts soft data-quality findings (committed anyway).
	QualityIssues = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_quality_issues_total",
		Help: "Total soft data-quality findings",
	}, []string{"partition"})

	// CommitsTotal counts successful version commits.
	CommitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_commits_total",
		Help: "Total successful version commits",
	}, []string{"partition"})

	// CommitRetries counts failed commit attempts that were retried.
	CommitRetries = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_commit_retries_total",
		Help: "Total commit attempts that failed and were retried",
	}, []string{"partition"})

	// QuarantinedBatches counts batches quarantined after retry exhaustion.
	QuarantinedBatches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "footballgraph_quarantined_batches_total",
		Help: "Total batches quarantined after commit retries were exhausted",
	}, []string{"partition"})

	// BatchSize observes the entity count of committed batches.
	BatchSize = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "footballgraph_batch_size",
		Help:    "Entity count of committed batches",
		Buckets: prometheus.ExponentialBuckets(1, 2, 12),
	})

	// CommitDuration observes store commit latency.
	CommitDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "footballgraph_commit_duration_seconds",
		Help:    "Time taken to commit a batch to the graph store",
		Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
	})
)

func init() {
	prometheus.MustRegister(
		MessagesReceived,
		DecodeErrors,
		TransformErrors,
		ValidationFailures,
		QualityIssues,
		CommitsTotal,
		CommitRetries,
		QuarantinedBatches,
		BatchSize,
		CommitDuration,
	)
}

// Serve runs the metrics HTTP server until ctx is canceled. It exposes
// /metrics and a trivial /health endpoint.
func Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{Addr: addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		logger.Error("Metrics server failed", "addr", addr, "error", err)
		return err
	}
}
