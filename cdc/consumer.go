// Package cdc consumes the change-data-capture stream: it decodes row-level
// mutation messages into typed change events and drives the
// poll/buffer/commit loop that turns them into graph versions.
package cdc

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/metrics"
	"github.com/c360studio/footballgraph/store"
	"github.com/c360studio/footballgraph/transform"
	"github.com/c360studio/footballgraph/validation"
)

// State is the consumer's position in its poll/buffer/commit loop.
type State string

// Consumer states.
const (
	StatePolling      State = "polling"
	StateBuffering    State = "buffering"
	StateCommitting   State = "committing"
	StateErrorBackoff State = "error_backoff"
)

// Committer is the store-side contract the consumer commits through.
// *store.GraphStore satisfies it.
type Committer interface {
	Commit(ctx context.Context, delta graph.Delta, meta store.Metadata) (store.Version, error)
	CurrentStatements(subject string) []graph.Statement
}

// Config tunes one partition consumer.
type Config struct {
	// Partition names the partition this consumer owns (used in logs,
	// metrics, and quarantine records).
	Partition string
	// BatchSize flushes the buffer once this many events are buffered.
	BatchSize int
	// MaxRetries bounds commit retries before the batch is quarantined.
	MaxRetries int
	// RetryDelay is the pause between commit retries.
	RetryDelay time.Duration
	// Author is recorded on committed versions.
	Author string
	// DrainTimeout bounds the final drain commit during shutdown.
	DrainTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.BatchSize <= 0 {
		c.BatchSize = 1000
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = 5 * time.Second
	}
	if c.Author == "" {
		c.Author = "cdc-consumer"
	}
	if c.DrainTimeout <= 0 {
		c.DrainTimeout = 30 * time.Second
	}
	return c
}

// Consumer owns one partition's poll/buffer/commit loop. All state below is
// confined to the partition's goroutine; per-entity ordering holds because
// one consumer processes its partition sequentially.
type Consumer struct {
	config     Config
	source     Source
	engine     *transform.Engine
	pipeline   *validation.Pipeline
	committer  Committer
	quarantine Quarantine
	buffer     *Buffer
	logger     *slog.Logger

	mu    sync.RWMutex
	state State
}

// NewConsumer wires a partition consumer. quarantine may be nil, in which
// case exhausted batches are only logged (still never silently dropped from
// the log itself, since their messages were acked against a durable stream).
func NewConsumer(config Config, source Source, engine *transform.Engine, pipeline *validation.Pipeline, committer Committer, quarantine Quarantine, logger *slog.Logger) *Consumer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Consumer{
		config:     config.withDefaults(),
		source:     source,
		engine:     engine,
		pipeline:   pipeline,
		committer:  committer,
		quarantine: quarantine,
		buffer:     NewBuffer(),
		logger:     logger.With("partition", config.Partition),
		state:      StatePolling,
	}
}

// State returns the consumer's current loop state.
func (c *Consumer) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Consumer) setState(s State) {
	c.mu.Lock()
	c.state = s
	c.mu.Unlock()
}

// Run drives the loop until ctx is canceled or the store becomes permanently
// unavailable. Cancellation drains the buffer into one final commit attempt
// before returning; a graceful drain returns nil.
func (c *Consumer) Run(ctx context.Context) error {
	c.logger.Info("Consumer started",
		"batch_size", c.config.BatchSize,
		"max_retries", c.config.MaxRetries,
		"retry_delay", c.config.RetryDelay)

	for {
		select {
		case <-ctx.Done():
			return c.drain()
		default:
		}

		c.setState(StatePolling)
		msgs, err := c.source.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return c.drain()
			}
			c.logger.Warn("Fetch failed", "error", err)
			continue
		}
		if len(msgs) == 0 {
			continue
		}

		c.setState(StateBuffering)
		for _, msg := range msgs {
			metrics.MessagesReceived.WithLabelValues(c.config.Partition).Inc()
			c.process(ctx, msg)
		}

		if c.buffer.Events() >= c.config.BatchSize {
			if err := c.commit(ctx); err != nil {
				return err
			}
		}
	}
}

// process decodes, transforms, and validates one message, buffering its
// delta. Every failure mode here is isolated to the message or entity: the
// batch and the loop continue.
func (c *Consumer) process(ctx context.Context, msg Message) {
	ev, err := event.Decode(msg.Data(), msg.Position())
	if err != nil {
		if errors.Is(err, event.ErrTombstone) {
			_ = msg.Ack()
			return
		}
		metrics.DecodeErrors.WithLabelValues(c.config.Partition).Inc()
		c.logger.Error("Skipping malformed message", "position", msg.Position(), "error", err)
		_ = msg.Ack()
		return
	}

	subject := c.engine.SubjectIRI(ev)
	prior := graph.NewStatementSet(c.committer.CurrentStatements(subject)...)
	if pending, ok := c.buffer.Pending(subject); ok {
		prior = pending.Apply(prior)
	}

	delta, err := c.engine.Transform(ev, prior)
	if err != nil {
		metrics.TransformErrors.WithLabelValues(c.config.Partition).Inc()
		c.logger.Error("Skipping untransformable event",
			"entity", ev.EntityType+"/"+ev.PrimaryKey,
			"op", ev.Op.Name(),
			"position", ev.Position,
			"error", err)
		_ = msg.Ack()
		return
	}

	results := c.pipeline.Validate(ctx, ev, delta)
	if validation.Blocked(results) {
		c.logBlocked(ev, results)
		_ = msg.Ack()
		return
	}
	for _, v := range validation.SoftViolations(results) {
		metrics.QualityIssues.WithLabelValues(c.config.Partition).Inc()
		c.logger.Warn("Data quality issue",
			"entity", ev.EntityType+"/"+ev.PrimaryKey,
			"rule", v.Rule,
			"position", ev.Position,
			"message", v.Message)
	}

	c.buffer.Add(subject, delta, ev.Position)
	_ = msg.Ack()
}

func (c *Consumer) logBlocked(ev *event.ChangeEvent, results []validation.Result) {
	for _, r := range results {
		for _, v := range r.Violations {
			if !v.Severity.Blocking() {
				continue
			}
			metrics.ValidationFailures.WithLabelValues(c.config.Partition, r.Stage).Inc()
			c.logger.Error("Excluding entity delta from commit",
				"entity", ev.EntityType+"/"+ev.PrimaryKey,
				"stage", r.Stage,
				"rule", v.Rule,
				"severity", string(v.Severity),
				"position", ev.Position,
				"message", v.Message)
		}
	}
}

// commit flushes the buffer as one version. On failure it retries, then
// quarantines the batch and reports a fatal CommitError for this partition.
func (c *Consumer) commit(ctx context.Context) error {
	if c.buffer.Events() == 0 {
		return nil
	}

	c.setState(StateCommitting)
	merged := c.buffer.Merge()
	entities := c.buffer.Entities()

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		if attempt > 0 {
			metrics.CommitRetries.WithLabelValues(c.config.Partition).Inc()
			select {
			case <-time.After(c.config.RetryDelay):
			case <-ctx.Done():
				// Shutdown mid-retry: one immediate final attempt below.
			}
		}

		start := time.Now()
		version, err := c.committer.Commit(ctx, merged, store.Metadata{
			Author:     c.config.Author,
			ChangeType: "cdc_batch",
			Notes:      c.config.Partition,
		})
		if err == nil {
			metrics.CommitDuration.Observe(time.Since(start).Seconds())
			metrics.CommitsTotal.WithLabelValues(c.config.Partition).Inc()
			metrics.BatchSize.Observe(float64(entities))
			c.logger.Info("Committed batch",
				"version", version.ID,
				"entities", entities,
				"events", c.buffer.Events(),
				"added", merged.Added.Len(),
				"removed", merged.Removed.Len())
			c.buffer.Reset()
			c.setState(StatePolling)
			return nil
		}
		lastErr = err
		c.logger.Warn("Commit attempt failed",
			"attempt", attempt+1,
			"max_attempts", c.config.MaxRetries+1,
			"error", err)
	}

	c.setState(StateErrorBackoff)
	c.quarantineBatch(merged, lastErr)
	c.buffer.Reset()
	return &CommitError{Attempts: c.config.MaxRetries + 1, BatchSize: entities, Err: lastErr}
}

// quarantineBatch surfaces an uncommittable batch for operator inspection.
func (c *Consumer) quarantineBatch(merged graph.Delta, cause error) {
	metrics.QuarantinedBatches.WithLabelValues(c.config.Partition).Inc()

	batch := QuarantinedBatch{
		Partition:     c.config.Partition,
		Positions:     append([]string(nil), c.buffer.Positions()...),
		Delta:         merged,
		Reason:        cause.Error(),
		QuarantinedAt: time.Now().UTC(),
	}

	if c.quarantine == nil {
		c.logger.Error("No quarantine configured; batch recorded in log only",
			"events", len(batch.Positions), "reason", batch.Reason)
		return
	}

	qctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := c.quarantine.Quarantine(qctx, batch); err != nil {
		c.logger.Error("Failed to publish quarantined batch",
			"events", len(batch.Positions), "error", err)
		return
	}
	c.logger.Error("Batch quarantined",
		"events", len(batch.Positions),
		"positions_first", batch.Positions[0],
		"reason", batch.Reason)
}

// drain performs the shutdown flush: one final commit attempt for whatever
// is buffered. The flush is guaranteed, its success is not; a failed drain
// still quarantines before returning.
func (c *Consumer) drain() error {
	if c.buffer.Events() == 0 {
		c.logger.Info("Consumer stopped", "buffered", 0)
		return nil
	}

	c.logger.Info("Draining buffer before shutdown", "events", c.buffer.Events())
	drainCtx, cancel := context.WithTimeout(context.Background(), c.config.DrainTimeout)
	defer cancel()

	if err := c.commit(drainCtx); err != nil {
		c.logger.Error("Drain commit failed; batch quarantined", "error", err)
	}
	c.logger.Info("Consumer stopped")
	return nil
}
