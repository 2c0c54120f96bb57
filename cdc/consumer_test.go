package cdc

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/mapping"
	"github.com/c360studio/footballgraph/store"
	"github.com/c360studio/footballgraph/transform"
	"github.com/c360studio/footballgraph/validation"
)

type fakeMessage struct {
	data     []byte
	position string
	acked    bool
	naked    bool
}

func (m *fakeMessage) Data() []byte     { return m.data }
func (m *fakeMessage) Position() string { return m.position }
func (m *fakeMessage) Ack() error       { m.acked = true; return nil }
func (m *fakeMessage) Nak() error       { m.naked = true; return nil }

// fakeSource hands out queued batches, then cancels the run context so the
// consumer drains and stops.
type fakeSource struct {
	batches [][]Message
	cancel  context.CancelFunc
}

func (s *fakeSource) Fetch(ctx context.Context) ([]Message, error) {
	if len(s.batches) == 0 {
		s.cancel()
		return nil, ctx.Err()
	}
	batch := s.batches[0]
	s.batches = s.batches[1:]
	return batch, nil
}

type fakeCommitter struct {
	mu       sync.Mutex
	current  graph.StatementSet
	commits  []graph.Delta
	metas    []store.Metadata
	failures int
}

func newFakeCommitter() *fakeCommitter {
	return &fakeCommitter{current: graph.NewStatementSet()}
}

func (c *fakeCommitter) Commit(_ context.Context, delta graph.Delta, meta store.Metadata) (store.Version, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.failures > 0 {
		c.failures--
		return store.Version{}, errors.New("store unavailable")
	}
	c.current = delta.Apply(c.current)
	c.commits = append(c.commits, delta.Clone())
	c.metas = append(c.metas, meta)
	return store.Version{ID: "v"}, nil
}

func (c *fakeCommitter) CurrentStatements(subject string) []graph.Statement {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.BySubject(subject)
}

type fakeQuarantine struct {
	batches []QuarantinedBatch
}

func (q *fakeQuarantine) Quarantine(_ context.Context, batch QuarantinedBatch) error {
	q.batches = append(q.batches, batch)
	return nil
}

func testPipeline(t *testing.T, registry *mapping.Registry) *validation.Pipeline {
	t.Helper()
	shapes := map[string]map[string]validation.FieldShape{
		"team": {"name": {Required: true}},
	}
	return validation.New(validation.Config{FailFast: true}, nil,
		validation.NewShapeStage(registry, shapes))
}

func newTestConsumer(t *testing.T, config Config, batches [][]Message, committer *fakeCommitter, quarantine Quarantine) (*Consumer, context.Context) {
	t.Helper()
	registry, err := mapping.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	source := &fakeSource{batches: batches, cancel: cancel}

	consumer := NewConsumer(config, source, transform.NewEngine(registry),
		testPipeline(t, registry), committer, quarantine, nil)
	return consumer, ctx
}

func teamCreate(id, name string) *fakeMessage {
	return &fakeMessage{
		data:     []byte(`{"source":{"table":"team"},"op":"c","payload":{"id":` + id + `,"name":"` + name + `","country_id":7}}`),
		position: "cdc.team:" + id,
	}
}

func TestConsumerCommitsAtBatchSize(t *testing.T) {
	committer := newFakeCommitter()
	msgs := []Message{teamCreate("1", "Arsenal"), teamCreate("2", "Chelsea")}

	consumer, ctx := newTestConsumer(t, Config{
		Partition: "team",
		BatchSize: 2,
		Author:    "test",
	}, [][]Message{msgs}, committer, nil)

	if err := consumer.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(committer.commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(committer.commits))
	}
	if committer.metas[0].Author != "test" {
		t.Errorf("expected author test, got %s", committer.metas[0].Author)
	}
	for _, m := range msgs {
		if !m.(*fakeMessage).acked {
			t.Errorf("message at %s not acked", m.Position())
		}
	}
	if committer.current.Len() == 0 {
		t.Error("committed delta should materialize statements")
	}
}

func TestConsumerExcludesBlockedEntityFromBatch(t *testing.T) {
	committer := newFakeCommitter()
	blocked := &fakeMessage{
		// No name: fails the required-field shape and must not commit.
		data:     []byte(`{"source":{"table":"team"},"op":"c","payload":{"id":8,"country_id":7}}`),
		position: "cdc.team:8",
	}
	valid := teamCreate("9", "Leeds")

	consumer, ctx := newTestConsumer(t, Config{
		Partition: "team",
		BatchSize: 100,
	}, [][]Message{{blocked, valid}}, committer, nil)

	if err := consumer.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(committer.commits) != 1 {
		t.Fatalf("expected 1 drain commit, got %d", len(committer.commits))
	}
	for _, s := range committer.commits[0].Added.Statements() {
		if s.Subject == "http://example.org/football/team/8" {
			t.Errorf("blocked entity leaked into commit: %s", s)
		}
	}
	if len(committer.current.BySubject("http://example.org/football/team/9")) == 0 {
		t.Error("valid entity missing from commit")
	}
	if !blocked.acked {
		t.Error("blocked message must still be acked")
	}
}

func TestConsumerSkipsMalformedMessage(t *testing.T) {
	committer := newFakeCommitter()
	malformed := &fakeMessage{data: []byte(`{broken`), position: "cdc.team:1"}
	valid := teamCreate("2", "Everton")

	consumer, ctx := newTestConsumer(t, Config{
		Partition: "team",
		BatchSize: 1,
	}, [][]Message{{malformed, valid}}, committer, nil)

	if err := consumer.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !malformed.acked {
		t.Error("malformed message must be acked so the log moves on")
	}
	if len(committer.commits) != 1 {
		t.Errorf("expected 1 commit from the valid message, got %d", len(committer.commits))
	}
}

func TestConsumerUpdateRetractsPriorState(t *testing.T) {
	committer := newFakeCommitter()
	create := teamCreate("1", "Old Name")
	update := &fakeMessage{
		data:     []byte(`{"source":{"table":"team"},"op":"u","payload":{"id":1,"name":"New Name"}}`),
		position: "cdc.team:2",
	}

	// Separate fetch batches with BatchSize 1 so the create commits before
	// the update is transformed against store state.
	consumer, ctx := newTestConsumer(t, Config{
		Partition: "team",
		BatchSize: 1,
	}, [][]Message{{create}, {update}}, committer, nil)

	if err := consumer.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(committer.commits) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(committer.commits))
	}

	subject := "http://example.org/football/team/1"
	var sawOld, sawNew bool
	for _, s := range committer.current.BySubject(subject) {
		switch s.Object.Value {
		case "Old Name":
			sawOld = true
		case "New Name":
			sawNew = true
		}
	}
	if sawOld {
		t.Error("update must retract the prior name statement")
	}
	if !sawNew {
		t.Error("update must assert the new name statement")
	}
}

func TestConsumerQuarantinesAfterExhaustedRetries(t *testing.T) {
	committer := newFakeCommitter()
	committer.failures = 10
	quarantine := &fakeQuarantine{}

	consumer, ctx := newTestConsumer(t, Config{
		Partition:  "team",
		BatchSize:  1,
		MaxRetries: 1,
		RetryDelay: time.Millisecond,
	}, [][]Message{{teamCreate("1", "Arsenal")}}, committer, quarantine)

	err := consumer.Run(ctx)
	var commitErr *CommitError
	if !errors.As(err, &commitErr) {
		t.Fatalf("Run() error = %v, want *CommitError", err)
	}
	if commitErr.Attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", commitErr.Attempts)
	}

	if len(quarantine.batches) != 1 {
		t.Fatalf("expected 1 quarantined batch, got %d", len(quarantine.batches))
	}
	batch := quarantine.batches[0]
	if batch.Partition != "team" {
		t.Errorf("expected partition team, got %s", batch.Partition)
	}
	if len(batch.Positions) != 1 || batch.Positions[0] != "cdc.team:1" {
		t.Errorf("expected log positions for replay, got %v", batch.Positions)
	}
	if batch.Delta.Added.Len() == 0 {
		t.Error("quarantined batch must carry the merged delta")
	}
}

func TestConsumerDrainsBufferOnShutdown(t *testing.T) {
	committer := newFakeCommitter()

	consumer, ctx := newTestConsumer(t, Config{
		Partition: "team",
		BatchSize: 100,
	}, [][]Message{{teamCreate("1", "Arsenal")}}, committer, nil)

	if err := consumer.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(committer.commits) != 1 {
		t.Errorf("expected the buffered event to be flushed on shutdown, got %d commits", len(committer.commits))
	}
}

func TestConsumerCoalescesInBatchUpdates(t *testing.T) {
	committer := newFakeCommitter()
	create := teamCreate("1", "First")
	update := &fakeMessage{
		data:     []byte(`{"source":{"table":"team"},"op":"u","payload":{"id":1,"name":"Second"}}`),
		position: "cdc.team:2",
	}

	// Both events in one batch: the update must see the create's pending
	// delta as prior state even though nothing is committed yet.
	consumer, ctx := newTestConsumer(t, Config{
		Partition: "team",
		BatchSize: 2,
	}, [][]Message{{create, update}}, committer, nil)

	if err := consumer.Run(ctx); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(committer.commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(committer.commits))
	}
	delta := committer.commits[0]
	var names []string
	for _, s := range delta.Added.Statements() {
		if s.Object.Value == "First" || s.Object.Value == "Second" {
			names = append(names, s.Object.Value)
		}
	}
	if len(names) != 1 || names[0] != "Second" {
		t.Errorf("expected only the final name in the committed delta, got %v", names)
	}
}
