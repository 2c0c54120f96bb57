package cdc

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/c360studio/footballgraph/graph"
)

// DefaultQuarantineSubject is where quarantined batches are published.
const DefaultQuarantineSubject = "cdc.quarantine"

// QuarantinedBatch carries everything an operator needs to inspect and
// replay a batch that could not be committed: the merged delta and the log
// positions of every event that contributed to it.
type QuarantinedBatch struct {
	Partition     string      `json:"partition"`
	Positions     []string    `json:"positions"`
	Delta         graph.Delta `json:"delta"`
	Reason        string      `json:"reason"`
	QuarantinedAt time.Time   `json:"quarantined_at"`
}

// Quarantine receives batches whose commit retries were exhausted.
type Quarantine interface {
	Quarantine(ctx context.Context, batch QuarantinedBatch) error
}

// JetStreamQuarantine publishes quarantined batches to a durable subject.
type JetStreamQuarantine struct {
	js      jetstream.JetStream
	subject string
}

// NewJetStreamQuarantine creates a quarantine publisher. An empty subject
// selects DefaultQuarantineSubject.
func NewJetStreamQuarantine(js jetstream.JetStream, subject string) *JetStreamQuarantine {
	if subject == "" {
		subject = DefaultQuarantineSubject
	}
	return &JetStreamQuarantine{js: js, subject: subject}
}

// Quarantine implements the Quarantine interface.
func (q *JetStreamQuarantine) Quarantine(ctx context.Context, batch QuarantinedBatch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return fmt.Errorf("marshal quarantined batch: %w", err)
	}
	if _, err := q.js.Publish(ctx, q.subject, data); err != nil {
		return fmt.Errorf("publish quarantined batch: %w", err)
	}
	return nil
}
