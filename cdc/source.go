package cdc

import (
	"context"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
)

// Message is one raw log message handed to the consumer.
type Message interface {
	Data() []byte
	Position() string
	Ack() error
	Nak() error
}

// Source supplies raw messages for one partition. Fetch blocks up to its
// poll timeout and returns an empty slice when no message arrived, which is
// not an error.
type Source interface {
	Fetch(ctx context.Context) ([]Message, error)
}

// JetStreamSource adapts a durable JetStream pull consumer to Source.
type JetStreamSource struct {
	consumer jetstream.Consumer
	batch    int
	maxWait  time.Duration
}

// NewJetStreamSource creates or updates the partition's durable consumer on
// the given stream and wraps it as a Source.
func NewJetStreamSource(ctx context.Context, js jetstream.JetStream, streamName, durable, filterSubject string, batch int, maxWait time.Duration) (*JetStreamSource, error) {
	stream, err := js.Stream(ctx, streamName)
	if err != nil {
		return nil, fmt.Errorf("get stream %s: %w", streamName, err)
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Durable:       durable,
		FilterSubject: filterSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       30 * time.Second,
		MaxDeliver:    3,
	})
	if err != nil {
		return nil, fmt.Errorf("create consumer %s: %w", durable, err)
	}

	if batch <= 0 {
		batch = 100
	}
	if maxWait <= 0 {
		maxWait = 5 * time.Second
	}
	return &JetStreamSource{consumer: consumer, batch: batch, maxWait: maxWait}, nil
}

// Fetch implements Source.
func (s *JetStreamSource) Fetch(ctx context.Context) ([]Message, error) {
	msgs, err := s.consumer.Fetch(s.batch, jetstream.FetchMaxWait(s.maxWait))
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		// Fetch timeouts surface as errors; the poll loop just tries again.
		return nil, nil
	}

	var out []Message
	for msg := range msgs.Messages() {
		out = append(out, &jsMessage{msg: msg})
	}
	if msgs.Error() != nil && msgs.Error() != context.DeadlineExceeded {
		return out, msgs.Error()
	}
	return out, nil
}

type jsMessage struct {
	msg jetstream.Msg
}

func (m *jsMessage) Data() []byte {
	return m.msg.Data()
}

// Position renders the stream sequence as the replayable log position.
func (m *jsMessage) Position() string {
	meta, err := m.msg.Metadata()
	if err != nil {
		return m.msg.Subject()
	}
	return fmt.Sprintf("%s:%d", m.msg.Subject(), meta.Sequence.Stream)
}

func (m *jsMessage) Ack() error {
	return m.msg.Ack()
}

func (m *jsMessage) Nak() error {
	return m.msg.Nak()
}
