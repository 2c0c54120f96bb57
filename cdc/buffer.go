package cdc

import "github.com/c360studio/footballgraph/graph"

// Buffer accumulates validated deltas for one partition between commits,
// keyed by subject IRI so repeated events for the same entity coalesce
// before the batch is written. Each partition consumer owns its buffer;
// nothing here is shared, so no locking.
type Buffer struct {
	entries   map[string]graph.Delta
	order     []string
	events    int
	positions []string
}

// NewBuffer returns an empty buffer.
func NewBuffer() *Buffer {
	return &Buffer{entries: make(map[string]graph.Delta)}
}

// Add composes a delta into the subject's pending entry and records the
// event's log position for quarantine replay.
func (b *Buffer) Add(subject string, delta graph.Delta, position string) {
	if pending, ok := b.entries[subject]; ok {
		b.entries[subject] = pending.Compose(delta)
	} else {
		b.entries[subject] = delta.Clone()
		b.order = append(b.order, subject)
	}
	b.events++
	b.positions = append(b.positions, position)
}

// Pending returns the coalesced delta buffered for a subject, if any.
func (b *Buffer) Pending(subject string) (graph.Delta, bool) {
	delta, ok := b.entries[subject]
	return delta, ok
}

// Events returns the number of buffered events (pre-coalescing).
func (b *Buffer) Events() int {
	return b.events
}

// Entities returns the number of distinct buffered subjects.
func (b *Buffer) Entities() int {
	return len(b.entries)
}

// Positions returns the log positions of every buffered event in arrival
// order.
func (b *Buffer) Positions() []string {
	return b.positions
}

// Merge composes all pending entries, in first-seen subject order, into the
// single delta the batch commit applies.
func (b *Buffer) Merge() graph.Delta {
	merged := graph.NewDelta()
	for _, subject := range b.order {
		merged = merged.Compose(b.entries[subject])
	}
	return merged
}

// Reset clears the buffer after a successful commit or quarantine.
func (b *Buffer) Reset() {
	b.entries = make(map[string]graph.Delta)
	b.order = nil
	b.events = 0
	b.positions = nil
}
