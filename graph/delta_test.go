package graph

import "testing"

func TestDeltaApply(t *testing.T) {
	base := NewStatementSet(stmt("s", "p", "old"), stmt("s", "q", "kept"))

	delta := NewDelta()
	delta.Removed.Add(stmt("s", "p", "old"))
	delta.Added.Add(stmt("s", "p", "new"))

	got := delta.Apply(base)

	want := NewStatementSet(stmt("s", "p", "new"), stmt("s", "q", "kept"))
	if !got.Equal(want) {
		t.Errorf("Apply() = %v, want %v", got.Statements(), want.Statements())
	}
	if base.Contains(stmt("s", "p", "new")) {
		t.Error("Apply must not mutate the base set")
	}
}

func TestDeltaComposeCancelsAddThenRemove(t *testing.T) {
	first := NewDelta()
	first.Added.Add(stmt("s", "p", "v1"))

	second := NewDelta()
	second.Removed.Add(stmt("s", "p", "v1"))
	second.Added.Add(stmt("s", "p", "v2"))

	composed := first.Compose(second)

	if composed.Added.Contains(stmt("s", "p", "v1")) {
		t.Error("statement added then removed must not survive in added")
	}
	if composed.Removed.Contains(stmt("s", "p", "v1")) {
		t.Error("statement the first delta introduced must not appear in removed")
	}
	if !composed.Added.Contains(stmt("s", "p", "v2")) {
		t.Error("final value must survive in added")
	}
}

func TestDeltaComposeKeepsRemoveThenReadd(t *testing.T) {
	first := NewDelta()
	first.Removed.Add(stmt("s", "p", "v"))

	second := NewDelta()
	second.Added.Add(stmt("s", "p", "v"))

	composed := first.Compose(second)

	if !composed.Added.Contains(stmt("s", "p", "v")) {
		t.Error("re-added statement must survive in added")
	}
	if !composed.Removed.Contains(stmt("s", "p", "v")) {
		t.Error("original removal must survive so the composition is exact on any base")
	}
}

// Composing deltas must have the same effect as applying them in sequence,
// whatever the base.
func TestDeltaComposeEquivalentToSequentialApply(t *testing.T) {
	base := NewStatementSet(stmt("s", "p", "v0"), stmt("t", "p", "x"))

	create := NewDelta()
	create.Added.Add(stmt("s", "p", "v1"))

	update := NewDelta()
	update.Removed.Add(stmt("s", "p", "v1"))
	update.Removed.Add(stmt("s", "p", "v0"))
	update.Added.Add(stmt("s", "p", "v2"))

	sequential := update.Apply(create.Apply(base))
	composed := create.Compose(update).Apply(base)

	if !sequential.Equal(composed) {
		t.Errorf("composed apply %v differs from sequential apply %v",
			composed.Statements(), sequential.Statements())
	}
}

func TestDeltaEmptyAndClone(t *testing.T) {
	d := NewDelta()
	if !d.Empty() {
		t.Error("new delta should be empty")
	}

	d.Added.Add(stmt("s", "p", "o"))
	clone := d.Clone()
	clone.Added.Add(stmt("s", "p", "other"))

	if d.Added.Len() != 1 {
		t.Error("mutating a clone must not affect the original")
	}
}
