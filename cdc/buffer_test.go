package cdc

import (
	"testing"

	"github.com/c360studio/footballgraph/graph"
)

func iriStmt(subject, predicate, object string) graph.Statement {
	return graph.Statement{Subject: subject, Predicate: predicate, Object: graph.IRIObject(object)}
}

func addOnly(stmts ...graph.Statement) graph.Delta {
	d := graph.NewDelta()
	for _, s := range stmts {
		d.Added.Add(s)
	}
	return d
}

func TestBufferCoalescesSameSubject(t *testing.T) {
	b := NewBuffer()

	create := addOnly(iriStmt("team/1", "p", "v1"))
	update := graph.NewDelta()
	update.Removed.Add(iriStmt("team/1", "p", "v1"))
	update.Added.Add(iriStmt("team/1", "p", "v2"))

	b.Add("team/1", create, "cdc.team:1")
	b.Add("team/1", update, "cdc.team:2")

	if b.Events() != 2 {
		t.Errorf("Events() = %d, want 2", b.Events())
	}
	if b.Entities() != 1 {
		t.Errorf("Entities() = %d, want 1", b.Entities())
	}

	pending, ok := b.Pending("team/1")
	if !ok {
		t.Fatal("expected pending delta for team/1")
	}
	if pending.Added.Contains(iriStmt("team/1", "p", "v1")) {
		t.Error("superseded value must not survive coalescing")
	}
	if !pending.Added.Contains(iriStmt("team/1", "p", "v2")) {
		t.Error("final value missing from coalesced delta")
	}
}

func TestBufferMergeAcrossSubjects(t *testing.T) {
	b := NewBuffer()
	b.Add("team/1", addOnly(iriStmt("team/1", "p", "a")), "cdc.team:1")
	b.Add("team/2", addOnly(iriStmt("team/2", "p", "b")), "cdc.team:2")

	merged := b.Merge()
	if merged.Added.Len() != 2 {
		t.Errorf("merged added = %d, want 2", merged.Added.Len())
	}

	wantPositions := []string{"cdc.team:1", "cdc.team:2"}
	got := b.Positions()
	if len(got) != len(wantPositions) {
		t.Fatalf("Positions() = %v, want %v", got, wantPositions)
	}
	for i := range got {
		if got[i] != wantPositions[i] {
			t.Errorf("position %d = %s, want %s", i, got[i], wantPositions[i])
		}
	}
}

func TestBufferAddDoesNotAliasCallerDelta(t *testing.T) {
	b := NewBuffer()
	d := addOnly(iriStmt("team/1", "p", "a"))
	b.Add("team/1", d, "cdc.team:1")

	d.Added.Add(iriStmt("team/1", "p", "late"))

	pending, _ := b.Pending("team/1")
	if pending.Added.Contains(iriStmt("team/1", "p", "late")) {
		t.Error("buffer must hold its own copy of the delta")
	}
}

func TestBufferReset(t *testing.T) {
	b := NewBuffer()
	b.Add("team/1", addOnly(iriStmt("team/1", "p", "a")), "cdc.team:1")
	b.Reset()

	if b.Events() != 0 || b.Entities() != 0 || len(b.Positions()) != 0 {
		t.Error("Reset() must clear all buffer state")
	}
	if !b.Merge().Empty() {
		t.Error("Merge() after Reset() must be empty")
	}
}
