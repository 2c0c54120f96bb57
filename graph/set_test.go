package graph

import (
	"encoding/json"
	"testing"
)

func stmt(subject, predicate, value string) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: IRIObject(value)}
}

func TestStatementSetAddIsIdempotent(t *testing.T) {
	set := NewStatementSet()
	s := stmt("s", "p", "o")

	set.Add(s)
	set.Add(s)

	if set.Len() != 1 {
		t.Errorf("expected 1 statement after duplicate add, got %d", set.Len())
	}
	if !set.Contains(s) {
		t.Error("expected set to contain added statement")
	}
}

func TestStatementSetSubtractAndUnion(t *testing.T) {
	a := NewStatementSet(stmt("s", "p", "1"), stmt("s", "p", "2"))
	b := NewStatementSet(stmt("s", "p", "2"), stmt("s", "p", "3"))

	diff := a.Subtract(b)
	if diff.Len() != 1 || !diff.Contains(stmt("s", "p", "1")) {
		t.Errorf("Subtract: expected {1}, got %v", diff.Statements())
	}

	union := a.Union(b)
	if union.Len() != 3 {
		t.Errorf("Union: expected 3 statements, got %d", union.Len())
	}

	// Inputs untouched.
	if a.Len() != 2 || b.Len() != 2 {
		t.Error("set operations must not mutate their operands")
	}
}

func TestStatementSetEqual(t *testing.T) {
	a := NewStatementSet(stmt("s", "p", "1"), stmt("s", "p", "2"))
	b := NewStatementSet(stmt("s", "p", "2"), stmt("s", "p", "1"))
	c := NewStatementSet(stmt("s", "p", "1"))

	if !a.Equal(b) {
		t.Error("expected order-independent equality")
	}
	if a.Equal(c) {
		t.Error("expected sets of different size to differ")
	}
}

func TestStatementSetBySubject(t *testing.T) {
	set := NewStatementSet(
		stmt("a", "p", "1"),
		stmt("a", "q", "2"),
		stmt("b", "p", "3"),
	)

	got := set.BySubject("a")
	if len(got) != 2 {
		t.Fatalf("expected 2 statements for subject a, got %d", len(got))
	}
	for _, s := range got {
		if s.Subject != "a" {
			t.Errorf("unexpected subject %s", s.Subject)
		}
	}
}

func TestStatementSetJSONRoundTrip(t *testing.T) {
	set := NewStatementSet(
		stmt("s", "p", "o"),
		Statement{Subject: "s", Predicate: "name", Object: Literal("Arsenal", "http://www.w3.org/2001/XMLSchema#string")},
	)

	data, err := json.Marshal(set)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var restored StatementSet
	if err := json.Unmarshal(data, &restored); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if !set.Equal(restored) {
		t.Errorf("round trip changed the set: %v != %v", set.Statements(), restored.Statements())
	}
}
