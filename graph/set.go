package graph

import (
	"encoding/json"
	"sort"
)

// StatementSet is an unordered, duplicate-free collection of statements
// keyed by their canonical form.
type StatementSet map[string]Statement

// NewStatementSet builds a set from the given statements.
func NewStatementSet(stmts ...Statement) StatementSet {
	set := make(StatementSet, len(stmts))
	for _, s := range stmts {
		set.Add(s)
	}
	return set
}

// Add inserts a statement. Adding an existing statement is a no-op.
func (set StatementSet) Add(s Statement) {
	set[s.Key()] = s
}

// Remove deletes a statement if present.
func (set StatementSet) Remove(s Statement) {
	delete(set, s.Key())
}

// Contains reports set membership.
func (set StatementSet) Contains(s Statement) bool {
	_, ok := set[s.Key()]
	return ok
}

// Len returns the number of statements in the set.
func (set StatementSet) Len() int {
	return len(set)
}

// Clone returns an independent copy of the set.
func (set StatementSet) Clone() StatementSet {
	out := make(StatementSet, len(set))
	for k, v := range set {
		out[k] = v
	}
	return out
}

// Union returns a new set containing the statements of both sets.
func (set StatementSet) Union(other StatementSet) StatementSet {
	out := set.Clone()
	for k, v := range other {
		out[k] = v
	}
	return out
}

// Subtract returns a new set with the other set's statements removed.
func (set StatementSet) Subtract(other StatementSet) StatementSet {
	out := make(StatementSet, len(set))
	for k, v := range set {
		if _, ok := other[k]; !ok {
			out[k] = v
		}
	}
	return out
}

// Equal reports whether both sets contain exactly the same statements.
func (set StatementSet) Equal(other StatementSet) bool {
	if len(set) != len(other) {
		return false
	}
	for k := range set {
		if _, ok := other[k]; !ok {
			return false
		}
	}
	return true
}

// BySubject returns the statements whose subject equals the given IRI.
func (set StatementSet) BySubject(subject string) []Statement {
	var out []Statement
	for _, s := range set {
		if s.Subject == subject {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Statements returns the set members in canonical order.
func (set StatementSet) Statements() []Statement {
	out := make([]Statement, 0, len(set))
	for _, s := range set {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// MarshalJSON serializes the set as a canonically ordered statement list.
func (set StatementSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(set.Statements())
}

// UnmarshalJSON restores a set from a statement list.
func (set *StatementSet) UnmarshalJSON(data []byte) error {
	var stmts []Statement
	if err := json.Unmarshal(data, &stmts); err != nil {
		return err
	}
	*set = NewStatementSet(stmts...)
	return nil
}
