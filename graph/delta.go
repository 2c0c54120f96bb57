package graph

// Delta is the change produced by one change event (or a coalesced batch of
// them): the statements to add to and remove from the current graph.
type Delta struct {
	Added   StatementSet `json:"added"`
	Removed StatementSet `json:"removed"`
}

// NewDelta returns an empty delta.
func NewDelta() Delta {
	return Delta{
		Added:   NewStatementSet(),
		Removed: NewStatementSet(),
	}
}

// Empty reports whether the delta carries no statements.
func (d Delta) Empty() bool {
	return d.Added.Len() == 0 && d.Removed.Len() == 0
}

// Clone returns an independent copy of the delta.
func (d Delta) Clone() Delta {
	return Delta{
		Added:   d.Added.Clone(),
		Removed: d.Removed.Clone(),
	}
}

// Compose sequences a later delta after this one, yielding the single delta
// with the same net effect. A statement the first delta adds and the second
// removes cancels out; a statement the second re-adds after the first
// removed it survives in the added set.
func (d Delta) Compose(next Delta) Delta {
	return Delta{
		Removed: d.Removed.Union(next.Removed.Subtract(d.Added)),
		Added:   d.Added.Subtract(next.Removed).Union(next.Added),
	}
}

// Apply returns the statement set that results from applying the delta:
// (base − removed) ∪ added. The base set is not mutated.
func (d Delta) Apply(base StatementSet) StatementSet {
	return base.Subtract(d.Removed).Union(d.Added)
}
