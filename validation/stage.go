package validation

import (
	"context"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
)

// Stage is one validation step. Stages other than shape may assume
// well-typed input: the pipeline guarantees shape validation has passed
// before they run.
type Stage interface {
	Name() string
	Validate(ctx context.Context, ev *event.ChangeEvent, delta graph.Delta) []Violation
}

// failed reports whether a stage's violations include a blocking one.
func failed(violations []Violation) bool {
	for _, v := range violations {
		if v.Severity.Blocking() {
			return true
		}
	}
	return false
}
