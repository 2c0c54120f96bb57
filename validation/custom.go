package validation

import (
	"context"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
)

// CustomRule is a pluggable, domain-specific validation predicate.
type CustomRule func(ctx context.Context, ev *event.ChangeEvent, delta graph.Delta) []Violation

// CustomStage runs registered custom rules: global rules for every event
// plus per-entity-type rules.
type CustomStage struct {
	global []CustomRule
	byType map[string][]CustomRule
}

// NewCustomStage builds an empty custom stage.
func NewCustomStage() *CustomStage {
	return &CustomStage{byType: make(map[string][]CustomRule)}
}

// Register adds a rule for one entity type.
func (s *CustomStage) Register(entityType string, rule CustomRule) {
	s.byType[entityType] = append(s.byType[entityType], rule)
}

// RegisterGlobal adds a rule that runs for every entity type.
func (s *CustomStage) RegisterGlobal(rule CustomRule) {
	s.global = append(s.global, rule)
}

// Name implements Stage.
func (s *CustomStage) Name() string {
	return "custom"
}

// Validate implements Stage.
func (s *CustomStage) Validate(ctx context.Context, ev *event.ChangeEvent, delta graph.Delta) []Violation {
	var violations []Violation
	for _, rule := range s.global {
		violations = append(violations, rule(ctx, ev, delta)...)
	}
	for _, rule := range s.byType[ev.EntityType] {
		violations = append(violations, rule(ctx, ev, delta)...)
	}
	return violations
}
