package validation

import (
	"context"
	"fmt"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/mapping"
)

// ReferenceChecker resolves whether a referenced entity exists in the
// relational source. The pgx-backed resolver implements it; tests use fakes.
type ReferenceChecker interface {
	EntityExists(ctx context.Context, entityType, id string) (bool, error)
}

// RelationshipStage enforces reference constraints: mandatory foreign keys
// must be present, scalar (to-one cardinality), and, when a checker is
// configured, resolvable in the relational source.
type RelationshipStage struct {
	registry  *mapping.Registry
	checker   ReferenceChecker
	mandatory map[string][]string
}

// NewRelationshipStage builds a relationship-constraint stage. checker may
// be nil, which skips existence checks; nil mandatory selects the built-in
// constraint set.
func NewRelationshipStage(registry *mapping.Registry, checker ReferenceChecker, mandatory map[string][]string) *RelationshipStage {
	if mandatory == nil {
		mandatory = DefaultMandatoryReferences()
	}
	return &RelationshipStage{registry: registry, checker: checker, mandatory: mandatory}
}

// DefaultMandatoryReferences returns the built-in mandatory foreign keys.
func DefaultMandatoryReferences() map[string][]string {
	return map[string][]string{
		"player":  {"team_id"},
		"team":    {"country_id"},
		"fixture": {"home_team_id", "away_team_id", "league_id"},
	}
}

// Name implements Stage.
func (s *RelationshipStage) Name() string {
	return "relationship_constraints"
}

// Validate implements Stage.
func (s *RelationshipStage) Validate(ctx context.Context, ev *event.ChangeEvent, _ graph.Delta) []Violation {
	if ev.Op == event.OpDelete {
		return nil
	}

	m, err := s.registry.Resolve(ev.EntityType)
	if err != nil {
		return nil
	}

	var violations []Violation

	for _, field := range s.mandatory[ev.EntityType] {
		value, present := ev.Payload.Get(field)
		if !present {
			if ev.Op == event.OpCreate {
				violations = append(violations, Violation{
					Rule:     "mandatory_reference",
					Message:  fmt.Sprintf("%s.%s reference is mandatory", ev.EntityType, field),
					Severity: SeverityValidationFailure,
				})
			}
			continue
		}
		if value == nil {
			violations = append(violations, Violation{
				Rule:     "mandatory_reference",
				Message:  fmt.Sprintf("%s.%s reference must not be null", ev.EntityType, field),
				Severity: SeverityValidationFailure,
			})
		}
	}

	for _, f := range ev.Payload.Fields() {
		prop, ok := m.Properties[f.Name]
		if !ok || !prop.IsReference() || f.Value == nil {
			continue
		}

		switch f.Value.(type) {
		case []any, map[string]any:
			violations = append(violations, Violation{
				Rule:     "cardinality",
				Message:  fmt.Sprintf("%s.%s must reference exactly one %s", ev.EntityType, f.Name, prop.Ref),
				Severity: SeverityValidationFailure,
			})
			continue
		}

		if s.checker == nil {
			continue
		}
		id := fmt.Sprintf("%v", f.Value)
		exists, err := s.checker.EntityExists(ctx, prop.Ref, id)
		if err != nil {
			violations = append(violations, Violation{
				Rule:     "reference_resolution",
				Message:  fmt.Sprintf("%s.%s: lookup of %s/%s failed: %v", ev.EntityType, f.Name, prop.Ref, id, err),
				Severity: SeverityValidationFailure,
			})
			continue
		}
		if !exists {
			violations = append(violations, Violation{
				Rule:     "dangling_reference",
				Message:  fmt.Sprintf("%s.%s references missing %s/%s", ev.EntityType, f.Name, prop.Ref, id),
				Severity: SeverityValidationFailure,
			})
		}
	}

	return violations
}
