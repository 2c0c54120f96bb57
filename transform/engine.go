// Package transform turns change events into statement deltas using the
// entity-mapping registry.
package transform

import (
	"encoding/json"
	"fmt"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/mapping"
	"github.com/c360studio/footballgraph/vocabulary/football"
)

// Engine maps change events to graph deltas. It is stateless; prior graph
// state for the event's subject is supplied by the caller, which lets the
// consumer layer pending in-batch changes over the store view.
type Engine struct {
	registry *mapping.Registry
}

// NewEngine creates a transformation engine over a loaded registry.
func NewEngine(registry *mapping.Registry) *Engine {
	return &Engine{registry: registry}
}

// SubjectIRI returns the deterministic subject IRI for an event.
func (e *Engine) SubjectIRI(ev *event.ChangeEvent) string {
	return e.registry.SubjectIRI(ev.EntityType, ev.PrimaryKey)
}

// Transform produces the statement delta for one change event. prior holds
// the subject's current statements (store state composed with any pending
// buffered delta for the same subject).
//
// Create adds the type statement plus one statement per non-null mapped
// field. Update retracts the prior statements of every mapped field present
// in the payload, then re-asserts from the new payload, which makes Update
// idempotent. Delete retracts every prior statement of the subject; object
// references to the deleted IRI held by other subjects are left in place.
func (e *Engine) Transform(ev *event.ChangeEvent, prior graph.StatementSet) (graph.Delta, error) {
	m, err := e.registry.Resolve(ev.EntityType)
	if err != nil {
		return graph.Delta{}, &TransformError{
			EntityType: ev.EntityType,
			PrimaryKey: ev.PrimaryKey,
			Position:   ev.Position,
			Err:        err,
		}
	}

	subject := e.registry.SubjectIRI(ev.EntityType, ev.PrimaryKey)
	delta := graph.NewDelta()

	switch ev.Op {
	case event.OpDelete:
		for _, s := range prior.BySubject(subject) {
			delta.Removed.Add(s)
		}
		return delta, nil

	case event.OpUpdate:
		retracted := make(map[string]bool)
		for _, f := range ev.Payload.Fields() {
			prop, ok := m.Properties[f.Name]
			if !ok {
				continue
			}
			retracted[prop.Predicate] = true
		}
		for _, s := range prior.BySubject(subject) {
			if retracted[s.Predicate] {
				delta.Removed.Add(s)
			}
		}
	case event.OpCreate:
		// no retraction
	default:
		return graph.Delta{}, &TransformError{
			EntityType: ev.EntityType,
			PrimaryKey: ev.PrimaryKey,
			Position:   ev.Position,
			Err:        fmt.Errorf("unsupported operation %q", ev.Op),
		}
	}

	delta.Added.Add(graph.Statement{
		Subject:   subject,
		Predicate: football.RDFType,
		Object:    graph.IRIObject(m.Class),
	})

	for _, f := range ev.Payload.Fields() {
		prop, ok := m.Properties[f.Name]
		if !ok || f.Value == nil {
			// unmapped field or explicit null: no statement
			continue
		}

		object, err := e.objectFor(prop, f.Value)
		if err != nil {
			return graph.Delta{}, &TransformError{
				EntityType: ev.EntityType,
				PrimaryKey: ev.PrimaryKey,
				Position:   ev.Position,
				Err:        fmt.Errorf("field %q: %w", f.Name, err),
			}
		}

		delta.Added.Add(graph.Statement{
			Subject:   subject,
			Predicate: prop.Predicate,
			Object:    object,
		})
	}

	return delta, nil
}

// objectFor builds the object term for one mapped field value.
func (e *Engine) objectFor(prop mapping.Property, value any) (graph.Object, error) {
	if prop.IsReference() {
		key, err := scalarKey(value)
		if err != nil {
			return graph.Object{}, fmt.Errorf("reference to %s: %w", prop.Ref, err)
		}
		return graph.IRIObject(e.registry.SubjectIRI(prop.Ref, key)), nil
	}

	lexical, err := lexicalForm(value)
	if err != nil {
		return graph.Object{}, err
	}
	return graph.Literal(lexical, prop.Datatype), nil
}

// scalarKey renders a foreign-key value as an IRI path segment.
func scalarKey(value any) (string, error) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return "", fmt.Errorf("empty key")
		}
		return v, nil
	case json.Number:
		return v.String(), nil
	default:
		return "", fmt.Errorf("non-scalar key of type %T", value)
	}
}

// lexicalForm renders a payload value as a literal lexical form.
func lexicalForm(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case json.Number:
		return v.String(), nil
	case bool:
		if v {
			return "true", nil
		}
		return "false", nil
	default:
		return "", fmt.Errorf("non-scalar value of type %T", value)
	}
}
