package mapping

import (
	"errors"
	"fmt"
	"sort"

	"github.com/c360studio/footballgraph/vocabulary/xsd"
)

// ErrUnknownEntityType is returned by Resolve for a type with no mapping.
// The change log may carry tables outside the mapped set, so callers skip
// the event rather than fail.
var ErrUnknownEntityType = errors.New("unknown entity type")

// Registry holds the validated entity mappings for the process lifetime.
// It is populated once at construction and read-only afterwards.
type Registry struct {
	namespace string
	mappings  map[string]EntityMapping
}

// NewRegistry validates the given mappings and builds a registry over them.
// All structural problems (empty classes, unknown datatypes, references to
// unmapped types) are rejected here, at load time, so per-event processing
// never has to re-check mapping integrity.
func NewRegistry(namespace string, mappings []EntityMapping) (*Registry, error) {
	if namespace == "" {
		return nil, errors.New("namespace is required")
	}

	byType := make(map[string]EntityMapping, len(mappings))
	for _, m := range mappings {
		if m.Type == "" {
			return nil, errors.New("mapping with empty entity type")
		}
		if _, dup := byType[m.Type]; dup {
			return nil, fmt.Errorf("duplicate mapping for entity type %q", m.Type)
		}
		byType[m.Type] = m
	}

	for _, m := range byType {
		if err := validateMapping(m, byType); err != nil {
			return nil, fmt.Errorf("mapping %q: %w", m.Type, err)
		}
	}

	return &Registry{namespace: namespace, mappings: byType}, nil
}

func validateMapping(m EntityMapping, byType map[string]EntityMapping) error {
	if m.Class == "" {
		return errors.New("class IRI is required")
	}
	if len(m.Properties) == 0 {
		return errors.New("at least one property is required")
	}
	for field, prop := range m.Properties {
		if prop.Predicate == "" {
			return fmt.Errorf("property %q: predicate is required", field)
		}
		switch {
		case prop.IsReference():
			if prop.Datatype != "" {
				return fmt.Errorf("property %q: reference cannot carry a datatype", field)
			}
			if _, ok := byType[prop.Ref]; !ok {
				return fmt.Errorf("property %q: reference target %q has no mapping", field, prop.Ref)
			}
		case prop.Datatype == "":
			return fmt.Errorf("property %q: datatype or ref is required", field)
		case !xsd.Known(prop.Datatype):
			return fmt.Errorf("property %q: unknown datatype %q", field, prop.Datatype)
		}
	}
	for name, rel := range m.InverseRelations {
		if rel.Predicate == "" {
			return fmt.Errorf("inverse relation %q: predicate is required", name)
		}
		if _, ok := byType[rel.Target]; !ok {
			return fmt.Errorf("inverse relation %q: target %q has no mapping", name, rel.Target)
		}
	}
	return nil
}

// Resolve returns the mapping for an entity type.
func (r *Registry) Resolve(entityType string) (EntityMapping, error) {
	m, ok := r.mappings[entityType]
	if !ok {
		return EntityMapping{}, fmt.Errorf("%w: %s", ErrUnknownEntityType, entityType)
	}
	return m, nil
}

// SubjectIRI builds the deterministic instance IRI for an entity. The same
// type and key always yield the same IRI; version replay depends on it.
func (r *Registry) SubjectIRI(entityType, primaryKey string) string {
	return r.namespace + entityType + "/" + primaryKey
}

// Namespace returns the base IRI under which instance IRIs are minted.
func (r *Registry) Namespace() string {
	return r.namespace
}

// Types returns the mapped entity type names in sorted order.
func (r *Registry) Types() []string {
	out := make([]string, 0, len(r.mappings))
	for t := range r.mappings {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
