// Package mapping provides the entity-mapping registry: the declarative,
// load-once description of how each relational entity type is projected
// into graph statements.
package mapping

// Property describes how one source field becomes a statement object:
// either a typed literal (Datatype set) or a reference to another entity's
// IRI (Ref set to the target entity type).
type Property struct {
	Predicate string `yaml:"predicate"`
	Datatype  string `yaml:"datatype,omitempty"`
	Ref       string `yaml:"ref,omitempty"`
}

// IsReference reports whether the property resolves to another entity's IRI
// rather than a literal.
func (p Property) IsReference() bool {
	return p.Ref != ""
}

// Relation describes an inverse relation: statements pointing from this
// entity to dependents of the given target type.
type Relation struct {
	Predicate string `yaml:"predicate"`
	Target    string `yaml:"target"`
}

// EntityMapping is the full projection rule for one source entity type.
type EntityMapping struct {
	Type             string              `yaml:"-"`
	Class            string              `yaml:"class"`
	Properties       map[string]Property `yaml:"properties"`
	InverseRelations map[string]Relation `yaml:"inverse_relations,omitempty"`
}
