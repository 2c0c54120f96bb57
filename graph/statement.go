// Package graph provides the statement model for the derived semantic graph:
// subject/predicate/object triples, set-semantics collections of them, and
// the added/removed deltas produced by change events.
package graph

import (
	"fmt"
	"strings"
)

// Object is the object position of a statement: either an IRI reference to
// another entity or a typed literal value.
type Object struct {
	Value    string `json:"value"`
	Datatype string `json:"datatype,omitempty"`
	IRI      bool   `json:"iri,omitempty"`
}

// IRIObject returns an object referencing another entity by IRI.
func IRIObject(iri string) Object {
	return Object{Value: iri, IRI: true}
}

// Literal returns a typed literal object.
func Literal(value, datatype string) Object {
	return Object{Value: value, Datatype: datatype}
}

// String renders the object in N-Triples form.
func (o Object) String() string {
	if o.IRI {
		return "<" + o.Value + ">"
	}
	escaped := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\r", `\r`).Replace(o.Value)
	if o.Datatype == "" {
		return `"` + escaped + `"`
	}
	return `"` + escaped + `"^^<` + o.Datatype + `>`
}

// Statement is one subject/predicate/object fact. Statements are compared
// by structural equality; the canonical key doubles as the N-Triples line
// minus the closing dot.
type Statement struct {
	Subject   string `json:"subject"`
	Predicate string `json:"predicate"`
	Object    Object `json:"object"`
}

// Key returns the canonical form used for set membership.
func (s Statement) Key() string {
	return fmt.Sprintf("<%s> <%s> %s", s.Subject, s.Predicate, s.Object.String())
}

// String renders the statement as an N-Triples line.
func (s Statement) String() string {
	return s.Key() + " ."
}
