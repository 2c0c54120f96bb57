// Package football defines the football ontology vocabulary: namespaces,
// class IRIs, and predicate IRIs used when relational rows are projected
// into the semantic graph.
//
// The terms here mirror the relational source schema (teams, fixtures,
// players, odds, standings) and borrow from schema.org and Dublin Core
// where a standard predicate exists.
package football
