// Package xsd defines the XML Schema datatype IRIs used for typed literals.
package xsd

// Namespace is the XML Schema datatypes namespace.
const Namespace = "http://www.w3.org/2001/XMLSchema#"

// Datatype IRIs for graph literals.
const (
	String   = Namespace + "string"
	Integer  = Namespace + "integer"
	Decimal  = Namespace + "decimal"
	Boolean  = Namespace + "boolean"
	Date     = Namespace + "date"
	DateTime = Namespace + "dateTime"
	GYear    = Namespace + "gYear"
	AnyURI   = Namespace + "anyURI"
)

// Known reports whether iri names one of the supported literal datatypes.
func Known(iri string) bool {
	switch iri {
	case String, Integer, Decimal, Boolean, Date, DateTime, GYear, AnyURI:
		return true
	}
	return false
}
