// Package prov defines the PROV-O terms used for version provenance.
package prov

// Namespace is the W3C PROV-O namespace.
const Namespace = "http://www.w3.org/ns/prov#"

// PROV-O terms recorded on each committed version.
const (
	// Activity is the class of the activity that produced a version.
	Activity = Namespace + "Activity"

	// WasGeneratedBy links a version to the activity that produced it.
	WasGeneratedBy = Namespace + "wasGeneratedBy"

	// GeneratedAtTime is the generation timestamp.
	GeneratedAtTime = Namespace + "generatedAtTime"

	// WasAttributedTo links a version to the responsible agent.
	WasAttributedTo = Namespace + "wasAttributedTo"

	// WasDerivedFrom links a version to the version it was derived from.
	WasDerivedFrom = Namespace + "wasDerivedFrom"
)

// ActivityNamespace is the base IRI for activity instance IRIs.
const ActivityNamespace = Namespace + "activity/"
