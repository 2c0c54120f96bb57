// Package versioning defines the vocabulary terms for the version chain.
package versioning

// Namespace is the base IRI for version instances and predicates.
const Namespace = "http://example.org/football/version/"

// Version-chain predicates.
const (
	// HasVersion links an entity to one of its versions.
	HasVersion = Namespace + "hasVersion"

	// Timestamp is the version creation timestamp.
	Timestamp = Namespace + "timestamp"

	// PreviousVersion links a version to its predecessor.
	PreviousVersion = Namespace + "previousVersion"

	// Author is the version author.
	Author = Namespace + "author"

	// ChangeType describes the kind of change the version carries.
	ChangeType = Namespace + "changeType"

	// Notes carries free-form version notes.
	Notes = Namespace + "notes"
)

// IRI returns the instance IRI for a version id.
func IRI(id string) string {
	return Namespace + id
}
