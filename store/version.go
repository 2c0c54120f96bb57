// Package store provides the versioned graph store: an append-only chain of
// immutable graph snapshots with provenance metadata, persisted in NATS KV
// and materialized through a snapshot cache.
package store

import (
	"time"

	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/vocabulary/football"
	"github.com/c360studio/footballgraph/vocabulary/prov"
	"github.com/c360studio/footballgraph/vocabulary/xsd"
)

// Provenance records which activity and agent produced a version and what
// prior state it was derived from.
type Provenance struct {
	ActivityID      string    `json:"activity_id"`
	GeneratedAtTime time.Time `json:"generated_at_time"`
	WasAttributedTo string    `json:"was_attributed_to"`
	WasDerivedFrom  string    `json:"was_derived_from,omitempty"`
}

// Statements renders the provenance record as PROV-O triples for the given
// version IRI, suitable for inclusion in an export.
func (p *Provenance) Statements(versionIRI string) []graph.Statement {
	sts := []graph.Statement{
		{Subject: p.ActivityID, Predicate: football.RDFType, Object: graph.IRIObject(prov.Activity)},
		{Subject: versionIRI, Predicate: prov.WasGeneratedBy, Object: graph.IRIObject(p.ActivityID)},
		{Subject: versionIRI, Predicate: prov.GeneratedAtTime, Object: graph.Literal(p.GeneratedAtTime.Format(time.RFC3339Nano), xsd.DateTime)},
	}
	if p.WasAttributedTo != "" {
		sts = append(sts, graph.Statement{Subject: versionIRI, Predicate: prov.WasAttributedTo, Object: graph.Literal(p.WasAttributedTo, xsd.String)})
	}
	if p.WasDerivedFrom != "" {
		sts = append(sts, graph.Statement{Subject: versionIRI, Predicate: prov.WasDerivedFrom, Object: graph.IRIObject(p.WasDerivedFrom)})
	}
	return sts
}

// Version is one immutable snapshot record in the chain. PreviousVersionID
// is empty for the root; timestamps strictly increase from root to tip.
type Version struct {
	ID                string      `json:"id"`
	Timestamp         time.Time   `json:"timestamp"`
	PreviousVersionID string      `json:"previous_version_id,omitempty"`
	Author            string      `json:"author"`
	ChangeType        string      `json:"change_type"`
	Notes             string      `json:"notes,omitempty"`
	Provenance        *Provenance `json:"provenance,omitempty"`
}

// Metadata is the caller-supplied part of a commit.
type Metadata struct {
	Author     string
	ChangeType string
	Notes      string
}
