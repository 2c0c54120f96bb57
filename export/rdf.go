// Package export serializes graph statement sets to RDF text formats.
package export

import (
	"fmt"
	"sort"
	"strings"

	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/vocabulary/football"
	"github.com/c360studio/footballgraph/vocabulary/prov"
	"github.com/c360studio/footballgraph/vocabulary/versioning"
	"github.com/c360studio/footballgraph/vocabulary/xsd"
)

// Format specifies the output serialization format.
type Format string

const (
	// FormatTurtle produces Turtle (.ttl) output.
	FormatTurtle Format = "turtle"

	// FormatNTriples produces N-Triples (.nt) output.
	FormatNTriples Format = "ntriples"
)

// defaultPrefixes returns the namespace prefixes used in Turtle output.
func defaultPrefixes() map[string]string {
	return map[string]string{
		"rdf":      football.RDFNamespace,
		"rdfs":     football.RDFSNamespace,
		"xsd":      xsd.Namespace,
		"schema":   football.SchemaNamespace,
		"dcterms":  football.DCTermsNamespace,
		"prov":     prov.Namespace,
		"football": football.Namespace,
		"version":  versioning.Namespace,
	}
}

// Serialize renders a statement set in the given format. Output is
// deterministic: statements appear in canonical order.
func Serialize(set graph.StatementSet, format Format) (string, error) {
	switch format {
	case FormatNTriples:
		return toNTriples(set), nil
	case FormatTurtle:
		return toTurtle(set), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func toNTriples(set graph.StatementSet) string {
	var sb strings.Builder
	for _, s := range set.Statements() {
		sb.WriteString(s.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func toTurtle(set graph.StatementSet) string {
	prefixes := defaultPrefixes()
	names := make([]string, 0, len(prefixes))
	for name := range prefixes {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	for _, name := range names {
		fmt.Fprintf(&sb, "@prefix %s: <%s> .\n", name, prefixes[name])
	}
	sb.WriteString("\n")

	// Group statements by subject for readable Turtle.
	stmts := set.Statements()
	bySubject := make(map[string][]graph.Statement)
	var subjects []string
	for _, s := range stmts {
		if _, seen := bySubject[s.Subject]; !seen {
			subjects = append(subjects, s.Subject)
		}
		bySubject[s.Subject] = append(bySubject[s.Subject], s)
	}
	sort.Strings(subjects)

	for _, subject := range subjects {
		group := bySubject[subject]
		fmt.Fprintf(&sb, "<%s>\n", subject)
		for i, s := range group {
			terminator := " ;"
			if i == len(group)-1 {
				terminator = " ."
			}
			fmt.Fprintf(&sb, "    %s %s%s\n",
				compact(prefixes, s.Predicate),
				objectTurtle(prefixes, s.Object),
				terminator)
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func objectTurtle(prefixes map[string]string, o graph.Object) string {
	if o.IRI {
		return "<" + o.Value + ">"
	}
	if o.Datatype == "" || o.Datatype == xsd.String {
		return fmt.Sprintf("%q", o.Value)
	}
	return fmt.Sprintf("%q^^%s", o.Value, compact(prefixes, o.Datatype))
}

// compact rewrites a full IRI as prefix:local when a known prefix matches
// and the local part is a safe Turtle name; otherwise it stays angled.
func compact(prefixes map[string]string, iri string) string {
	best := ""
	bestPrefix := ""
	for name, ns := range prefixes {
		if strings.HasPrefix(iri, ns) && len(ns) > len(best) {
			best = ns
			bestPrefix = name
		}
	}
	if best != "" {
		local := iri[len(best):]
		if local != "" && !strings.ContainsAny(local, "/#:") {
			return bestPrefix + ":" + local
		}
	}
	return "<" + iri + ">"
}
