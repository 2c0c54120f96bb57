package export

import (
	"strings"
	"testing"

	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/vocabulary/football"
	"github.com/c360studio/footballgraph/vocabulary/xsd"
)

func sampleSet() graph.StatementSet {
	subject := "http://example.org/football/team/42"
	return graph.NewStatementSet(
		graph.Statement{Subject: subject, Predicate: football.RDFType, Object: graph.IRIObject(football.ClassTeam)},
		graph.Statement{Subject: subject, Predicate: football.Name, Object: graph.Literal("Arsenal FC", xsd.String)},
		graph.Statement{Subject: subject, Predicate: football.FoundingDate, Object: graph.Literal("1886", xsd.GYear)},
		graph.Statement{Subject: subject, Predicate: football.Country, Object: graph.IRIObject("http://example.org/football/country/7")},
	)
}

func TestSerializeNTriples(t *testing.T) {
	out, err := Serialize(sampleSet(), FormatNTriples)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
	for _, line := range lines {
		if !strings.HasSuffix(line, " .") {
			t.Errorf("line missing terminator: %s", line)
		}
	}
	if !strings.Contains(out, `"Arsenal FC"^^<`+xsd.String+`>`) {
		t.Errorf("typed literal missing from output:\n%s", out)
	}
}

func TestSerializeNTriplesIsDeterministic(t *testing.T) {
	first, _ := Serialize(sampleSet(), FormatNTriples)
	second, _ := Serialize(sampleSet(), FormatNTriples)
	if first != second {
		t.Error("serialization of the same set must be byte-identical")
	}
}

func TestSerializeTurtle(t *testing.T) {
	out, err := Serialize(sampleSet(), FormatTurtle)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	if !strings.Contains(out, "@prefix football: <"+football.Namespace+"> .") {
		t.Errorf("missing football prefix declaration:\n%s", out)
	}
	if !strings.Contains(out, "<http://example.org/football/team/42>") {
		t.Errorf("missing subject group:\n%s", out)
	}
	// Known namespaces compact to prefixed names.
	if !strings.Contains(out, "rdf:type") {
		t.Errorf("rdf:type not compacted:\n%s", out)
	}
	if !strings.Contains(out, `"1886"^^xsd:gYear`) {
		t.Errorf("gYear literal not compacted:\n%s", out)
	}
	// Plain strings stay bare in Turtle.
	if !strings.Contains(out, `"Arsenal FC"`) || strings.Contains(out, `"Arsenal FC"^^`) {
		t.Errorf("string literal should be bare:\n%s", out)
	}
}

func TestSerializeUnsupportedFormat(t *testing.T) {
	if _, err := Serialize(sampleSet(), Format("jsonld")); err == nil {
		t.Error("Serialize() expected error for unsupported format")
	}
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		format Format
		want   string
	}{
		{"bare path gets turtle extension", "graph", FormatTurtle, "graph.ttl"},
		{"bare path gets ntriples extension", "out/graph", FormatNTriples, "out/graph.nt"},
		{"existing extension kept", "graph.rdf", FormatTurtle, "graph.rdf"},
		{"unknown format leaves path alone", "graph", Format("jsonld"), "graph"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.path, tt.format); got != tt.want {
				t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.path, tt.format, got, tt.want)
			}
		})
	}
}
