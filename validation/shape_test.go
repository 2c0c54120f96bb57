package validation

import (
	"context"
	"regexp"
	"testing"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/mapping"
)

func testRegistry(t *testing.T) *mapping.Registry {
	t.Helper()
	registry, err := mapping.DefaultRegistry()
	if err != nil {
		t.Fatalf("DefaultRegistry() error = %v", err)
	}
	return registry
}

func decodeEvent(t *testing.T, raw string) *event.ChangeEvent {
	t.Helper()
	ev, err := event.Decode([]byte(raw), "test")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	return ev
}

func rulesOf(violations []Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.Rule)
	}
	return out
}

func TestShapeStageFieldConstraints(t *testing.T) {
	registry := testRegistry(t)
	shapes := map[string]map[string]FieldShape{
		"country": {
			"name": {Required: true},
			"code": {Pattern: regexp.MustCompile(`^[A-Z]{2,3}$`)},
		},
		"player": {
			"position": {OneOf: []string{"Goalkeeper", "Defender", "Midfielder", "Attacker"}},
			"number":   {Min: f64(1), Max: f64(99)},
		},
	}
	stage := NewShapeStage(registry, shapes)

	tests := []struct {
		name      string
		raw       string
		wantRules []string
	}{
		{
			name:      "valid country",
			raw:       `{"source":{"table":"country"},"op":"c","payload":{"id":1,"name":"England","code":"EN"}}`,
			wantRules: nil,
		},
		{
			name:      "missing required field on create",
			raw:       `{"source":{"table":"country"},"op":"c","payload":{"id":1,"code":"EN"}}`,
			wantRules: []string{"required_field"},
		},
		{
			name:      "required field absent from update is fine",
			raw:       `{"source":{"table":"country"},"op":"u","payload":{"id":1,"code":"EN"}}`,
			wantRules: nil,
		},
		{
			name:      "required field nulled by update",
			raw:       `{"source":{"table":"country"},"op":"u","payload":{"id":1,"name":null}}`,
			wantRules: []string{"required_field"},
		},
		{
			name:      "pattern mismatch",
			raw:       `{"source":{"table":"country"},"op":"c","payload":{"id":1,"name":"England","code":"england"}}`,
			wantRules: []string{"pattern"},
		},
		{
			name:      "enumeration violation",
			raw:       `{"source":{"table":"player"},"op":"c","payload":{"id":1,"position":"Striker"}}`,
			wantRules: []string{"enumeration"},
		},
		{
			name:      "below minimum",
			raw:       `{"source":{"table":"player"},"op":"c","payload":{"id":1,"number":0}}`,
			wantRules: []string{"min_inclusive"},
		},
		{
			name:      "above maximum",
			raw:       `{"source":{"table":"player"},"op":"c","payload":{"id":1,"number":100}}`,
			wantRules: []string{"max_inclusive"},
		},
		{
			name:      "delete events are not shape checked",
			raw:       `{"source":{"table":"country"},"op":"d","payload":{"id":1}}`,
			wantRules: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := decodeEvent(t, tt.raw)
			got := stage.Validate(context.Background(), ev, graph.NewDelta())

			gotRules := rulesOf(got)
			if len(gotRules) != len(tt.wantRules) {
				t.Fatalf("violations = %v, want rules %v", got, tt.wantRules)
			}
			for i := range gotRules {
				if gotRules[i] != tt.wantRules[i] {
					t.Errorf("rule %d = %s, want %s", i, gotRules[i], tt.wantRules[i])
				}
			}
		})
	}
}

func TestShapeStageDatatypeChecks(t *testing.T) {
	registry := testRegistry(t)
	stage := NewShapeStage(registry, map[string]map[string]FieldShape{})

	tests := []struct {
		name    string
		raw     string
		wantBad bool
	}{
		{
			name:    "valid datatypes",
			raw:     `{"source":{"table":"country"},"op":"c","payload":{"id":1,"name":"England","external_id":10,"update_at":"2024-05-01T10:00:00Z"}}`,
			wantBad: false,
		},
		{
			name:    "non-integer where integer declared",
			raw:     `{"source":{"table":"country"},"op":"c","payload":{"id":1,"external_id":"not-a-number"}}`,
			wantBad: true,
		},
		{
			name:    "bad dateTime",
			raw:     `{"source":{"table":"country"},"op":"c","payload":{"id":1,"update_at":"yesterday"}}`,
			wantBad: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := decodeEvent(t, tt.raw)
			got := stage.Validate(context.Background(), ev, graph.NewDelta())

			bad := false
			for _, v := range got {
				if v.Rule == "datatype" {
					bad = true
					if !v.Severity.Blocking() {
						t.Error("datatype violations must block")
					}
				}
			}
			if bad != tt.wantBad {
				t.Errorf("datatype violation = %v, want %v (violations: %v)", bad, tt.wantBad, got)
			}
		})
	}
}

func TestDefaultShapesAreInternallyConsistent(t *testing.T) {
	registry := testRegistry(t)
	stage := NewShapeStage(registry, nil)

	ev := decodeEvent(t, `{"source":{"table":"player"},"op":"c","payload":{"id":9,"name":"Bukayo Saka","birth_date":"2001-09-05","position":"FW","number":7}}`)
	if got := stage.Validate(context.Background(), ev, graph.NewDelta()); len(got) != 0 {
		t.Errorf("valid player rejected by default shapes: %v", got)
	}
}

func TestDefaultShapesEnumerateStatusAndEventCodes(t *testing.T) {
	registry := testRegistry(t)
	stage := NewShapeStage(registry, nil)

	tests := []struct {
		name      string
		raw       string
		wantRules []string
	}{
		{
			name:      "known status code",
			raw:       `{"source":{"table":"fixture_status"},"op":"c","payload":{"id":1,"status_type":"FINISHED"}}`,
			wantRules: nil,
		},
		{
			name:      "unknown status code",
			raw:       `{"source":{"table":"fixture_status"},"op":"c","payload":{"id":1,"status_type":"ABANDONED"}}`,
			wantRules: []string{"enumeration"},
		},
		{
			name:      "known event code",
			raw:       `{"source":{"table":"fixture_event"},"op":"c","payload":{"id":1,"event_type":"GOAL"}}`,
			wantRules: nil,
		},
		{
			name:      "unknown event code",
			raw:       `{"source":{"table":"fixture_event"},"op":"c","payload":{"id":1,"event_type":"THROW_IN"}}`,
			wantRules: []string{"enumeration"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := decodeEvent(t, tt.raw)
			got := stage.Validate(context.Background(), ev, graph.NewDelta())

			gotRules := rulesOf(got)
			if len(gotRules) != len(tt.wantRules) {
				t.Fatalf("rules = %v, want %v", gotRules, tt.wantRules)
			}
			for i, rule := range tt.wantRules {
				if gotRules[i] != rule {
					t.Errorf("rules[%d] = %s, want %s", i, gotRules[i], rule)
				}
			}
		})
	}
}
