package validation

import (
	"context"
	"testing"

	"github.com/c360studio/footballgraph/graph"
)

func TestQualityStageFindingsAreSoft(t *testing.T) {
	registry := testRegistry(t)
	stage := NewQualityStage(registry, DefaultQualityBounds())

	tests := []struct {
		name     string
		raw      string
		wantRule string
	}{
		{
			name: "clean payload",
			raw:  `{"source":{"table":"country"},"op":"c","payload":{"id":1,"name":"England","code":"EN"}}`,
		},
		{
			name:     "single character string",
			raw:      `{"source":{"table":"country"},"op":"c","payload":{"id":1,"name":"E"}}`,
			wantRule: "string_length",
		},
		{
			name:     "suspicious characters",
			raw:      `{"source":{"table":"country"},"op":"c","payload":{"id":1,"name":"Eng@land!"}}`,
			wantRule: "string_charset",
		},
		{
			name:     "numeric outlier",
			raw:      `{"source":{"table":"country"},"op":"c","payload":{"id":1,"external_id":99999999}}`,
			wantRule: "numeric_range",
		},
		{
			name:     "date before plausible range",
			raw:      `{"source":{"table":"player"},"op":"c","payload":{"id":1,"birth_date":"1750-06-01"}}`,
			wantRule: "date_range",
		},
		{
			name: "unmapped fields ignored",
			raw:  `{"source":{"table":"country"},"op":"c","payload":{"id":1,"audit_blob":"!!!!"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := decodeEvent(t, tt.raw)
			got := stage.Validate(context.Background(), ev, graph.NewDelta())

			if tt.wantRule == "" {
				if len(got) != 0 {
					t.Errorf("expected no findings, got %v", got)
				}
				return
			}

			found := false
			for _, v := range got {
				if v.Rule == tt.wantRule {
					found = true
				}
				if v.Severity.Blocking() {
					t.Errorf("quality finding %s must not block", v.Rule)
				}
			}
			if !found {
				t.Errorf("findings = %v, want rule %s", got, tt.wantRule)
			}
		})
	}
}
