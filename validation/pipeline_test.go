package validation

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
)

// recordingStage returns fixed violations and counts its invocations.
type recordingStage struct {
	name       string
	violations []Violation
	calls      atomic.Int32
}

func (s *recordingStage) Name() string { return s.name }

func (s *recordingStage) Validate(context.Context, *event.ChangeEvent, graph.Delta) []Violation {
	s.calls.Add(1)
	return s.violations
}

func blockingViolation(rule string) Violation {
	return Violation{Rule: rule, Message: rule, Severity: SeverityBusinessRuleViolation}
}

func validTeamEvent(t *testing.T) *event.ChangeEvent {
	t.Helper()
	return decodeEvent(t, `{"source":{"table":"team"},"op":"c","payload":{"id":1,"name":"Arsenal","country_id":7}}`)
}

func TestPipelineRunsStagesInOrder(t *testing.T) {
	shape := &recordingStage{name: "shape"}
	a := &recordingStage{name: "a"}
	b := &recordingStage{name: "b"}

	p := New(Config{}, nil, shape, a, b)
	results := p.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())

	require.Len(t, results, 3)
	assert.Equal(t, []string{"shape", "a", "b"}, []string{results[0].Stage, results[1].Stage, results[2].Stage})
	assert.False(t, Blocked(results))
}

func TestPipelineShapeFailureGatesLaterStages(t *testing.T) {
	shape := &recordingStage{name: "shape", violations: []Violation{
		{Rule: "required_field", Message: "name missing", Severity: SeverityValidationFailure},
	}}
	later := &recordingStage{name: "business_rules"}

	p := New(Config{}, nil, shape, later)
	results := p.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())

	require.Len(t, results, 1, "only the shape result should be returned")
	assert.Equal(t, "shape", results[0].Stage)
	assert.False(t, results[0].Passed)
	assert.True(t, Blocked(results))
	assert.Zero(t, later.calls.Load(), "post-shape stages must not run after a shape failure")
}

func TestPipelineFailFastStopsAtFirstFailure(t *testing.T) {
	shape := &recordingStage{name: "shape"}
	failing := &recordingStage{name: "business_rules", violations: []Violation{blockingViolation("broken")}}
	never := &recordingStage{name: "data_quality"}

	p := New(Config{FailFast: true}, nil, shape, failing, never)
	results := p.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())

	require.Len(t, results, 2)
	assert.True(t, Blocked(results))
	assert.Zero(t, never.calls.Load(), "fail-fast must stop after the failing stage")
}

func TestPipelineAggregatesWithoutFailFast(t *testing.T) {
	shape := &recordingStage{name: "shape"}
	failing := &recordingStage{name: "business_rules", violations: []Violation{blockingViolation("broken")}}
	also := &recordingStage{name: "data_quality", violations: []Violation{
		{Rule: "string_length", Message: "short", Severity: SeverityDataQualityIssue},
	}}

	p := New(Config{}, nil, shape, failing, also)
	results := p.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())

	require.Len(t, results, 3, "all stages run when fail-fast is off")
	assert.True(t, Blocked(results))
	assert.Len(t, SoftViolations(results), 1)
}

func TestPipelineParallelPreservesStageOrder(t *testing.T) {
	shape := &recordingStage{name: "shape"}
	stages := []Stage{
		&recordingStage{name: "business_rules"},
		&recordingStage{name: "data_quality", violations: []Violation{
			{Rule: "string_length", Message: "short", Severity: SeverityDataQualityIssue},
		}},
		&recordingStage{name: "relationship_constraints"},
		&recordingStage{name: "custom"},
	}

	p := New(Config{Parallel: true, Workers: 2}, nil, shape, stages...)
	results := p.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())

	require.Len(t, results, 5)
	want := []string{"shape", "business_rules", "data_quality", "relationship_constraints", "custom"}
	for i, stage := range want {
		assert.Equal(t, stage, results[i].Stage)
	}
	assert.False(t, Blocked(results))
	assert.Len(t, SoftViolations(results), 1)
}

func TestPipelineParallelIgnoredUnderFailFast(t *testing.T) {
	shape := &recordingStage{name: "shape"}
	failing := &recordingStage{name: "business_rules", violations: []Violation{blockingViolation("broken")}}
	never := &recordingStage{name: "custom"}

	p := New(Config{Parallel: true, FailFast: true}, nil, shape, failing, never)
	p.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())

	assert.Zero(t, never.calls.Load(), "fail-fast takes precedence over parallel execution")
}

func TestCustomStageRules(t *testing.T) {
	custom := NewCustomStage()
	custom.RegisterGlobal(func(_ context.Context, _ *event.ChangeEvent, _ graph.Delta) []Violation {
		return []Violation{{Rule: "global", Severity: SeverityDataQualityIssue}}
	})
	custom.Register("team", func(_ context.Context, _ *event.ChangeEvent, _ graph.Delta) []Violation {
		return []Violation{blockingViolation("team_specific")}
	})
	custom.Register("player", func(_ context.Context, _ *event.ChangeEvent, _ graph.Delta) []Violation {
		return []Violation{blockingViolation("player_specific")}
	})

	got := custom.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())
	require.Len(t, got, 2, "global plus matching per-type rules")
	assert.Equal(t, "global", got[0].Rule)
	assert.Equal(t, "team_specific", got[1].Rule)
}

func TestNewDefaultPipelineEndToEnd(t *testing.T) {
	registry := testRegistry(t)
	p, custom := NewDefault(Config{}, nil, registry, nil)
	require.NotNil(t, custom)

	results := p.Validate(context.Background(), validTeamEvent(t), graph.NewDelta())
	require.Len(t, results, 5, "shape plus four post-shape stages")
	assert.False(t, Blocked(results))

	blocked := p.Validate(context.Background(),
		decodeEvent(t, `{"source":{"table":"fixture"},"op":"c","payload":{"id":1,"home_team_id":3,"away_team_id":3,"league_id":1}}`),
		graph.NewDelta())
	assert.True(t, Blocked(blocked), "same team on both sides must block")
}
