package validation

import (
	"context"
	"log/slog"
	"sync"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/mapping"
)

// Config selects the pipeline execution semantics.
type Config struct {
	// FailFast stops at the first failing stage for an entity instead of
	// running every stage and aggregating.
	FailFast bool
	// Parallel runs the post-shape stages concurrently. Ignored when
	// FailFast is set, since fail-fast needs the stage order.
	Parallel bool
	// Workers bounds the concurrent stages when Parallel is set.
	Workers int
}

// Pipeline runs the staged validation sequence. Shape validation always runs
// first and gates the later stages, which assume well-typed input.
type Pipeline struct {
	shape  Stage
	stages []Stage
	config Config
	logger *slog.Logger
}

// New assembles a pipeline from an explicit shape stage and the ordered
// post-shape stages.
func New(config Config, logger *slog.Logger, shape Stage, stages ...Stage) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	if config.Workers <= 0 {
		config.Workers = 4
	}
	return &Pipeline{shape: shape, stages: stages, config: config, logger: logger}
}

// NewDefault assembles the standard five-stage pipeline over a registry:
// shape, business rules, data quality, relationship constraints, custom.
// checker may be nil. The returned custom stage accepts rule registration
// before the consumer starts.
func NewDefault(config Config, logger *slog.Logger, registry *mapping.Registry, checker ReferenceChecker) (*Pipeline, *CustomStage) {
	custom := NewCustomStage()
	p := New(config, logger,
		NewShapeStage(registry, nil),
		NewBusinessStage(nil),
		NewQualityStage(registry, DefaultQualityBounds()),
		NewRelationshipStage(registry, checker, nil),
		custom,
	)
	return p, custom
}

// Validate runs the stages for one entity's event and delta. The returned
// results are in stage order regardless of execution mode.
func (p *Pipeline) Validate(ctx context.Context, ev *event.ChangeEvent, delta graph.Delta) []Result {
	entityKey := ev.EntityType + "/" + ev.PrimaryKey

	shapeViolations := p.shape.Validate(ctx, ev, delta)
	shapeResult := Result{
		Stage:      p.shape.Name(),
		EntityKey:  entityKey,
		Passed:     !failed(shapeViolations),
		Violations: shapeViolations,
	}
	if !shapeResult.Passed {
		// Later stages assume well-typed input; shape gates them.
		return []Result{shapeResult}
	}

	results := []Result{shapeResult}

	if p.config.Parallel && !p.config.FailFast {
		results = append(results, p.runParallel(ctx, ev, delta, entityKey)...)
		return results
	}

	for _, stage := range p.stages {
		violations := stage.Validate(ctx, ev, delta)
		result := Result{
			Stage:      stage.Name(),
			EntityKey:  entityKey,
			Passed:     !failed(violations),
			Violations: violations,
		}
		results = append(results, result)
		if p.config.FailFast && !result.Passed {
			break
		}
	}
	return results
}

// runParallel executes the independent post-shape stages on a bounded set of
// workers, preserving stage order in the returned results.
func (p *Pipeline) runParallel(ctx context.Context, ev *event.ChangeEvent, delta graph.Delta, entityKey string) []Result {
	results := make([]Result, len(p.stages))
	sem := make(chan struct{}, p.config.Workers)
	var wg sync.WaitGroup

	for i, stage := range p.stages {
		wg.Add(1)
		go func(i int, stage Stage) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			violations := stage.Validate(ctx, ev, delta)
			results[i] = Result{
				Stage:      stage.Name(),
				EntityKey:  entityKey,
				Passed:     !failed(violations),
				Violations: violations,
			}
		}(i, stage)
	}

	wg.Wait()
	return results
}
