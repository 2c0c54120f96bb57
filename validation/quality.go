package validation

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
	"github.com/c360studio/footballgraph/mapping"
	"github.com/c360studio/footballgraph/vocabulary/xsd"
)

// QualityBounds holds the data-quality thresholds applied to every mapped
// literal field. All findings are soft: logged, never blocking.
type QualityBounds struct {
	MinStringLen  int
	MaxStringLen  int
	StringPattern *regexp.Regexp
	MinNumeric    float64
	MaxNumeric    float64
	MinDate       time.Time
	MaxDate       time.Time
}

// DefaultQualityBounds returns the built-in thresholds.
func DefaultQualityBounds() QualityBounds {
	return QualityBounds{
		MinStringLen:  2,
		MaxStringLen:  100,
		StringPattern: regexp.MustCompile(`^[A-Za-z0-9\s\-\.]+$`),
		MinNumeric:    0,
		MaxNumeric:    1_000_000,
		MinDate:       time.Date(1800, 1, 1, 0, 0, 0, 0, time.UTC),
		MaxDate:       time.Date(2100, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// QualityStage screens mapped literal values against generic bounds: string
// length and charset, numeric range, and date range.
type QualityStage struct {
	registry *mapping.Registry
	bounds   QualityBounds
}

// NewQualityStage builds a data-quality stage over the registry.
func NewQualityStage(registry *mapping.Registry, bounds QualityBounds) *QualityStage {
	return &QualityStage{registry: registry, bounds: bounds}
}

// Name implements Stage.
func (s *QualityStage) Name() string {
	return "data_quality"
}

// Validate implements Stage.
func (s *QualityStage) Validate(_ context.Context, ev *event.ChangeEvent, _ graph.Delta) []Violation {
	if ev.Op == event.OpDelete {
		return nil
	}

	m, err := s.registry.Resolve(ev.EntityType)
	if err != nil {
		return nil
	}

	var violations []Violation
	for _, f := range ev.Payload.Fields() {
		prop, ok := m.Properties[f.Name]
		if !ok || prop.IsReference() || f.Value == nil {
			continue
		}

		switch prop.Datatype {
		case xsd.String:
			violations = append(violations, s.checkString(ev.EntityType, f)...)
		case xsd.Integer, xsd.Decimal:
			violations = append(violations, s.checkNumeric(ev.EntityType, f)...)
		case xsd.Date, xsd.DateTime:
			violations = append(violations, s.checkDate(ev.EntityType, f, prop.Datatype)...)
		}
	}
	return violations
}

func (s *QualityStage) checkString(entityType string, f event.Field) []Violation {
	str, ok := f.Value.(string)
	if !ok {
		return nil
	}

	var violations []Violation
	if len(str) < s.bounds.MinStringLen || len(str) > s.bounds.MaxStringLen {
		violations = append(violations, Violation{
			Rule:     "string_length",
			Message:  fmt.Sprintf("%s.%s length %d outside %d..%d", entityType, f.Name, len(str), s.bounds.MinStringLen, s.bounds.MaxStringLen),
			Severity: SeverityDataQualityIssue,
		})
	}
	if s.bounds.StringPattern != nil && !s.bounds.StringPattern.MatchString(str) {
		violations = append(violations, Violation{
			Rule:     "string_charset",
			Message:  fmt.Sprintf("%s.%s value %q contains unexpected characters", entityType, f.Name, str),
			Severity: SeverityDataQualityIssue,
		})
	}
	return violations
}

func (s *QualityStage) checkNumeric(entityType string, f event.Field) []Violation {
	num, err := strconv.ParseFloat(fmt.Sprintf("%v", f.Value), 64)
	if err != nil {
		return nil
	}
	if num < s.bounds.MinNumeric || num > s.bounds.MaxNumeric {
		return []Violation{{
			Rule:     "numeric_range",
			Message:  fmt.Sprintf("%s.%s value %v outside %v..%v", entityType, f.Name, num, s.bounds.MinNumeric, s.bounds.MaxNumeric),
			Severity: SeverityDataQualityIssue,
		}}
	}
	return nil
}

func (s *QualityStage) checkDate(entityType string, f event.Field, datatype string) []Violation {
	str, ok := f.Value.(string)
	if !ok {
		return nil
	}

	layout := "2006-01-02"
	if datatype == xsd.DateTime {
		layout = time.RFC3339
	}
	t, err := time.Parse(layout, str)
	if err != nil {
		return nil
	}
	if t.Before(s.bounds.MinDate) || t.After(s.bounds.MaxDate) {
		return []Violation{{
			Rule:     "date_range",
			Message:  fmt.Sprintf("%s.%s date %s outside %s..%s", entityType, f.Name, str, s.bounds.MinDate.Format("2006-01-02"), s.bounds.MaxDate.Format("2006-01-02")),
			Severity: SeverityDataQualityIssue,
		}}
	}
	return nil
}
