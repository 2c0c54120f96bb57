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
	"github.com/c360studio/footballgraph/vocabulary/football"
	"github.com/c360studio/footballgraph/vocabulary/xsd"
)

// FieldShape constrains one payload field of an entity type.
type FieldShape struct {
	// Required rejects events where the field is absent or null.
	Required bool
	// Pattern, when set, must match the field's string form.
	Pattern *regexp.Regexp
	// OneOf, when set, enumerates the accepted values.
	OneOf []string
	// Min and Max bound numeric values inclusively.
	Min *float64
	// Max is the inclusive upper bound.
	Max *float64
}

// ShapeStage checks that required fields are present and that values conform
// to their declared datatype and per-field shape constraints. It runs first
// and gates every later stage.
type ShapeStage struct {
	registry *mapping.Registry
	shapes   map[string]map[string]FieldShape
}

// NewShapeStage builds a shape stage over the registry and per-type shapes.
func NewShapeStage(registry *mapping.Registry, shapes map[string]map[string]FieldShape) *ShapeStage {
	if shapes == nil {
		shapes = DefaultShapes()
	}
	return &ShapeStage{registry: registry, shapes: shapes}
}

// Name implements Stage.
func (s *ShapeStage) Name() string {
	return "shape"
}

// Validate implements Stage. Delete events carry no new values to check.
func (s *ShapeStage) Validate(_ context.Context, ev *event.ChangeEvent, _ graph.Delta) []Violation {
	if ev.Op == event.OpDelete {
		return nil
	}

	var violations []Violation

	m, err := s.registry.Resolve(ev.EntityType)
	if err == nil {
		violations = append(violations, s.datatypeViolations(ev, m)...)
	}

	for field, shape := range s.shapes[ev.EntityType] {
		value, present := ev.Payload.Get(field)
		if !present || value == nil {
			// Updates are partial rows: a required field missing from an
			// update payload is not a violation, only a null is.
			if shape.Required && (ev.Op == event.OpCreate || present) {
				violations = append(violations, Violation{
					Rule:     "required_field",
					Message:  fmt.Sprintf("%s.%s is required", ev.EntityType, field),
					Severity: SeverityValidationFailure,
				})
			}
			continue
		}
		violations = append(violations, checkFieldShape(ev.EntityType, field, shape, value)...)
	}

	return violations
}

func checkFieldShape(entityType, field string, shape FieldShape, value any) []Violation {
	var violations []Violation
	str := stringForm(value)

	if shape.Pattern != nil && !shape.Pattern.MatchString(str) {
		violations = append(violations, Violation{
			Rule:     "pattern",
			Message:  fmt.Sprintf("%s.%s value %q does not match %s", entityType, field, str, shape.Pattern),
			Severity: SeverityValidationFailure,
		})
	}

	if len(shape.OneOf) > 0 {
		ok := false
		for _, allowed := range shape.OneOf {
			if str == allowed {
				ok = true
				break
			}
		}
		if !ok {
			violations = append(violations, Violation{
				Rule:     "enumeration",
				Message:  fmt.Sprintf("%s.%s value %q is not one of %v", entityType, field, str, shape.OneOf),
				Severity: SeverityValidationFailure,
			})
		}
	}

	if shape.Min != nil || shape.Max != nil {
		if num, err := strconv.ParseFloat(str, 64); err == nil {
			if shape.Min != nil && num < *shape.Min {
				violations = append(violations, Violation{
					Rule:     "min_inclusive",
					Message:  fmt.Sprintf("%s.%s value %v is below %v", entityType, field, num, *shape.Min),
					Severity: SeverityValidationFailure,
				})
			}
			if shape.Max != nil && num > *shape.Max {
				violations = append(violations, Violation{
					Rule:     "max_inclusive",
					Message:  fmt.Sprintf("%s.%s value %v is above %v", entityType, field, num, *shape.Max),
					Severity: SeverityValidationFailure,
				})
			}
		}
	}

	return violations
}

// datatypeViolations checks each mapped, non-null payload value against its
// declared literal datatype.
func (s *ShapeStage) datatypeViolations(ev *event.ChangeEvent, m mapping.EntityMapping) []Violation {
	var violations []Violation
	for _, f := range ev.Payload.Fields() {
		prop, ok := m.Properties[f.Name]
		if !ok || prop.IsReference() || f.Value == nil {
			continue
		}
		if err := checkDatatype(prop.Datatype, f.Value); err != nil {
			violations = append(violations, Violation{
				Rule:     "datatype",
				Message:  fmt.Sprintf("%s.%s: %v", ev.EntityType, f.Name, err),
				Severity: SeverityValidationFailure,
			})
		}
	}
	return violations
}

func checkDatatype(datatype string, value any) error {
	str := stringForm(value)
	switch datatype {
	case xsd.String, xsd.AnyURI:
		return nil
	case xsd.Integer:
		if _, err := strconv.ParseInt(str, 10, 64); err != nil {
			return fmt.Errorf("value %q is not an integer", str)
		}
	case xsd.Decimal:
		if _, err := strconv.ParseFloat(str, 64); err != nil {
			return fmt.Errorf("value %q is not a decimal", str)
		}
	case xsd.Boolean:
		if _, isBool := value.(bool); isBool {
			return nil
		}
		if str != "true" && str != "false" {
			return fmt.Errorf("value %q is not a boolean", str)
		}
	case xsd.GYear:
		if _, err := strconv.Atoi(str); err != nil || len(str) != 4 {
			return fmt.Errorf("value %q is not a year", str)
		}
	case xsd.Date:
		if _, err := time.Parse("2006-01-02", str); err != nil {
			return fmt.Errorf("value %q is not a date", str)
		}
	case xsd.DateTime:
		if _, err := time.Parse(time.RFC3339, str); err != nil {
			if _, err := time.Parse("2006-01-02T15:04:05", str); err != nil {
				return fmt.Errorf("value %q is not a dateTime", str)
			}
		}
	}
	return nil
}

// stringForm renders a payload scalar for shape checks.
func stringForm(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case bool:
		if v {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprintf("%v", v)
	}
}

func f64(v float64) *float64 { return &v }

// DefaultShapes returns the built-in per-type field shapes for the football
// schema.
func DefaultShapes() map[string]map[string]FieldShape {
	return map[string]map[string]FieldShape{
		"country": {
			"name": {Required: true, Pattern: regexp.MustCompile(`^[A-Za-z\s\-]+$`)},
			"code": {Required: true, Pattern: regexp.MustCompile(`^[A-Z]{2,3}$`)},
		},
		"player": {
			"name":       {Required: true},
			"birth_date": {Required: true},
			"position":   {OneOf: football.PositionCodes},
		},
		"team": {
			"name":    {Required: true},
			"founded": {Min: f64(1800), Max: f64(2024)},
		},
		"fixture_status": {
			"status_type": {OneOf: football.StatusCodes},
		},
		"fixture_event": {
			"event_type": {OneOf: football.EventCodes},
		},
	}
}
