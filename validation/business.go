package validation

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/c360studio/footballgraph/event"
	"github.com/c360studio/footballgraph/graph"
)

// BusinessRule checks one domain invariant against an event payload.
type BusinessRule struct {
	Name  string
	Check func(ev *event.ChangeEvent) (ok bool, message string)
}

// BusinessStage enforces domain invariants: numeric ranges and cross-field
// consistency that the relational schema cannot express.
type BusinessStage struct {
	rules map[string][]BusinessRule
}

// NewBusinessStage builds a business-rule stage; nil rules selects the
// built-in rule set.
func NewBusinessStage(rules map[string][]BusinessRule) *BusinessStage {
	if rules == nil {
		rules = DefaultBusinessRules()
	}
	return &BusinessStage{rules: rules}
}

// Name implements Stage.
func (s *BusinessStage) Name() string {
	return "business_rules"
}

// Validate implements Stage.
func (s *BusinessStage) Validate(_ context.Context, ev *event.ChangeEvent, _ graph.Delta) []Violation {
	if ev.Op == event.OpDelete {
		return nil
	}

	var violations []Violation
	for _, rule := range s.rules[ev.EntityType] {
		if ok, message := rule.Check(ev); !ok {
			violations = append(violations, Violation{
				Rule:     rule.Name,
				Message:  message,
				Severity: SeverityBusinessRuleViolation,
			})
		}
	}
	return violations
}

// DefaultBusinessRules returns the built-in domain invariants.
func DefaultBusinessRules() map[string][]BusinessRule {
	return map[string][]BusinessRule{
		"player": {
			{
				Name: "age_restriction",
				Check: func(ev *event.ChangeEvent) (bool, string) {
					birth, ok := payloadDate(ev, "birth_date")
					if !ok {
						return true, ""
					}
					if age := yearsSince(birth, time.Now()); age < 16 {
						return false, fmt.Sprintf("player must be at least 16 years old, is %d", age)
					}
					return true, ""
				},
			},
			{
				Name: "squad_number",
				Check: func(ev *event.ChangeEvent) (bool, string) {
					number, ok := payloadInt(ev, "number")
					if !ok {
						return true, ""
					}
					if number < 1 || number > 99 {
						return false, fmt.Sprintf("squad number must be between 1 and 99, got %d", number)
					}
					return true, ""
				},
			},
		},
		"fixture": {
			{
				Name: "team_uniqueness",
				Check: func(ev *event.ChangeEvent) (bool, string) {
					home, homeOK := ev.Payload.Get("home_team_id")
					away, awayOK := ev.Payload.Get("away_team_id")
					if !homeOK || !awayOK || home == nil || away == nil {
						return true, ""
					}
					if fmt.Sprintf("%v", home) == fmt.Sprintf("%v", away) {
						return false, "home and away teams must be different"
					}
					return true, ""
				},
			},
			{
				Name: "score_validation",
				Check: func(ev *event.ChangeEvent) (bool, string) {
					for _, field := range []string{"home_score", "away_score"} {
						if score, ok := payloadInt(ev, field); ok && score < 0 {
							return false, fmt.Sprintf("%s cannot be negative, got %d", field, score)
						}
					}
					return true, ""
				},
			},
		},
		"player_transfer": {
			{
				Name: "date_validation",
				Check: func(ev *event.ChangeEvent) (bool, string) {
					transfer, tOK := payloadDate(ev, "transfer_date")
					start, sOK := payloadDate(ev, "contract_start_date")
					if !tOK || !sOK {
						return true, ""
					}
					if transfer.Before(start) {
						return false, "transfer date must be after contract start date"
					}
					return true, ""
				},
			},
		},
	}
}

func payloadInt(ev *event.ChangeEvent, field string) (int64, bool) {
	value, ok := ev.Payload.Get(field)
	if !ok || value == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(fmt.Sprintf("%v", value), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func payloadDate(ev *event.ChangeEvent, field string) (time.Time, bool) {
	value, ok := ev.Payload.Get(field)
	if !ok || value == nil {
		return time.Time{}, false
	}
	str, ok := value.(string)
	if !ok {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", str)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func yearsSince(birth, now time.Time) int {
	years := now.Year() - birth.Year()
	if now.YearDay() < birth.YearDay() {
		years--
	}
	return years
}
