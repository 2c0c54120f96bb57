// Package validation runs staged checks on change events and their statement
// deltas before they are allowed into a version: shape, business rules, data
// quality, relationship constraints, and pluggable custom predicates.
package validation

// Severity classifies a violation. Blocking severities exclude the entity's
// delta from the batch commit; soft severities are logged and the delta is
// committed anyway.
type Severity string

const (
	// SeverityValidationFailure marks a shape violation. Blocking.
	SeverityValidationFailure Severity = "validation_failure"

	// SeverityBusinessRuleViolation marks a domain invariant breach. Blocking.
	SeverityBusinessRuleViolation Severity = "business_rule_violation"

	// SeverityDataQualityIssue marks a soft data-quality finding. Logged only.
	SeverityDataQualityIssue Severity = "data_quality_issue"
)

// Blocking reports whether the severity excludes the delta from commit.
func (s Severity) Blocking() bool {
	return s == SeverityValidationFailure || s == SeverityBusinessRuleViolation
}

// Violation is one failed rule within a stage.
type Violation struct {
	Rule     string
	Message  string
	Severity Severity
}

// Result is the outcome of one stage for one entity. Results are transient:
// they are logged, never persisted as domain state.
type Result struct {
	Stage      string
	EntityKey  string
	Passed     bool
	Violations []Violation
}

// Blocked reports whether any result carries a blocking violation.
func Blocked(results []Result) bool {
	for _, r := range results {
		for _, v := range r.Violations {
			if v.Severity.Blocking() {
				return true
			}
		}
	}
	return false
}

// SoftViolations returns the non-blocking violations across all results.
func SoftViolations(results []Result) []Violation {
	var out []Violation
	for _, r := range results {
		for _, v := range r.Violations {
			if !v.Severity.Blocking() {
				out = append(out, v)
			}
		}
	}
	return out
}
