package transform

import "fmt"

// TransformError describes a change event that could not be mapped to a
// statement delta. The event is dropped from its batch with the error
// recorded; it never aborts the batch.
type TransformError struct {
	EntityType string
	PrimaryKey string
	Position   string
	Err        error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("transform %s/%s at %s: %v", e.EntityType, e.PrimaryKey, e.Position, e.Err)
}

func (e *TransformError) Unwrap() error {
	return e.Err
}
