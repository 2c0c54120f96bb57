package event

import (
	"errors"
	"fmt"
)

// ErrTombstone marks an empty log message (compaction tombstone or
// end-of-partition noise). Callers skip it; it is not a decode failure.
var ErrTombstone = errors.New("tombstone message")

// DecodeError describes a malformed change message. The message is skipped
// and the rest of the batch continues; Position lets an operator replay the
// offending message from the log.
type DecodeError struct {
	Position string
	Reason   string
	Err      error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode message at %s: %s: %v", e.Position, e.Reason, e.Err)
	}
	return fmt.Sprintf("decode message at %s: %s", e.Position, e.Reason)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
