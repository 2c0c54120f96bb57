package cdc

import "fmt"

// CommitError describes a failed store commit after the configured retries
// were exhausted. The batch it carries has been quarantined, not dropped.
type CommitError struct {
	Attempts  int
	BatchSize int
	Err       error
}

func (e *CommitError) Error() string {
	return fmt.Sprintf("commit batch of %d after %d attempts: %v", e.BatchSize, e.Attempts, e.Err)
}

func (e *CommitError) Unwrap() error {
	return e.Err
}
