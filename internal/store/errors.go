package store

import "fmt"

// PersistenceError reports a failed write-back of the dataset. The
// in-flight mutation is not applied when this is returned; callers must
// treat the operation as a no-op.
type PersistenceError struct {
	Path  string
	Cause error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist dataset to %s: %v", e.Path, e.Cause)
}

func (e *PersistenceError) Unwrap() error {
	return e.Cause
}
