package outlives

import "fmt"

// InternalError reports an internal-consistency failure: an earlier stage
// handed this pass a shape that can never occur in a declaration-time type.
// It is not a user-facing diagnostic; the driver isolates it to the
// declaration being analyzed and continues with the rest of the batch.
type InternalError struct {
	Reason string
}

func (e *InternalError) Error() string {
	return "internal: " + e.Reason
}

func internalErrorf(format string, args ...interface{}) *InternalError {
	return &InternalError{Reason: fmt.Sprintf(format, args...)}
}
