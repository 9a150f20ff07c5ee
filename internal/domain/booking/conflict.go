package booking

import "fmt"

// ConflictError names the already-booked slot so the caller can tell the
// user which time to avoid.
type ConflictError struct {
	Date  string
	Start string
	End   string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time conflict with existing appointment on %s %s-%s",
		e.Date, e.Start, e.End)
}

// AvailabilityUnknownError wraps a failed existing-appointments fetch: the
// conflict status could not be determined, which is NOT the same as "no
// conflict". The booking must be blocked.
type AvailabilityUnknownError struct {
	Cause error
}

func (e *AvailabilityUnknownError) Error() string {
	return fmt.Sprintf("availability unknown: %v", e.Cause)
}

func (e *AvailabilityUnknownError) Unwrap() error {
	return e.Cause
}
