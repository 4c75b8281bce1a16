package bench

import (
	"fmt"
	"time"
)

// ValidationError rejects bad input before any measurement starts.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid benchmark input: " + e.Reason
}

// MeasurementError reports a failed measurement: the workload or the
// backend itself failed while a strategy was being timed. The whole run is
// aborted; no partial result is returned.
type MeasurementError struct {
	Strategy string
	Err      error
}

func (e *MeasurementError) Error() string {
	return fmt.Sprintf("strategy %q failed: %v", e.Strategy, e.Err)
}

func (e *MeasurementError) Unwrap() error {
	return e.Err
}

// TimeoutError reports a strategy that exceeded its per-strategy time limit.
type TimeoutError struct {
	Strategy string
	Elapsed  time.Duration
	Limit    time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("strategy %q exceeded timeout: %s elapsed, limit %s",
		e.Strategy, e.Elapsed, e.Limit)
}
