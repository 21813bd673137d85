package core

import "fmt"

// ClassificationError reports that the classification judgment failed or
// returned a label outside the closed route set. It is fatal to the turn and
// is never replaced with a default route.
type ClassificationError struct {
	// Label is the out-of-set label, if the judgment returned one.
	Label string
	Cause error
}

// Error implements the error interface.
func (e *ClassificationError) Error() string {
	if e.Label != "" {
		return fmt.Sprintf("classification returned invalid route label %q", e.Label)
	}
	return fmt.Sprintf("classification failed: %v", e.Cause)
}

// Unwrap returns the underlying judgment failure, if any.
func (e *ClassificationError) Unwrap() error { return e.Cause }

// UnregisteredRouteError reports a route with no capability binding. This is
// a configuration defect, not a user error: it fails the turn loudly and is
// never retried.
type UnregisteredRouteError struct {
	Route Route
}

// Error implements the error interface.
func (e *UnregisteredRouteError) Error() string {
	return fmt.Sprintf("no capability registered for route %s", e.Route)
}

// CapabilityError wraps a capability-specific failure uniformly so callers
// can render an appropriate message per route. It is fatal to the turn's
// result but does not affect other turns.
type CapabilityError struct {
	Route Route
	Cause error
}

// Error implements the error interface.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("capability for route %s failed: %v", e.Route, e.Cause)
}

// Unwrap returns the capability's own failure.
func (e *CapabilityError) Unwrap() error { return e.Cause }

// MemoryUnavailableError reports a memory retrieval failure when the store
// is configured as required. By default retrieval failures are absorbed and
// the turn continues in degraded mode instead.
type MemoryUnavailableError struct {
	Cause error
}

// Error implements the error interface.
func (e *MemoryUnavailableError) Error() string {
	return fmt.Sprintf("memory store unavailable: %v", e.Cause)
}

// Unwrap returns the store failure.
func (e *MemoryUnavailableError) Unwrap() error { return e.Cause }

// MemoryWriteError reports a failed memory commit. Commit failures are
// surfaced through the observability side-channel and never override a
// successful user-facing result.
type MemoryWriteError struct {
	Cause error
}

// Error implements the error interface.
func (e *MemoryWriteError) Error() string {
	return fmt.Sprintf("memory commit failed: %v", e.Cause)
}

// Unwrap returns the store failure.
func (e *MemoryWriteError) Unwrap() error { return e.Cause }

// ReuseError reports a programmer error: a turn state that already reached a
// terminal phase was driven again. One turn state serves exactly one turn.
type ReuseError struct {
	// Phase is the terminal phase the state was in when reuse was attempted.
	Phase string
}

// Error implements the error interface.
func (e *ReuseError) Error() string {
	return fmt.Sprintf("turn state already terminal (phase %s); one turn state serves exactly one turn", e.Phase)
}
