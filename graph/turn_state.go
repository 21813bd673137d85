package graph

import (
	"fmt"

	"github.com/HellKaiser45/Ulvek/core"
)

// Phase is the execution phase of one turn.
type Phase int

const (
	// PhaseStart is the initial phase: the state holds only the request and
	// the injected memory context.
	PhaseStart Phase = iota
	// PhaseClassified means the route has been selected.
	PhaseClassified
	// PhaseDispatched means the selected capability has been invoked.
	PhaseDispatched
	// PhaseDone is the successful terminal phase; the result is set.
	PhaseDone
	// PhaseError is the failure terminal phase; the result is never set.
	PhaseError
)

// String returns the phase label.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "START"
	case PhaseClassified:
		return "CLASSIFIED"
	case PhaseDispatched:
		return "DISPATCHED"
	case PhaseDone:
		return "DONE"
	case PhaseError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// TurnState is the single mutable record threaded through one request's
// processing. It is exclusively owned by one in-flight turn and never shared
// across concurrent turns. Route and result each transition unset to set
// exactly once; a state that reached a terminal phase cannot be driven
// again.
type TurnState struct {
	id            string
	request       string
	memoryContext []core.Snippet

	phase    Phase
	route    core.Route
	routeSet bool
	result   *core.Result
	err      error
}

// NewTurnState creates a fresh turn state in PhaseStart.
func NewTurnState(request string, memoryContext []core.Snippet) *TurnState {
	return &TurnState{
		id:            core.NewID(),
		request:       request,
		memoryContext: memoryContext,
	}
}

// ID returns the turn identifier.
func (s *TurnState) ID() string { return s.id }

// Request returns the raw user input, immutable once set.
func (s *TurnState) Request() string { return s.request }

// MemoryContext returns the injected memory context, read-only after
// injection.
func (s *TurnState) MemoryContext() []core.Snippet { return s.memoryContext }

// Phase returns the current execution phase.
func (s *TurnState) Phase() Phase { return s.phase }

// Terminal reports whether the state reached DONE or ERROR.
func (s *TurnState) Terminal() bool { return s.phase == PhaseDone || s.phase == PhaseError }

// Route returns the selected route and whether classification has run.
func (s *TurnState) Route() (core.Route, bool) { return s.route, s.routeSet }

// Result returns the final result and whether the turn reached DONE.
func (s *TurnState) Result() (core.Result, bool) {
	if s.result == nil {
		return core.Result{}, false
	}
	return *s.result, true
}

// Err returns the failure carried by an ERROR terminal state.
func (s *TurnState) Err() error { return s.err }

// setRoute records the classification outcome. It enforces the set-once
// invariant.
func (s *TurnState) setRoute(route core.Route) error {
	if s.routeSet {
		return fmt.Errorf("route already set to %s", s.route)
	}
	s.route = route
	s.routeSet = true
	s.phase = PhaseClassified
	return nil
}

// setResult records the final answer and moves the state to DONE. It
// enforces the set-once invariant.
func (s *TurnState) setResult(result core.Result) error {
	if s.result != nil {
		return fmt.Errorf("result already set")
	}
	s.result = &result
	s.phase = PhaseDone
	return nil
}

// fail moves the state to the ERROR terminal carrying err. The result stays
// unset.
func (s *TurnState) fail(err error) {
	s.err = err
	s.phase = PhaseError
}
