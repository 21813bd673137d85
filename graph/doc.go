// Package graph implements the orchestration core of a turn: a state
// machine that sequences classification strictly before dispatch and drives
// a single-use TurnState from START to a terminal phase.
//
// The phase sequence is START -> CLASSIFIED -> DISPATCHED -> DONE, with
// ERROR reachable from any non-terminal phase. DONE and ERROR are terminal;
// driving an already-terminal TurnState fails with *core.ReuseError and
// never re-executes a capability.
package graph
