// Package runner exposes the public entry point of the engine: one RunTurn
// call per user message. The runner wires memory retrieval and commit around
// a single execution graph run and records the session transcript.
package runner
