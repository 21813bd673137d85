// Package session records the ordered transcript of interactions per
// session. The transcript is an observability and rendering concern, kept
// separate from the MemoryStore: appends are best-effort and never change a
// turn's outcome.
//
// Add additional backends (Redis, Postgres, etc.) in sub-packages without
// changing any calling code; only the wiring layer decides which
// implementation to instantiate.
package session
