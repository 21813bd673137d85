// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing users to plug
// any structured logger. It also offers a richer UlvekLogger with contextual
// helpers (session, turn, component) and domain specific helpers for
// classification, model calls and whole turns.
package logging
