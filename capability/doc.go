// Package capability contains the four route capabilities of the engine
// (conversation, direct code, contextual code, orchestrated code) and the
// immutable Binding registry that maps routes to capabilities.
//
// Each capability wraps a model.Model behind the shared core.Capability
// contract. Adding a route means implementing that contract and adding one
// Binding entry at initialization time; the execution graph never changes.
package capability
