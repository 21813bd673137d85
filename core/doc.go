// Package core defines the shared contracts and value types of the routed
// turn execution engine: the closed Route set, the TurnState data carried
// through a single turn, the Capability / Classifier / MemoryStore
// interfaces consumed by the orchestration layers, and the typed error
// taxonomy surfaced to callers.
//
// Higher-level packages (classifier, capability, graph, runner) depend on
// core; core depends on nothing but the standard library and the uuid
// generator.
package core
