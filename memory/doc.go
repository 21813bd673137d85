// Package memory houses concrete implementations of core.MemoryStore: a
// substring-matching in-memory store for development and tests, and an
// embedding-backed vector store for semantic retrieval.
package memory
