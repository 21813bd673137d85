// Package model defines the provider-agnostic generation contract consumed
// by the classifier and the capability adapters, plus a deterministic
// MockModel for tests and examples. Concrete providers live in the openai
// and anthropic subpackages.
package model
