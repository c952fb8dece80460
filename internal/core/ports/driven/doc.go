// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentParser: Decodes the list-one XML document
//   - CountryRegistry: Resolves ISO 3166-1 codes to country identifiers
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - compilation still succeeds, nothing is written:
//
//   - Emitter / EmitterPipeline: Materialise a compilation (Go source, SQLite)
//   - CompilationStore: Persist a compilation for later lookups
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, emitter, or normaliser package
package driven
