// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - CompilerService: parse, normalise, map countries, build, emit
//   - LookupService: runtime queries against a built registry
//
// Services are pure Go with no CGO or external dependencies.
package services
