// Package domain defines the core entities of the ISO 4217 compiler.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawDocument: The currency list as read from the source document
//   - CanonicalEntry: One deduplicated currency with its derived identifier
//   - CountryAssociation: A country bound to the currency it uses
//   - Compilation: The complete output of one pipeline run
//   - Country: An ISO 3166-1 country known to the country registry
//
// # Errors
//
// Build-time errors (ErrFormat, ErrNonASCIIIdentifier, ...) abort a
// compilation. Runtime errors (ErrInvalidCode, ErrNoUniversalCurrency, ...)
// are returned by lookups and never abort.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
