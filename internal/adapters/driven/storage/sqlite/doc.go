// Package sqlite provides a SQLite-based implementation of driven.CompilationStore
// and an emitter that writes compilations to a database file.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
//
//   - builds: one row per saved compilation, keyed by a random build ID
//   - currencies: canonical entries keyed by numeric code
//   - country_currencies: country identifier to currency identifier
//   - currency_country_names: raw country names per numeric code
//
// A store holds exactly one compilation; Save replaces the previous one.
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
