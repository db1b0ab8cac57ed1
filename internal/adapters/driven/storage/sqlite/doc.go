// Package sqlite provides a unified SQLite-based implementation of driven port interfaces.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements multiple store interfaces
// through a single database connection:
//
//   - TargetStore: Scan target persistence
//   - DropStore: Drop history persistence
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory as NNN_name.up.sql files.
//
// # Data Location
//
// By default, the database is stored at ~/.droppath/data/droppath.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
