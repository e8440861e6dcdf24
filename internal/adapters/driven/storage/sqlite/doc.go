// Package sqlite provides an SQLite-based implementation of driven.ReportStore.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Applied versions are recorded in schema_migrations.
// Report bodies are stored as JSON alongside indexed lifecycle columns.
//
// # Data Location
//
// By default, the database is stored at ~/.samediff/data/reports.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking provided
// by SQLite in WAL mode.
package sqlite
