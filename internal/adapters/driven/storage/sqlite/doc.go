// Package sqlite provides a SQLite-based implementation of the version
// tracker and generation history ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A single database connection backs:
//
//   - VersionStore: next revision per agreement base name
//   - GenerationLog: one row per rendered agreement
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// By default, the database is stored at ~/.scopegen/data/scopegen.db.
//
// # Concurrency
//
// Counters are upserted with MAX(), so a slower writer never moves a
// counter backwards. SQLite runs in WAL mode with a busy timeout.
package sqlite
