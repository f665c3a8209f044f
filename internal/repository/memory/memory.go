// Package memory provides in-memory implementations of the repository ports.
// They back the unit tests and make the server runnable without Postgres.
// All repositories are mutex-guarded and store plain snapshots, so aggregates
// handed out are always private copies.
package memory
