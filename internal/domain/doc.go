// Package domain defines the core business types for the boutique shop backend.
//
// Types in this package are aggregates with encapsulated invariants: all state
// changes flow through validated methods, never through raw field mutation.
// They carry no database dependencies and no HTTP concerns; they are the shared
// language between handlers, services, and repositories.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *sql.DB, no http.Request, no context.Context in struct fields
//   - Snapshot types expose state as plain structs (JSON tags are metadata, not behavior)
//   - Validation lives here and raises typed domain errors
//   - Constants and enums belong here
package domain
