// Package domain defines the core business entities for Jobscope.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Schema / SchemaProperty: a snapshot of a target database's fields
//   - SchemaDiff: the drift between two snapshots
//   - ExtractionResult: a parsed, sanitised model completion
//   - WritePayload / PropertyValue: the typed record-write body
//   - Block: one element of a page body
//   - CaptureRecord: local bookkeeping for upserts
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
