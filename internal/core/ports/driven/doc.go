// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - NotionClient: schema read, record write, duplicate query
//   - ConfigStore: application configuration
//   - SchemaStore: last-accepted schema snapshot persistence
//   - CaptureStore: saved-capture bookkeeping
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - LLMService: completion provider. Without it, analysis is disabled
//     but schema sync, duplicate checks and manual saves still work.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
