// Package services implements the core application services: analysis
// (schema-aware extraction), capture (upsert writes), schema sync and
// settings. Services depend only on ports, never on concrete adapters.
package services
